package repository_test

import (
	"context"
	"testing"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBudget(dept model.Department, year int, allocated string) *model.Budget {
	return &model.Budget{
		Department:      dept,
		BudgetType:      model.BudgetTypeOperational,
		Year:            year,
		AllocatedAmount: dec(allocated),
		SpentAmount:     dec("0"),
		CommittedAmount: dec("0"),
		IsActive:        true,
	}
}

func TestBudgetRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBudgetRepository(db)
	tm := repository.NewTransactionManager(db)

	eng := newBudget(model.DepartmentEngineering, 2025, "10000")
	require.NoError(t, repo.Create(ctx, eng))

	// the envelope key is not unique
	engAgain := newBudget(model.DepartmentEngineering, 2025, "500")
	require.NoError(t, repo.Create(ctx, engAgain))

	law := newBudget(model.DepartmentLaw, 2024, "3000")
	law.IsActive = false
	require.NoError(t, repo.Create(ctx, law))

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetByID(ctx, eng.ID)
		require.NoError(t, err)
		assert.True(t, got.AllocatedAmount.Equal(dec("10000")))

		_, err = repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrBudgetNotFound)
	})

	t.Run("inactive flag survives create", func(t *testing.T) {
		got, err := repo.GetByID(ctx, law.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("list filters", func(t *testing.T) {
		all, err := repo.List(ctx, repository.BudgetFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		active, err := repo.List(ctx, repository.BudgetFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Len(t, active, 2)

		byYear, err := repo.List(ctx, repository.BudgetFilter{Year: 2024, Department: model.DepartmentLaw})
		require.NoError(t, err)
		require.Len(t, byYear, 1)
		assert.Equal(t, law.ID, byYear[0].ID)
	})

	t.Run("locked read and save inside transaction", func(t *testing.T) {
		err := tm.WithTx(ctx, func(ctx context.Context) error {
			b, err := repo.GetByIDForUpdate(ctx, eng.ID)
			if err != nil {
				return err
			}

			committed, ok := b.Commit(dec("2500"))
			require.True(t, ok)
			return repo.Save(ctx, &committed)
		})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, eng.ID)
		require.NoError(t, err)
		assert.True(t, got.CommittedAmount.Equal(dec("2500")))
		assert.True(t, got.RemainingAmount().Equal(dec("7500")))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, engAgain.ID))
		assert.ErrorIs(t, repo.Delete(ctx, engAgain.ID), repository.ErrBudgetNotFound)
	})
}
