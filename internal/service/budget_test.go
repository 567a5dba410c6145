package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/mocks"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type budgetDeps struct {
	txManager  *mocks.TxManager
	budgetRepo *mocks.BudgetRepository
	locker     *mocks.Locker
	svc        service.BudgetService
}

func newBudgetDeps(strict bool) budgetDeps {
	d := budgetDeps{
		txManager:  &mocks.TxManager{},
		budgetRepo: &mocks.BudgetRepository{},
		locker:     &mocks.Locker{},
	}

	cfg := testConfig()
	cfg.Finance.StrictSpend = strict

	d.svc = service.NewBudgetService(d.txManager, d.budgetRepo, d.locker, cfg, zap.NewNop(), newMetrics())
	return d
}

func (d budgetDeps) expectLocked(ctx context.Context, id int64, budget *model.Budget) {
	d.locker.On("WithLock", ctx, fmt.Sprintf("budget:%d", id), mock.Anything).Return(nil)
	d.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
	d.budgetRepo.On("GetByIDForUpdate", ctx, id).Return(budget, nil)
}

func sampleBudget() *model.Budget {
	return &model.Budget{
		ID: 1, Department: model.DepartmentIT, BudgetType: model.BudgetTypeOperational, Year: 2025,
		AllocatedAmount: dec("1000"), SpentAmount: dec("200"), CommittedAmount: dec("300"), IsActive: true,
	}
}

func TestBudgetService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("applies and persists", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())
		d.budgetRepo.On("Save", ctx, mock.MatchedBy(func(b *model.Budget) bool {
			return b.CommittedAmount.Equal(dec("700"))
		})).Return(nil)

		result, err := d.svc.Commit(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("400")})

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, result.Budget.CommittedAmount.Equal(dec("700")))
		d.budgetRepo.AssertExpectations(t)
	})

	t.Run("insufficient funds is a result, not an error", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())

		result, err := d.svc.Commit(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("500.001")})

		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.True(t, result.Budget.CommittedAmount.Equal(dec("300")))
		d.budgetRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		d := newBudgetDeps(false)

		_, err := d.svc.Commit(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("-1")})

		assert.Equal(t, constants.ErrCodeValidationFailed, codeOf(err))
		d.locker.AssertNotCalled(t, "WithLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lock contention", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.locker.On("WithLock", ctx, "budget:1", mock.Anything).Return(lock.ErrLockNotAcquired)

		_, err := d.svc.Commit(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("1")})

		assert.Equal(t, constants.ErrCodeBudgetLocked, codeOf(err))
	})

	t.Run("unknown budget", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.locker.On("WithLock", ctx, "budget:9", mock.Anything).Return(nil)
		d.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		d.budgetRepo.On("GetByIDForUpdate", ctx, int64(9)).Return(nil, repository.ErrBudgetNotFound)

		_, err := d.svc.Commit(ctx, service.BudgetAmountCommand{BudgetID: 9, Amount: dec("1")})

		assert.Equal(t, constants.ErrCodeBudgetNotFound, codeOf(err))
	})
}

func TestBudgetService_ReleaseCommitment(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot release more than committed", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())

		result, err := d.svc.ReleaseCommitment(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("300.5")})

		require.NoError(t, err)
		assert.False(t, result.Applied)
	})

	t.Run("releases", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())
		d.budgetRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := d.svc.ReleaseCommitment(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("300")})

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, result.Budget.CommittedAmount.IsZero())
	})
}

func TestBudgetService_Spend(t *testing.T) {
	ctx := context.Background()

	t.Run("lenient policy ignores outstanding commitments", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())
		d.budgetRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := d.svc.Spend(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("100")})

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, result.Budget.SpentAmount.Equal(dec("300")))
		assert.True(t, result.Budget.CommittedAmount.Equal(dec("200")))
	})

	t.Run("strict policy counts the remaining commitment", func(t *testing.T) {
		d := newBudgetDeps(true)
		budget := sampleBudget()
		budget.SpentAmount = dec("400")
		budget.CommittedAmount = dec("700")
		d.expectLocked(ctx, 1, budget)

		result, err := d.svc.Spend(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("100")})

		require.NoError(t, err)
		assert.False(t, result.Applied)
		d.budgetRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("strict policy relieves the matched commitment", func(t *testing.T) {
		d := newBudgetDeps(true)
		d.expectLocked(ctx, 1, sampleBudget())
		d.budgetRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := d.svc.Spend(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("700"), Matched: dec("300")})

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, result.Budget.SpentAmount.Equal(dec("900")))
		assert.True(t, result.Budget.CommittedAmount.IsZero())
	})

	t.Run("strict policy rejects an unmatched spend over the headroom", func(t *testing.T) {
		d := newBudgetDeps(true)
		d.expectLocked(ctx, 1, sampleBudget())

		result, err := d.svc.Spend(ctx, service.BudgetAmountCommand{BudgetID: 1, Amount: dec("600")})

		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.True(t, result.Budget.SpentAmount.Equal(dec("200")))
	})
}

func TestBudgetService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to an active operational budget", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.budgetRepo.On("Create", ctx, mock.MatchedBy(func(b *model.Budget) bool {
			return b.BudgetType == model.BudgetTypeOperational && b.IsActive
		})).Return(nil)

		budget, err := d.svc.Create(ctx, service.CreateBudgetCommand{
			Department:      model.DepartmentLibrary,
			Year:            2025,
			AllocatedAmount: dec("5000"),
		})

		require.NoError(t, err)
		assert.Equal(t, model.DepartmentLibrary, budget.Department)
	})

	t.Run("rejects an unknown department", func(t *testing.T) {
		d := newBudgetDeps(false)

		_, err := d.svc.Create(ctx, service.CreateBudgetCommand{
			Department:      "astronomy",
			Year:            2025,
			AllocatedAmount: dec("5000"),
		})

		assert.Equal(t, constants.ErrCodeValidationFailed, codeOf(err))
	})

	t.Run("update re-validates under the lock", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.expectLocked(ctx, 1, sampleBudget())

		negative := dec("-5")
		_, err := d.svc.Update(ctx, service.UpdateBudgetCommand{BudgetID: 1, SpentAmount: &negative})

		assert.Equal(t, constants.ErrCodeValidationFailed, codeOf(err))
		d.budgetRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("can spend reads without locking", func(t *testing.T) {
		d := newBudgetDeps(false)
		d.budgetRepo.On("GetByID", ctx, int64(1)).Return(sampleBudget(), nil)

		ok, err := d.svc.CanSpend(ctx, 1, dec("500"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = d.svc.CanSpend(ctx, 1, dec("500.001"))
		require.NoError(t, err)
		assert.False(t, ok)
		d.locker.AssertNotCalled(t, "WithLock", mock.Anything, mock.Anything, mock.Anything)
	})
}
