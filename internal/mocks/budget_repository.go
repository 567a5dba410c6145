package mocks

import (
	"context"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/stretchr/testify/mock"
)

type BudgetRepository struct {
	mock.Mock
}

func (m *BudgetRepository) Create(ctx context.Context, budget *model.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *BudgetRepository) Save(ctx context.Context, budget *model.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *BudgetRepository) GetByID(ctx context.Context, id int64) (*model.Budget, error) {
	args := m.Called(ctx, id)
	budget, _ := args.Get(0).(*model.Budget)
	return budget, args.Error(1)
}

func (m *BudgetRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Budget, error) {
	args := m.Called(ctx, id)
	budget, _ := args.Get(0).(*model.Budget)
	return budget, args.Error(1)
}

func (m *BudgetRepository) List(ctx context.Context, filter repository.BudgetFilter) ([]model.Budget, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Budget), args.Error(1)
}

func (m *BudgetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
