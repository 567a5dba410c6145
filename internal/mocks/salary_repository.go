package mocks

import (
	"context"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/stretchr/testify/mock"
)

type SalaryRepository struct {
	mock.Mock
}

func (m *SalaryRepository) Create(ctx context.Context, salary *model.Salary) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

func (m *SalaryRepository) Save(ctx context.Context, salary *model.Salary) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

func (m *SalaryRepository) GetByID(ctx context.Context, id int64) (*model.Salary, error) {
	args := m.Called(ctx, id)
	salary, _ := args.Get(0).(*model.Salary)
	return salary, args.Error(1)
}

func (m *SalaryRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Salary, error) {
	args := m.Called(ctx, id)
	salary, _ := args.Get(0).(*model.Salary)
	return salary, args.Error(1)
}

func (m *SalaryRepository) List(ctx context.Context, filter repository.SalaryFilter) ([]model.Salary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Salary), args.Error(1)
}
