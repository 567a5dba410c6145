package mocks

import (
	"context"
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TransactionRepository) Save(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TransactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*model.Transaction)
	return tx, args.Error(1)
}

func (m *TransactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) Count(ctx context.Context, filter repository.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionRepository) FindOverdueCandidates(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindByStatus(ctx context.Context, statuses ...model.TransactionStatus) ([]model.Transaction, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindPaidBetween(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]model.Transaction), args.Error(1)
}
