package mocks

import (
	"context"
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/stretchr/testify/mock"
)

type PaymentReminderRepository struct {
	mock.Mock
}

func (m *PaymentReminderRepository) Create(ctx context.Context, reminder *model.PaymentReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *PaymentReminderRepository) GetByID(ctx context.Context, id int64) (*model.PaymentReminder, error) {
	args := m.Called(ctx, id)
	reminder, _ := args.Get(0).(*model.PaymentReminder)
	return reminder, args.Error(1)
}

func (m *PaymentReminderRepository) ExistsForTransaction(ctx context.Context, transactionID int64, reminderType model.ReminderType) (bool, error) {
	args := m.Called(ctx, transactionID, reminderType)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentReminderRepository) FindUnpublished(ctx context.Context, limit int) ([]model.PaymentReminder, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.PaymentReminder), args.Error(1)
}

func (m *PaymentReminderRepository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *PaymentReminderRepository) MarkSent(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *PaymentReminderRepository) DeleteByTransactionID(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
