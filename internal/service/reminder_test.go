package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/university-finance/internal/mocks"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/mq"
	"github.com/Behyna/university-finance/pkg/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReminderQueue_FindRemindersToQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("builds commands from the linked transaction", func(t *testing.T) {
		repo := &mocks.PaymentReminderRepository{}
		svc := service.NewReminderQueueService(repo, fixedClock(), zap.NewNop(), newMetrics())

		repo.On("FindUnpublished", ctx, 50).Return([]model.PaymentReminder{
			{
				ID: 8, TransactionID: int64Ptr(3), ReminderType: model.ReminderTypeOverdue,
				Transaction: &model.Transaction{
					ID: 3, TransactionNumber: "TRN25000003", StudentID: int64Ptr(12),
					Amount: dec("500"), PaidAmount: dec("120.5"), DueDate: datePtr(2025, time.March, 1),
				},
			},
		}, nil)

		commands, err := svc.FindRemindersToQueue(ctx, 50)

		require.NoError(t, err)
		require.Len(t, commands, 1)
		assert.Equal(t, int64(8), commands[0].ReminderID)
		assert.Equal(t, "TRN25000003", commands[0].TransactionNumber)
		assert.Equal(t, "379.500", commands[0].AmountDue)
		assert.Equal(t, service.ReminderEventID(8), commands[0].EventID)
	})

	t.Run("returns nil when nothing is pending", func(t *testing.T) {
		repo := &mocks.PaymentReminderRepository{}
		svc := service.NewReminderQueueService(repo, fixedClock(), zap.NewNop(), newMetrics())
		repo.On("FindUnpublished", ctx, 50).Return([]model.PaymentReminder{}, nil)

		commands, err := svc.FindRemindersToQueue(ctx, 50)

		assert.NoError(t, err)
		assert.Nil(t, commands)
	})

	t.Run("marks queued with the clock time", func(t *testing.T) {
		repo := &mocks.PaymentReminderRepository{}
		svc := service.NewReminderQueueService(repo, fixedClock(), zap.NewNop(), newMetrics())
		repo.On("MarkPublished", ctx, int64(8), now).Return(nil)

		assert.NoError(t, svc.MarkReminderAsQueued(ctx, 8))
		repo.AssertExpectations(t)
	})

	t.Run("event ids are stable", func(t *testing.T) {
		assert.Equal(t, service.ReminderEventID(8), service.ReminderEventID(8))
		assert.NotEqual(t, service.ReminderEventID(8), service.ReminderEventID(9))
	})
}

func TestReminderService_Dispatch(t *testing.T) {
	ctx := context.Background()

	cmd := service.ReminderCommand{
		EventID:      service.ReminderEventID(8),
		ReminderID:   8,
		ReminderType: string(model.ReminderTypeOverdue),
		DueDate:      datePtr(2025, time.March, 1),
	}
	stored := func() *model.PaymentReminder {
		return &model.PaymentReminder{ID: 8, ReminderType: model.ReminderTypeOverdue, TransactionID: int64Ptr(3)}
	}

	newSvc := func() (*mocks.PaymentReminderRepository, *mocks.Notifier, service.ReminderService) {
		repo := &mocks.PaymentReminderRepository{}
		n := &mocks.Notifier{}
		return repo, n, service.NewReminderService(repo, n, testConfig(), fixedClock(), zap.NewNop(), newMetrics())
	}

	t.Run("sends and marks sent", func(t *testing.T) {
		repo, n, svc := newSvc()
		repo.On("GetByID", ctx, int64(8)).Return(stored(), nil)
		n.On("SendReminder", ctx, mock.MatchedBy(func(r notifier.ReminderNotification) bool {
			return r.DaysOverdue == 14 && r.DueDate == "2025-03-01" && r.EventID == cmd.EventID
		})).Return(notifier.Response{Code: "success"}, nil)
		repo.On("MarkSent", ctx, int64(8), now).Return(nil)

		require.NoError(t, svc.Dispatch(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("retries then asks for redelivery", func(t *testing.T) {
		repo, n, svc := newSvc()
		repo.On("GetByID", ctx, int64(8)).Return(stored(), nil)
		n.On("SendReminder", ctx, mock.Anything).Return(notifier.Response{}, notifier.ErrServerError)

		err := svc.Dispatch(ctx, cmd)

		assert.True(t, mq.IsTemporary(err))
		assert.ErrorIs(t, err, notifier.ErrServerError)
		n.AssertNumberOfCalls(t, "SendReminder", 3)
		repo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown recipient is not retried", func(t *testing.T) {
		repo, n, svc := newSvc()
		repo.On("GetByID", ctx, int64(8)).Return(stored(), nil)
		n.On("SendReminder", ctx, mock.Anything).Return(notifier.Response{}, notifier.ErrRecipientNotFound)

		err := svc.Dispatch(ctx, cmd)

		require.Error(t, err)
		assert.False(t, mq.IsTemporary(err))
		n.AssertNumberOfCalls(t, "SendReminder", 1)
	})

	t.Run("already sent is a no-op", func(t *testing.T) {
		repo, n, svc := newSvc()
		sent := stored()
		sentAt := now.Add(-time.Hour)
		sent.SentAt = &sentAt
		repo.On("GetByID", ctx, int64(8)).Return(sent, nil)

		require.NoError(t, svc.Dispatch(ctx, cmd))
		n.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything)
	})

	t.Run("deleted reminder is dropped", func(t *testing.T) {
		repo, _, svc := newSvc()
		repo.On("GetByID", ctx, int64(8)).Return(nil, repository.ErrReminderNotFound)

		assert.NoError(t, svc.Dispatch(ctx, cmd))
	})

	t.Run("storage failure is temporary", func(t *testing.T) {
		repo, _, svc := newSvc()
		repo.On("GetByID", ctx, int64(8)).Return(nil, errors.New("db down"))

		assert.True(t, mq.IsTemporary(svc.Dispatch(ctx, cmd)))
	})
}
