package service

import (
	"context"
	"strconv"

	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderQueueService interface {
	FindRemindersToQueue(ctx context.Context, limit int) ([]ReminderCommand, error)
	MarkReminderAsQueued(ctx context.Context, reminderID int64) error
}

type reminderQueue struct {
	reminderRepo repository.PaymentReminderRepository
	clock        Clock
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewReminderQueueService(reminderRepo repository.PaymentReminderRepository, clock Clock, logger *zap.Logger,
	metrics *metrics.Metrics) ReminderQueueService {
	return &reminderQueue{reminderRepo: reminderRepo, clock: clock, logger: logger, metrics: metrics}
}

func (r *reminderQueue) FindRemindersToQueue(ctx context.Context, limit int) ([]ReminderCommand, error) {
	r.logger.Debug("Finding reminders to publish", zap.Int("batchSize", limit))

	reminders, err := r.reminderRepo.FindUnpublished(ctx, limit)
	if err != nil {
		r.logger.Error("Failed to find unpublished reminders", zap.Error(err))
		return nil, err
	}

	if len(reminders) == 0 {
		r.logger.Debug("No reminders found to publish")
		return nil, nil
	}

	commands := make([]ReminderCommand, 0, len(reminders))
	for _, reminder := range reminders {
		cmd := ReminderCommand{
			EventID:       ReminderEventID(reminder.ID),
			ReminderID:    reminder.ID,
			ReminderType:  string(reminder.ReminderType),
			TransactionID: reminder.TransactionID,
			Notes:         reminder.Notes,
		}

		if tx := reminder.Transaction; tx != nil {
			cmd.TransactionNumber = tx.TransactionNumber
			cmd.StudentID = tx.StudentID
			cmd.TeacherID = tx.TeacherID
			cmd.AmountDue = tx.RemainingAmount().StringFixed(3)
			cmd.DueDate = tx.DueDate
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

func (r *reminderQueue) MarkReminderAsQueued(ctx context.Context, reminderID int64) error {
	if err := r.reminderRepo.MarkPublished(ctx, reminderID, r.clock()); err != nil {
		r.logger.Error("Failed to mark reminder as published",
			zap.Error(err),
			zap.Int64("reminderID", reminderID))
		r.metrics.RecordReminderPublished("error")
		return err
	}

	r.metrics.RecordReminderPublished("queued")
	r.logger.Debug("Successfully marked reminder as published", zap.Int64("reminderID", reminderID))

	return nil
}

// ReminderEventID is stable per reminder so redeliveries reuse the same idempotency key.
func ReminderEventID(reminderID int64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("finance.reminder."+strconv.FormatInt(reminderID, 10))).String()
}
