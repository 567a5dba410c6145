package service

import (
	"context"
	"errors"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/pkg/mq"
	"github.com/Behyna/university-finance/pkg/notifier"
	"go.uber.org/zap"
)

type ReminderService interface {
	Dispatch(ctx context.Context, cmd ReminderCommand) error
}

type reminderService struct {
	reminderRepo repository.PaymentReminderRepository
	notifier     notifier.Notifier
	maxRetry     int
	clock        Clock
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewReminderService(reminderRepo repository.PaymentReminderRepository, notifier notifier.Notifier, cfg *config.Config,
	clock Clock, logger *zap.Logger, metrics *metrics.Metrics) ReminderService {
	maxRetry := cfg.Notifier.MaxRetries
	if maxRetry <= 0 {
		maxRetry = 1
	}

	return &reminderService{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		maxRetry:     maxRetry,
		clock:        clock,
		logger:       logger,
		metrics:      metrics,
	}
}

// Dispatch sends the reminder to the notification service. Permanent rejections are returned as is,
// exhausted retries are wrapped with mq.Temporary so the message is redelivered.
func (s *reminderService) Dispatch(ctx context.Context, cmd ReminderCommand) error {
	reminder, err := s.reminderRepo.GetByID(ctx, cmd.ReminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			s.logger.Warn("Reminder no longer exists, dropping", zap.Int64("reminderID", cmd.ReminderID))
			s.metrics.RecordReminderDispatched("dropped")
			return nil
		}

		return mq.Temporary(NewServiceError(constants.ErrCodeOperationFailed, err))
	}

	if reminder.SentAt != nil {
		s.logger.Info("Reminder already sent", zap.Int64("reminderID", reminder.ID))
		return nil
	}

	notification := s.notification(cmd, *reminder)

	var lastErr error
	for attempt := 1; attempt <= s.maxRetry; attempt++ {
		resp, err := s.notifier.SendReminder(ctx, notification)
		if err == nil {
			s.logger.Info("Reminder sent",
				zap.Int64("reminderID", reminder.ID),
				zap.Int("attempt", attempt),
				zap.String("eventID", notification.EventID),
				zap.String("notificationID", resp.Result.NotificationID))

			if err := s.reminderRepo.MarkSent(ctx, reminder.ID, s.clock()); err != nil {
				s.logger.Error("Failed to mark reminder as sent", zap.Int64("reminderID", reminder.ID), zap.Error(err))
				return mq.Temporary(NewServiceError(constants.ErrCodeOperationFailed, err))
			}

			s.metrics.RecordReminderDispatched("sent")
			return nil
		}

		if notifier.IsPermanent(err) {
			s.logger.Warn("Non-retryable error encountered",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.Int64("reminderID", reminder.ID))
			s.metrics.RecordReminderDispatched("rejected")
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		lastErr = err
	}

	s.logger.Error("Notification service unavailable after all retries",
		zap.Error(lastErr),
		zap.Int("maxRetries", s.maxRetry),
		zap.Int64("reminderID", reminder.ID))
	s.metrics.RecordReminderDispatched("failed")

	return mq.Temporary(NewServiceError(constants.ErrCodeOperationFailed, lastErr))
}

func (s *reminderService) notification(cmd ReminderCommand, reminder model.PaymentReminder) notifier.ReminderNotification {
	n := notifier.ReminderNotification{
		EventID:           cmd.EventID,
		ReminderID:        reminder.ID,
		ReminderType:      string(reminder.ReminderType),
		TransactionID:     reminder.TransactionID,
		TransactionNumber: cmd.TransactionNumber,
		StudentID:         cmd.StudentID,
		TeacherID:         cmd.TeacherID,
		AmountDue:         cmd.AmountDue,
		Notes:             reminder.Notes,
	}
	if n.EventID == "" {
		n.EventID = ReminderEventID(reminder.ID)
	}

	if cmd.DueDate != nil {
		n.DueDate = cmd.DueDate.Format("2006-01-02")
		if today := s.clock.Today(); model.DateOf(*cmd.DueDate).Before(today) {
			n.DaysOverdue = model.DaysBetween(*cmd.DueDate, today)
		}
	}

	return n
}
