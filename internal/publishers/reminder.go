package publishers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/mq"
	"go.uber.org/zap"
)

type ReminderPublisher interface {
	Publish(ctx context.Context) error
}

type reminderPublisher struct {
	service   service.ReminderQueueService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewReminderPublisher(service service.ReminderQueueService, publisher mq.Publisher, cfg *config.Config,
	logger *zap.Logger) ReminderPublisher {
	batchSize := cfg.Finance.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	return &reminderPublisher{service: service, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (r *reminderPublisher) Publish(ctx context.Context) error {
	reminders, err := r.service.FindRemindersToQueue(ctx, r.batchSize)
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		return nil
	}

	r.logger.Info("Publishing reminders", zap.Int("count", len(reminders)))

	successCount := 0
	for _, reminder := range reminders {
		body, err := json.Marshal(reminder)
		if err != nil {
			r.logger.Error("Failed to encode reminder", zap.Error(err), zap.Int64("reminderID", reminder.ReminderID))
			continue
		}

		msg := mq.Message{
			RoutingKey: constants.QueueReminder,
			ID:         reminder.EventID,
			Body:       body,
			Headers:    map[string]any{"reminder_type": reminder.ReminderType},
		}
		if err := r.publisher.Publish(ctx, msg); err != nil {
			r.logger.Error("Failed to publish reminder",
				zap.Error(err),
				zap.Int64("reminderID", reminder.ReminderID))
			continue
		}

		if err := r.service.MarkReminderAsQueued(ctx, reminder.ReminderID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		r.logger.Info("Successfully published reminders",
			zap.Int("published", successCount),
			zap.Int("total", len(reminders)))
	}

	return nil
}
