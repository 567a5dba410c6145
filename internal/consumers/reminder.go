package consumers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/mq"
	"go.uber.org/zap"
)

type ReminderConsumer interface {
	Consume(ctx context.Context) error
}

type reminderConsumer struct {
	service  service.ReminderService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewReminderConsumer(service service.ReminderService, consumer mq.Consumer, logger *zap.Logger) ReminderConsumer {
	return &reminderConsumer{service: service, consumer: consumer, logger: logger}
}

func (r *reminderConsumer) Consume(ctx context.Context) error {
	return r.consumer.Consume(ctx, constants.QueueReminder, r.handleMessage)
}

func (r *reminderConsumer) handleMessage(ctx context.Context, d mq.Delivery) error {
	r.logger.Info("received reminder command",
		zap.String("messageID", d.ID),
		zap.Bool("redelivered", d.Redelivered),
		zap.ByteString("body", d.Body))

	var cmd service.ReminderCommand
	if err := json.Unmarshal(d.Body, &cmd); err != nil {
		r.logger.Warn("invalid reminder command", zap.String("messageID", d.ID), zap.Error(err))
		return err
	}

	if cmd.EventID == "" {
		cmd.EventID = d.ID
	}

	return r.service.Dispatch(ctx, cmd)
}
