package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, d Delivery) error

type Consumer interface {
	Consume(ctx context.Context, queue string, handler Handle) error
}

type RabbitConsumer struct {
	ch       *amqp.Channel
	prefetch int
	logger   *zap.Logger
}

func NewRabbitConsumer(ch *amqp.Channel, prefetch int, logger *zap.Logger) Consumer {
	if prefetch <= 0 {
		prefetch = 1
	}

	return &RabbitConsumer{ch: ch, prefetch: prefetch, logger: logger}
}

func (c *RabbitConsumer) Consume(ctx context.Context, queue string, handler Handle) error {
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return err
	}

	tag := queue + "-" + time.Now().UTC().Format("20060102150405")
	deliveries, err := c.ch.Consume(queue, tag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.logger.Info("Consuming", zap.String("queue", queue), zap.String("tag", tag), zap.Int("prefetch", c.prefetch))

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Cancel(tag, false)
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			delivery := Delivery{ID: d.MessageId, Queue: queue, Body: d.Body, Redelivered: d.Redelivered}
			outcome := Settle(d, handler(ctx, delivery))
			if outcome != Acked {
				c.logger.Warn("Message not acknowledged",
					zap.String("queue", queue),
					zap.String("messageID", d.MessageId),
					zap.Bool("redelivered", d.Redelivered),
					zap.String("outcome", string(outcome)))
			}
		}
	}
}

type Outcome string

const (
	Acked        Outcome = "acked"
	Requeued     Outcome = "requeued"
	DeadLettered Outcome = "dead_lettered"
)

// Acknowledger is the part of amqp.Delivery used to settle a message.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Settle acks on success. Temporary failures are requeued, anything else is nacked
// without requeue and ends up in the dead-letter queue.
func Settle(d Acknowledger, err error) Outcome {
	if err == nil {
		_ = d.Ack(false)
		return Acked
	}

	if IsTemporary(err) {
		_ = d.Nack(false, true)
		return Requeued
	}

	_ = d.Nack(false, false)
	return DeadLettered
}
