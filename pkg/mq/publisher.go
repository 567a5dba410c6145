package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type RabbitPublisher struct {
	ch *amqp.Channel
}

func NewRabbitPublisher(ch *amqp.Channel) Publisher { return &RabbitPublisher{ch: ch} }

func (r *RabbitPublisher) Publish(ctx context.Context, msg Message) error {
	confirm, err := r.ch.PublishWithDeferredConfirmWithContext(ctx, msg.Exchange, msg.RoutingKey, false, false,
		publishing(msg, time.Now()))
	if err != nil {
		return err
	}

	if confirm == nil {
		return nil
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}

	if !acked {
		return fmt.Errorf("message %s was nacked by the broker", msg.ID)
	}

	return nil
}

func (r *RabbitPublisher) Close() error {
	if r.ch == nil {
		return nil
	}

	return r.ch.Close()
}

func publishing(msg Message, now time.Time) amqp.Publishing {
	id := msg.ID
	if id == "" {
		id = uuid.NewString()
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    id,
		Timestamp:    now.UTC(),
		Headers:      amqp.Table(msg.Headers),
		Body:         msg.Body,
	}
}
