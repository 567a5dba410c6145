package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queueArgs routes messages nacked without requeue to the queue's dead-letter queue
// through the default exchange.
func queueArgs(queue string) amqp.Table {
	return amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DeadLetterQueue(queue),
	}
}

// DeclareTopology declares each work queue together with its dead-letter queue.
func (r *RabbitMQ) DeclareTopology(queues []string) error {
	ch, err := r.OpenChannel()
	if err != nil {
		return fmt.Errorf("failed to open channel for topology: %w", err)
	}
	defer ch.Close()

	for _, queue := range queues {
		dead := DeadLetterQueue(queue)
		if _, err := ch.QueueDeclare(dead, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare dead-letter queue %s: %w", dead, err)
		}

		if _, err := ch.QueueDeclare(queue, true, false, false, false, queueArgs(queue)); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}

		r.logger.Info("Queue declared", zap.String("queue", queue), zap.String("deadLetter", dead))
	}

	return nil
}
