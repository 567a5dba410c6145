package mocks

import (
	"context"

	"github.com/Behyna/university-finance/pkg/mq"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, msg mq.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type Consumer struct {
	mock.Mock
}

func (m *Consumer) Consume(ctx context.Context, queue string, handler mq.Handle) error {
	args := m.Called(ctx, queue, handler)
	return args.Error(0)
}
