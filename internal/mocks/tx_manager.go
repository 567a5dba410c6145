package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type TxManager struct {
	mock.Mock
}

func (t *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := t.Called(ctx, fn)

	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(ctx)
}

// Locker runs fn immediately unless an error is programmed.
type Locker struct {
	mock.Mock
}

func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	args := l.Called(ctx, key, fn)

	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(ctx)
}
