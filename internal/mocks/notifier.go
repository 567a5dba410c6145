package mocks

import (
	"context"

	"github.com/Behyna/university-finance/pkg/notifier"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) SendReminder(ctx context.Context, notification notifier.ReminderNotification) (notifier.Response, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(notifier.Response), args.Error(1)
}
