package main

import (
	"context"
	"time"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/database"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/publishers"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			metrics.NewMetrics,
			service.NewClock,

			repository.NewTransactionManager,
			repository.NewTransactionRepository,
			repository.NewPaymentReminderRepository,

			service.NewTransactionService,
			service.NewReminderQueueService,

			publishers.NewReminderPublisher,
		),
		fx.Invoke(runOverdueWorker),
	).Run()
}

// runOverdueWorker sweeps overdue transactions and publishes the reminders the sweep creates.
func runOverdueWorker(cfg *config.Config, transactions service.TransactionService, publisher publishers.ReminderPublisher,
	clock service.Clock, logger *zap.Logger, rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueReminder}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", constants.QueueReminder))

			go every(appCtx, cfg.Finance.SweepInterval, func() {
				swept, err := transactions.SweepOverdue(appCtx, clock.Today(), cfg.Finance.BatchSize)
				if err != nil {
					logger.Error("failed to sweep overdue transactions", zap.Error(err))
					return
				}
				logger.Info("overdue sweep finished", zap.Int("count", len(swept)))
			})

			go every(appCtx, cfg.Finance.PublishInterval, func() {
				if err := publisher.Publish(appCtx); err != nil {
					logger.Error("failed to publish reminders", zap.Error(err))
				}
			})

			logger.Info("overdue worker started",
				zap.Duration("sweepInterval", cfg.Finance.SweepInterval),
				zap.Duration("publishInterval", cfg.Finance.PublishInterval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping overdue worker")
			cancel()
			return rabbit.Close()
		},
	})
}

// every runs fn once immediately, then on each tick until ctx is done.
func every(ctx context.Context, interval time.Duration, fn func()) {
	fn()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
