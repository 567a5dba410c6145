package main

import (
	"context"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/consumers"
	"github.com/Behyna/university-finance/internal/database"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/httpclient"
	"github.com/Behyna/university-finance/pkg/mq"
	"github.com/Behyna/university-finance/pkg/notifier"
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
			NewMQConsumer,
			NewNotifier,

			metrics.NewMetrics,
			service.NewClock,

			repository.NewPaymentReminderRepository,
			service.NewReminderService,

			consumers.NewReminderConsumer,
		),
		fx.Invoke(runReminderConsumer),
	).Run()
}

func runReminderConsumer(reminderConsumer consumers.ReminderConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueReminder}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", constants.QueueReminder))

			go func() {
				if err := reminderConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("reminder consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping reminder consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewNotifier(cfg *config.Config) notifier.Notifier {
	client := httpclient.NewHTTPClient(cfg.Notifier.Timeout, httpclient.WithHeader("User-Agent", "finance-worker-reminder"))
	return notifier.NewNotifier(cfg.Notifier, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
