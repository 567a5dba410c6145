package main

import (
	"context"
	"strings"
	"time"

	"github.com/Behyna/university-finance/internal/api"
	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/Behyna/university-finance/internal/api/validator"
	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/database"
	middleware "github.com/Behyna/university-finance/internal/error"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/lock"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const metricsInterval = 15 * time.Second

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewLocker,

			metrics.NewMetrics,
			metrics.NewSystemCollector,
			metrics.NewDatabaseMetricsCollector,
			NewValidator,
			service.NewClock,

			repository.NewTransactionManager,
			repository.NewTransactionRepository,
			repository.NewPaymentReminderRepository,
			repository.NewBudgetRepository,
			repository.NewSalaryRepository,
			repository.NewFinancialSettingRepository,
			repository.NewFinancialReportRepository,

			service.NewTransactionService,
			service.NewBudgetService,
			service.NewSalaryService,
			service.NewSettingService,
			service.NewReportService,

			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger,
	system *metrics.SystemCollector, dbMetrics *metrics.DatabaseMetricsCollector, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Metrics.Enable {
				if err := dbMetrics.RegisterCallbacks(); err != nil {
					return err
				}
				dbMetrics.Start(metricsInterval)
				system.Start(metricsInterval)
			}

			go func() {
				if err := app.Listen(listenAddr(cfg.API.Port)); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			logger.Info("finance api started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.Metrics.Enable {
				system.Stop()
				dbMetrics.Stop()
			}
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics,
	dbMetrics *metrics.DatabaseMetricsCollector) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "university-finance",
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.Metrics.Enable {
		app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	}
	app.Use(metrics.HealthCheckMiddleware("finance-api", dbMetrics))

	return app
}

func NewValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(playground.New(), m)
}

// NewLocker serializes budget updates through redis when enabled, in-process otherwise.
func NewLocker(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (lock.Locker, error) {
	if !cfg.Redis.Enable {
		logger.Warn("redis disabled, budget locks are local to this instance")
		return lock.NewLocalLocker(), nil
	}

	client, err := lock.NewRedisClient(context.Background(), cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client, cfg.Redis, logger), nil
}

func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
