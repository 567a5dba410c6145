package metrics

import (
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const startKey = "metrics:start"

type DatabaseMetricsCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	db      *gorm.DB
	sqlDB   *sql.DB
	poller  *poller
}

func NewDatabaseMetricsCollector(metrics *Metrics, logger *zap.Logger, db *gorm.DB) *DatabaseMetricsCollector {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql.DB from gorm.DB", zap.Error(err))
		metrics.RecordDBConnectionError()
	}

	return &DatabaseMetricsCollector{
		metrics: metrics,
		logger:  logger,
		db:      db,
		sqlDB:   sqlDB,
		poller:  newPoller(),
	}
}

// RegisterCallbacks times every gorm create/query/update/delete per table.
func (dmc *DatabaseMetricsCollector) RegisterCallbacks() error {
	cb := dmc.db.Callback()

	register := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"insert", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"select", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
	}

	for _, r := range register {
		operation := r.operation
		if err := r.before("metrics:before_"+operation, func(tx *gorm.DB) {
			tx.InstanceSet(startKey, time.Now())
		}); err != nil {
			return err
		}

		if err := r.after("metrics:after_"+operation, func(tx *gorm.DB) {
			dmc.observe(tx, operation)
		}); err != nil {
			return err
		}
	}

	return nil
}

func (dmc *DatabaseMetricsCollector) observe(tx *gorm.DB, operation string) {
	value, ok := tx.InstanceGet(startKey)
	if !ok {
		return
	}

	start, ok := value.(time.Time)
	if !ok {
		return
	}

	status := "success"
	switch {
	case errors.Is(tx.Error, gorm.ErrRecordNotFound):
		status = "not_found"
	case tx.Error != nil:
		status = "error"
	}

	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}

	dmc.metrics.RecordDBQuery(operation, table, status, time.Since(start))
}

func (dmc *DatabaseMetricsCollector) Start(interval time.Duration) {
	if dmc.sqlDB == nil {
		dmc.logger.Warn("Cannot start database metrics collector: sqlDB is nil")
		return
	}

	dmc.poller.start(interval, dmc.collect)
	dmc.logger.Info("Database metrics collector started", zap.Duration("interval", interval))
}

func (dmc *DatabaseMetricsCollector) Stop() {
	dmc.poller.stop()
	dmc.logger.Info("Database metrics collector stopped")
}

func (dmc *DatabaseMetricsCollector) collect() {
	if dmc.sqlDB == nil {
		return
	}

	stats := dmc.sqlDB.Stats()
	dmc.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
	dmc.metrics.DBConnectionsIdle.Set(float64(stats.Idle))

	dmc.logger.Debug("Database connection stats",
		zap.Int("open_connections", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int64("wait_count", stats.WaitCount),
		zap.Duration("wait_duration", stats.WaitDuration),
	)
}

func (dmc *DatabaseMetricsCollector) HealthCheck() error {
	if dmc.sqlDB == nil {
		dmc.metrics.RecordDBConnectionError()
		return sql.ErrConnDone
	}

	start := time.Now()
	err := dmc.sqlDB.Ping()

	status := "success"
	if err != nil {
		status = "error"
		dmc.metrics.RecordDBConnectionError()
	}
	dmc.metrics.RecordDBQuery("ping", "health_check", status, time.Since(start))

	return err
}
