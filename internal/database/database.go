package database

import (
	"context"
	"fmt"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case "sqlite":
		db, err = OpenSQLite(cfg.Database.SQLitePath, cfg.Database.LogLevel, logger)
	case "", "mysql":
		db, err = mysql.NewConnection(context.Background(), cfg.Database.Config, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Database.Migrate {
		if err := Migrate(db); err != nil {
			logger.Error("Schema migration failed", zap.Error(err))
			return nil, err
		}
	}

	return db, nil
}

// OpenSQLite opens a single-connection sqlite database. Use ":memory:" for throwaway databases.
func OpenSQLite(path, logLevel string, logger *zap.Logger) (*gorm.DB, error) {
	if path == "" {
		path = "finance.db"
	}

	db, err := gorm.Open(sqlite.Open(path), mysql.GormConfig(logLevel, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logger.Info("Using sqlite database", zap.String("path", path))

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Transaction{},
		&model.Budget{},
		&model.Salary{},
		&model.PaymentReminder{},
		&model.FinancialSetting{},
		&model.FinancialReport{},
	)
}
