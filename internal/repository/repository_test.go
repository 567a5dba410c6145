package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Behyna/university-finance/internal/database"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ctx   = context.Background()
	today = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", "silent", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func newTransaction(number string, txType model.TransactionType, amount string) *model.Transaction {
	tx := model.Transaction{
		TransactionNumber: number,
		TransactionType:   txType,
		Amount:            dec(amount),
		PaidAmount:        decimal.Zero,
		Date:              today,
		StudentID:         int64Ptr(1),
	}
	prepared := model.PrepareForSave(tx, today)
	return &prepared
}
