package service_test

import (
	"errors"
	"time"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var now = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() service.Clock {
	return func() time.Time { return now }
}

func newMetrics() *metrics.Metrics {
	return metrics.NewMetricsWith(prometheus.NewRegistry())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Finance.NumberRetries = 3
	cfg.Notifier.MaxRetries = 3
	return cfg
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func int64Ptr(v int64) *int64 {
	return &v
}

func codeOf(err error) string {
	var se service.Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
