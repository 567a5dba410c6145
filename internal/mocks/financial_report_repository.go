package mocks

import (
	"context"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/stretchr/testify/mock"
)

type FinancialReportRepository struct {
	mock.Mock
}

func (m *FinancialReportRepository) Create(ctx context.Context, report *model.FinancialReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *FinancialReportRepository) GetByID(ctx context.Context, id int64) (*model.FinancialReport, error) {
	args := m.Called(ctx, id)
	report, _ := args.Get(0).(*model.FinancialReport)
	return report, args.Error(1)
}

func (m *FinancialReportRepository) List(ctx context.Context, reportType model.ReportType, limit, offset int) ([]model.FinancialReport, error) {
	args := m.Called(ctx, reportType, limit, offset)
	return args.Get(0).([]model.FinancialReport), args.Error(1)
}
