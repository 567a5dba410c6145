package repository

import (
	"context"
	"errors"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("REPORT_NOT_FOUND")

type FinancialReportRepository interface {
	Create(ctx context.Context, report *model.FinancialReport) error
	GetByID(ctx context.Context, id int64) (*model.FinancialReport, error)
	List(ctx context.Context, reportType model.ReportType, limit, offset int) ([]model.FinancialReport, error)
}

type FinancialReport struct {
	db *gorm.DB
}

func NewFinancialReportRepository(db *gorm.DB) FinancialReportRepository {
	return &FinancialReport{db: db}
}

func (r *FinancialReport) Create(ctx context.Context, report *model.FinancialReport) error {
	return GetTx(ctx, r.db).Create(report).Error
}

func (r *FinancialReport) GetByID(ctx context.Context, id int64) (*model.FinancialReport, error) {
	var report model.FinancialReport

	err := GetTx(ctx, r.db).Where("id = ?", id).First(&report).Error
	if err == nil {
		return &report, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}

	return nil, err
}

func (r *FinancialReport) List(ctx context.Context, reportType model.ReportType, limit, offset int) ([]model.FinancialReport, error) {
	var reports []model.FinancialReport

	query := GetTx(ctx, r.db).Model(&model.FinancialReport{})
	if reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Order("generated_at DESC").Order("id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}
