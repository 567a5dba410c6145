package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportType string

const (
	ReportTypeDaily     ReportType = "daily"
	ReportTypeWeekly    ReportType = "weekly"
	ReportTypeMonthly   ReportType = "monthly"
	ReportTypeQuarterly ReportType = "quarterly"
	ReportTypeYearly    ReportType = "yearly"
)

func (r ReportType) Valid() bool {
	switch r {
	case ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly, ReportTypeQuarterly, ReportTypeYearly:
		return true
	}
	return false
}

type FinancialReport struct {
	ID                int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	ReportType        ReportType      `gorm:"column:report_type;type:varchar(20);not null"`
	PeriodStart       time.Time       `gorm:"column:period_start;type:date;not null"`
	PeriodEnd         time.Time       `gorm:"column:period_end;type:date;not null"`
	TotalIncome       decimal.Decimal `gorm:"column:total_income;type:decimal(15,3);not null;default:0"`
	TotalExpenses     decimal.Decimal `gorm:"column:total_expenses;type:decimal(15,3);not null;default:0"`
	TotalSalaries     decimal.Decimal `gorm:"column:total_salaries;type:decimal(15,3);not null;default:0"`
	TotalScholarships decimal.Decimal `gorm:"column:total_scholarships;type:decimal(15,3);not null;default:0"`
	NetBalance        decimal.Decimal `gorm:"column:net_balance;type:decimal(15,3);not null;default:0"`
	TransactionsCount int             `gorm:"column:transactions_count;not null;default:0"`
	Notes             string          `gorm:"column:notes;type:text"`
	GeneratedAt       time.Time       `gorm:"column:generated_at"`
}

func (FinancialReport) TableName() string {
	return "financial_reports"
}

// PeriodDuration counts both ends of the period.
func (r FinancialReport) PeriodDuration() int {
	return DaysBetween(r.PeriodStart, r.PeriodEnd) + 1
}

func (r FinancialReport) DailyAverageIncome() decimal.Decimal {
	return dailyAverage(r.TotalIncome, r.PeriodDuration())
}

func (r FinancialReport) DailyAverageExpenses() decimal.Decimal {
	return dailyAverage(r.TotalExpenses, r.PeriodDuration())
}

// ProfitMargin is net balance over income in percent, 0 without income.
func (r FinancialReport) ProfitMargin() decimal.Decimal {
	return Percentage(r.NetBalance, r.TotalIncome)
}

func dailyAverage(total decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(days))).Round(3)
}

// NetOf applies the ledger balance formula: income minus every outflow category.
func NetOf(income, expenses, salaries, scholarships decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses).Sub(salaries).Sub(scholarships)
}

func ValidateReport(r FinancialReport) error {
	if !r.ReportType.Valid() {
		return NewValidationError("report_type", "unknown report type")
	}

	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return NewValidationError("period", "period start and end are required")
	}

	if DateOf(r.PeriodEnd).Before(DateOf(r.PeriodStart)) {
		return NewValidationError("period_end", "period end must not be before period start")
	}

	return nil
}
