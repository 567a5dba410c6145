package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryStatus string

const (
	SalaryStatusPending    SalaryStatus = "pending"
	SalaryStatusProcessing SalaryStatus = "processing"
	SalaryStatusPaid       SalaryStatus = "paid"
	SalaryStatusCancelled  SalaryStatus = "cancelled"
)

func (s SalaryStatus) Valid() bool {
	switch s {
	case SalaryStatusPending, SalaryStatusProcessing, SalaryStatusPaid, SalaryStatusCancelled:
		return true
	}
	return false
}

type Salary struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TeacherID     int64           `gorm:"column:teacher_id;not null;index:idx_salary_period,unique"`
	Month         int             `gorm:"column:month;not null;index:idx_salary_period,unique"`
	Year          int             `gorm:"column:year;not null;index:idx_salary_period,unique"`
	BaseSalary    decimal.Decimal `gorm:"column:base_salary;type:decimal(10,3);not null"`
	Bonus         decimal.Decimal `gorm:"column:bonus;type:decimal(10,3);not null;default:0"`
	Deductions    decimal.Decimal `gorm:"column:deductions;type:decimal(10,3);not null;default:0"`
	NetSalary     decimal.Decimal `gorm:"column:net_salary;type:decimal(10,3);not null"`
	Status        SalaryStatus    `gorm:"column:status;type:varchar(20);not null;default:'pending'"`
	PaymentDate   *time.Time      `gorm:"column:payment_date;type:date"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:varchar(20)"`
	TransactionID *int64          `gorm:"column:transaction_id"`
	Comments      string          `gorm:"column:comments;type:text"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (Salary) TableName() string {
	return "salaries"
}

func (s Salary) GrossSalary() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus)
}

func (s Salary) TaxPercentage() decimal.Decimal {
	return Percentage(s.Deductions, s.GrossSalary())
}

// PrepareSalary computes the net salary when it was left empty and stamps the payment date of a paid salary.
func PrepareSalary(s Salary, today time.Time) Salary {
	if s.Status == "" {
		s.Status = SalaryStatusPending
	}

	if s.NetSalary.IsZero() {
		s.NetSalary = s.GrossSalary().Sub(s.Deductions)
	}

	if s.Status == SalaryStatusPaid && s.PaymentDate == nil {
		d := DateOf(today)
		s.PaymentDate = &d
	}

	return s
}

func ValidateSalary(s Salary) error {
	if s.TeacherID <= 0 {
		return NewValidationError("teacher_id", "a teacher must be specified")
	}

	if s.Month < 1 || s.Month > 12 {
		return NewValidationError("month", "month must be between 1 and 12")
	}

	if s.Year <= 0 {
		return NewValidationError("year", "year must be positive")
	}

	if s.BaseSalary.LessThan(MinAmount) {
		return NewValidationError("base_salary", "base salary must be at least 0.001")
	}

	if s.Bonus.IsNegative() || s.Deductions.IsNegative() {
		return NewValidationError("deductions", "bonus and deductions must not be negative")
	}

	if s.Status != "" && !s.Status.Valid() {
		return NewValidationError("status", "unknown salary status")
	}

	if !s.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "unknown payment method")
	}

	return nil
}
