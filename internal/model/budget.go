package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Department string

const (
	DepartmentEngineering    Department = "engineering"
	DepartmentMedicine       Department = "medicine"
	DepartmentSciences       Department = "sciences"
	DepartmentArts           Department = "arts"
	DepartmentEconomics      Department = "economics"
	DepartmentLaw            Department = "law"
	DepartmentAdministration Department = "administration"
	DepartmentIT             Department = "it"
	DepartmentLibrary        Department = "library"
	DepartmentStudentAffairs Department = "student_affairs"
	DepartmentMaintenance    Department = "maintenance"
	DepartmentSalaries       Department = "salaries"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentEngineering, DepartmentMedicine, DepartmentSciences, DepartmentArts, DepartmentEconomics,
		DepartmentLaw, DepartmentAdministration, DepartmentIT, DepartmentLibrary, DepartmentStudentAffairs,
		DepartmentMaintenance, DepartmentSalaries:
		return true
	}
	return false
}

type BudgetType string

const (
	BudgetTypeOperational BudgetType = "operational"
	BudgetTypeCapital     BudgetType = "capital"
	BudgetTypeSalary      BudgetType = "salary"
	BudgetTypeScholarship BudgetType = "scholarship"
	BudgetTypeDevelopment BudgetType = "development"
)

func (b BudgetType) Valid() bool {
	switch b {
	case BudgetTypeOperational, BudgetTypeCapital, BudgetTypeSalary, BudgetTypeScholarship, BudgetTypeDevelopment:
		return true
	}
	return false
}

// SpendPolicy selects the availability check used by Spend.
type SpendPolicy int

const (
	// SpendLenient only requires spent + amount <= allocated, ignoring outstanding commitments.
	SpendLenient SpendPolicy = iota
	// SpendStrict applies CanSpend to the part of the spend not covered by a matching commitment.
	SpendStrict
)

type Budget struct {
	ID              int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Department      Department      `gorm:"column:department;type:varchar(30);not null;index:idx_budget_envelope"`
	BudgetType      BudgetType      `gorm:"column:budget_type;type:varchar(20);not null;default:'operational';index:idx_budget_envelope"`
	Year            int             `gorm:"column:year;not null;index:idx_budget_envelope"`
	AllocatedAmount decimal.Decimal `gorm:"column:allocated_amount;type:decimal(15,3);not null"`
	SpentAmount     decimal.Decimal `gorm:"column:spent_amount;type:decimal(15,3);not null;default:0"`
	CommittedAmount decimal.Decimal `gorm:"column:committed_amount;type:decimal(15,3);not null;default:0"`
	Description     string          `gorm:"column:description;type:text"`
	IsActive        bool            `gorm:"column:is_active;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

func (b Budget) RemainingAmount() decimal.Decimal {
	return b.AllocatedAmount.Sub(b.SpentAmount).Sub(b.CommittedAmount)
}

// AvailableAmount ignores commitments.
func (b Budget) AvailableAmount() decimal.Decimal {
	return b.AllocatedAmount.Sub(b.SpentAmount)
}

func (b Budget) UtilizationPercentage() decimal.Decimal {
	return Percentage(b.SpentAmount, b.AllocatedAmount)
}

func (b Budget) CommitmentPercentage() decimal.Decimal {
	return Percentage(b.CommittedAmount, b.AllocatedAmount)
}

func (b Budget) CanSpend(amount decimal.Decimal) bool {
	return b.AvailableAmount().Sub(b.CommittedAmount).GreaterThanOrEqual(amount)
}

// Commit reserves amount. On failure the budget is returned untouched.
func (b Budget) Commit(amount decimal.Decimal) (Budget, bool) {
	if !amount.IsPositive() || !b.CanSpend(amount) {
		return b, false
	}

	b.CommittedAmount = b.CommittedAmount.Add(amount)
	return b, true
}

func (b Budget) ReleaseCommitment(amount decimal.Decimal) (Budget, bool) {
	if !amount.IsPositive() || b.CommittedAmount.LessThan(amount) {
		return b, false
	}

	b.CommittedAmount = b.CommittedAmount.Sub(amount)
	return b, true
}

// Spend records an expenditure. matched is the part of amount drawn on an earlier commitment.
//
// SpendLenient only requires spent + amount <= allocated and relieves up to amount of the
// commitment, ignoring matched. SpendStrict relieves exactly matched, which may not exceed the
// amount or the outstanding commitment, and requires CanSpend for the unmatched rest, so
// spent + committed never exceeds allocated.
func (b Budget) Spend(amount, matched decimal.Decimal, policy SpendPolicy) (Budget, bool) {
	if !amount.IsPositive() {
		return b, false
	}

	if policy == SpendStrict {
		return b.spendStrict(amount, matched)
	}

	spent := b.SpentAmount.Add(amount)
	if spent.GreaterThan(b.AllocatedAmount) {
		return b, false
	}

	b.SpentAmount = spent
	b.CommittedAmount = b.CommittedAmount.Sub(minDecimal(b.CommittedAmount, amount))
	return b, true
}

func (b Budget) spendStrict(amount, matched decimal.Decimal) (Budget, bool) {
	if matched.IsNegative() || matched.GreaterThan(amount) || matched.GreaterThan(b.CommittedAmount) {
		return b, false
	}

	if unmatched := amount.Sub(matched); unmatched.IsPositive() && !b.CanSpend(unmatched) {
		return b, false
	}

	b.SpentAmount = b.SpentAmount.Add(amount)
	b.CommittedAmount = b.CommittedAmount.Sub(matched)
	return b, true
}

func ValidateBudget(b Budget) error {
	if !b.Department.Valid() {
		return NewValidationError("department", fmt.Sprintf("unknown department %q", b.Department))
	}

	if !b.BudgetType.Valid() {
		return NewValidationError("budget_type", fmt.Sprintf("unknown budget type %q", b.BudgetType))
	}

	if b.Year <= 0 {
		return NewValidationError("year", "year must be positive")
	}

	if b.AllocatedAmount.LessThan(MinAmount) {
		return NewValidationError("allocated_amount", "allocated amount must be at least 0.001")
	}

	if b.SpentAmount.IsNegative() {
		return NewValidationError("spent_amount", "spent amount must not be negative")
	}

	if b.CommittedAmount.IsNegative() {
		return NewValidationError("committed_amount", "committed amount must not be negative")
	}

	return nil
}
