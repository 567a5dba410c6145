package service

import (
	"github.com/Behyna/university-finance/internal/model"
	"github.com/shopspring/decimal"
)

type ListTransactionsResult struct {
	Transactions []model.Transaction
	Total        int64
}

// BudgetOperationResult reports a commit/release/spend. A failed precondition is Applied=false, not an error.
type BudgetOperationResult struct {
	Applied bool
	Budget  model.Budget
}

type SettingResult struct {
	Setting model.FinancialSetting
	Value   model.SettingValue
}

type PaySalaryResult struct {
	Salary      model.Salary
	Transaction model.Transaction
}

type CategoryTotals struct {
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Salaries     decimal.Decimal
	Scholarships decimal.Decimal
}

func (c CategoryTotals) NetBalance() decimal.Decimal {
	return model.NetOf(c.Income, c.Expenses, c.Salaries, c.Scholarships)
}

type TypeDistribution struct {
	TransactionType model.TransactionType
	Total           decimal.Decimal
	Count           int
}

type MonthlyAmount struct {
	Month  string
	Amount decimal.Decimal
}

type BudgetUtilization struct {
	BudgetID    int64
	Department  model.Department
	BudgetType  model.BudgetType
	Allocated   decimal.Decimal
	Spent       decimal.Decimal
	Committed   decimal.Decimal
	Remaining   decimal.Decimal
	Utilization decimal.Decimal
}

type Statistics struct {
	Totals                  CategoryTotals
	PendingCount            int
	PendingAmount           decimal.Decimal
	OverdueCount            int
	OverdueAmount           decimal.Decimal
	TransactionDistribution []TypeDistribution
	MonthlyIncome           []MonthlyAmount
	MonthlyExpenses         []MonthlyAmount
	BudgetUtilization       []BudgetUtilization
}
