package constants

const (
	ResponseCodeSuccess = "success"

	TransactionCreated   = "transaction created successfully"
	TransactionRetrieved = "transaction retrieved successfully"
	TransactionsListed   = "transactions retrieved successfully"
	TransactionUpdated   = "transaction updated successfully"
	PaymentRecorded      = "payment recorded successfully"
	TransactionCancelled = "transaction cancelled successfully"
	TransactionDeleted   = "transaction deleted successfully"

	BudgetCreated    = "budget created successfully"
	BudgetRetrieved  = "budget retrieved successfully"
	BudgetsListed    = "budgets retrieved successfully"
	BudgetUpdated    = "budget updated successfully"
	BudgetDeleted    = "budget deleted successfully"
	BudgetChecked    = "budget availability checked"
	BudgetCommitted  = "amount committed successfully"
	BudgetReleased   = "commitment released successfully"
	BudgetSpent      = "amount spent successfully"
	SalaryCreated    = "salary created successfully"
	SalaryRetrieved  = "salary retrieved successfully"
	SalariesListed   = "salaries retrieved successfully"
	SalaryPaid       = "salary paid successfully"
	SettingRetrieved = "setting retrieved successfully"
	SettingsListed   = "settings retrieved successfully"
	SettingSaved     = "setting saved successfully"
	SettingDeleted   = "setting deleted successfully"
	StatisticsReady  = "statistics computed successfully"
	ReportGenerated  = "report generated successfully"
	ReportRetrieved  = "report retrieved successfully"
	ReportsListed    = "reports retrieved successfully"
)
