package constants

const (
	QueueReminder = "finance.reminder"
)

const BudgetLockPrefix = "budget:"
