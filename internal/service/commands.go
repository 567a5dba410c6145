package service

import (
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/shopspring/decimal"
)

type CreateTransactionCommand struct {
	TransactionType  model.TransactionType
	Category         model.Category
	Amount           decimal.Decimal
	PaidAmount       decimal.Decimal
	StudentID        *int64
	TeacherID        *int64
	Date             *time.Time
	DueDate          *time.Time
	PaymentDate      *time.Time
	Status           model.TransactionStatus
	Method           model.PaymentMethod
	Description      string
	ReceiptNumber    string
	InvoiceNumber    string
	IsRecurring      bool
	RecurrencePeriod model.RecurrencePeriod
}

// UpdateTransactionCommand only touches the fields that are set.
type UpdateTransactionCommand struct {
	TransactionID    int64
	TransactionType  *model.TransactionType
	Category         *model.Category
	Amount           *decimal.Decimal
	StudentID        *int64
	TeacherID        *int64
	Date             *time.Time
	DueDate          *time.Time
	Status           *model.TransactionStatus
	Method           *model.PaymentMethod
	Description      *string
	ReceiptNumber    *string
	InvoiceNumber    *string
	IsRecurring      *bool
	RecurrencePeriod *model.RecurrencePeriod
}

type RecordPaymentCommand struct {
	TransactionID int64
	Amount        decimal.Decimal
	Method        model.PaymentMethod
	ReceiptNumber string
	PaymentDate   *time.Time
}

type ListTransactionsQuery struct {
	Type        model.TransactionType
	Category    model.Category
	Status      model.TransactionStatus
	Method      model.PaymentMethod
	StudentID   *int64
	TeacherID   *int64
	OverdueOnly bool
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

type CreateBudgetCommand struct {
	Department      model.Department
	BudgetType      model.BudgetType
	Year            int
	AllocatedAmount decimal.Decimal
	Description     string
	IsActive        *bool
}

type UpdateBudgetCommand struct {
	BudgetID        int64
	AllocatedAmount *decimal.Decimal
	SpentAmount     *decimal.Decimal
	CommittedAmount *decimal.Decimal
	Description     *string
	IsActive        *bool
}

type BudgetAmountCommand struct {
	BudgetID int64
	Amount   decimal.Decimal
	// Matched is the part of a spend drawn on an earlier commitment. Only the strict spend policy uses it.
	Matched decimal.Decimal
}

type ListBudgetsQuery struct {
	Department model.Department
	BudgetType model.BudgetType
	Year       int
	ActiveOnly bool
}

type CreateSalaryCommand struct {
	TeacherID     int64
	Month         int
	Year          int
	BaseSalary    decimal.Decimal
	Bonus         decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	PaymentMethod model.PaymentMethod
	Comments      string
}

type PaySalaryCommand struct {
	SalaryID int64
	Method   model.PaymentMethod
	// BudgetID, when set, is charged with the net salary in the same database transaction.
	BudgetID *int64
}

type ListSalariesQuery struct {
	TeacherID *int64
	Year      int
	Month     int
	Status    model.SalaryStatus
}

type UpsertSettingCommand struct {
	Key         string
	Value       string
	Type        model.SettingType
	Description string
}

type GenerateReportCommand struct {
	ReportType  model.ReportType
	PeriodStart time.Time
	PeriodEnd   time.Time
	Notes       string
}

type ListReportsQuery struct {
	ReportType model.ReportType
	Limit      int
	Offset     int
}

// ReminderCommand is the queue payload of a payment reminder.
type ReminderCommand struct {
	EventID           string     `json:"event_id"`
	ReminderID        int64      `json:"reminder_id"`
	ReminderType      string     `json:"reminder_type"`
	TransactionID     *int64     `json:"transaction_id,omitempty"`
	TransactionNumber string     `json:"transaction_number,omitempty"`
	StudentID         *int64     `json:"student_id,omitempty"`
	TeacherID         *int64     `json:"teacher_id,omitempty"`
	AmountDue         string     `json:"amount_due,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}
