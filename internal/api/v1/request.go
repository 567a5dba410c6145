package v1

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	TransactionType  string          `json:"transaction_type" validate:"required,oneof=tuition exam_fee library_fee lab_fee scholarship refund salary maintenance equipment other"`
	Category         string          `json:"category" validate:"omitempty,oneof=income expense scholarship salary"`
	Amount           decimal.Decimal `json:"amount" validate:"positive_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount" validate:"amount"`
	StudentID        *int64          `json:"student_id" validate:"omitempty,gt=0"`
	TeacherID        *int64          `json:"teacher_id" validate:"omitempty,gt=0"`
	Date             string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate          string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentDate      string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Status           string          `json:"status" validate:"omitempty,oneof=paid pending overdue cancelled partial"`
	Method           string          `json:"method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	Description      string          `json:"description" validate:"max=2000"`
	ReceiptNumber    string          `json:"receipt_number" validate:"max=50"`
	InvoiceNumber    string          `json:"invoice_number" validate:"max=50"`
	IsRecurring      bool            `json:"is_recurring"`
	RecurrencePeriod string          `json:"recurrence_period" validate:"omitempty,oneof=monthly quarterly yearly"`
}

// UpdateTransactionRequest leaves absent fields untouched.
type UpdateTransactionRequest struct {
	TransactionType  *string          `json:"transaction_type" validate:"omitempty,oneof=tuition exam_fee library_fee lab_fee scholarship refund salary maintenance equipment other"`
	Category         *string          `json:"category" validate:"omitempty,oneof=income expense scholarship salary"`
	Amount           *decimal.Decimal `json:"amount" validate:"omitempty,positive_amount"`
	StudentID        *int64           `json:"student_id" validate:"omitempty,gt=0"`
	TeacherID        *int64           `json:"teacher_id" validate:"omitempty,gt=0"`
	Date             *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate          *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status           *string          `json:"status" validate:"omitempty,oneof=pending cancelled"`
	Method           *string          `json:"method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	Description      *string          `json:"description" validate:"omitempty,max=2000"`
	ReceiptNumber    *string          `json:"receipt_number" validate:"omitempty,max=50"`
	InvoiceNumber    *string          `json:"invoice_number" validate:"omitempty,max=50"`
	IsRecurring      *bool            `json:"is_recurring"`
	RecurrencePeriod *string          `json:"recurrence_period" validate:"omitempty,oneof=monthly quarterly yearly"`
}

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"positive_amount"`
	Method        string          `json:"method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	ReceiptNumber string          `json:"receipt_number" validate:"max=50"`
	PaymentDate   string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

type ListTransactionsRequest struct {
	Type        string `query:"type" validate:"omitempty,oneof=tuition exam_fee library_fee lab_fee scholarship refund salary maintenance equipment other"`
	Category    string `query:"category" validate:"omitempty,oneof=income expense scholarship salary"`
	Status      string `query:"status" validate:"omitempty,oneof=paid pending overdue cancelled partial"`
	Method      string `query:"method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	StudentID   int64  `query:"student_id" validate:"gte=0"`
	TeacherID   int64  `query:"teacher_id" validate:"gte=0"`
	OverdueOnly bool   `query:"overdue"`
	From        string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To          string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset      int    `query:"offset" validate:"gte=0"`
}

type CreateBudgetRequest struct {
	Department      string          `json:"department" validate:"required,oneof=engineering medicine sciences arts economics law administration it library student_affairs maintenance salaries"`
	BudgetType      string          `json:"budget_type" validate:"omitempty,oneof=operational capital salary scholarship development"`
	Year            int             `json:"year" validate:"required,min=1900,max=2200"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" validate:"positive_amount"`
	Description     string          `json:"description" validate:"max=2000"`
	IsActive        *bool           `json:"is_active"`
}

type UpdateBudgetRequest struct {
	AllocatedAmount *decimal.Decimal `json:"allocated_amount" validate:"omitempty,positive_amount"`
	SpentAmount     *decimal.Decimal `json:"spent_amount" validate:"omitempty,amount"`
	CommittedAmount *decimal.Decimal `json:"committed_amount" validate:"omitempty,amount"`
	Description     *string          `json:"description" validate:"omitempty,max=2000"`
	IsActive        *bool            `json:"is_active"`
}

type BudgetAmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_amount"`
	// Commitment is the part of a spend covered by an earlier commit.
	Commitment decimal.Decimal `json:"commitment" validate:"amount"`
}

type CanSpendRequest struct {
	Amount string `query:"amount" validate:"required,positive_amount"`
}

type ListBudgetsRequest struct {
	Department string `query:"department" validate:"omitempty,oneof=engineering medicine sciences arts economics law administration it library student_affairs maintenance salaries"`
	BudgetType string `query:"budget_type" validate:"omitempty,oneof=operational capital salary scholarship development"`
	Year       int    `query:"year" validate:"omitempty,min=1900,max=2200"`
	ActiveOnly bool   `query:"active"`
}

type CreateSalaryRequest struct {
	TeacherID     int64           `json:"teacher_id" validate:"required,gt=0"`
	Month         int             `json:"month" validate:"required,min=1,max=12"`
	Year          int             `json:"year" validate:"required,min=1900,max=2200"`
	BaseSalary    decimal.Decimal `json:"base_salary" validate:"positive_amount"`
	Bonus         decimal.Decimal `json:"bonus" validate:"amount"`
	Deductions    decimal.Decimal `json:"deductions" validate:"amount"`
	NetSalary     decimal.Decimal `json:"net_salary" validate:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	Comments      string          `json:"comments" validate:"max=2000"`
}

type PaySalaryRequest struct {
	Method   string `json:"method" validate:"omitempty,oneof=bank_transfer credit_card cash check mobile_payment"`
	BudgetID *int64 `json:"budget_id" validate:"omitempty,gt=0"`
}

type ListSalariesRequest struct {
	TeacherID int64  `query:"teacher_id" validate:"gte=0"`
	Year      int    `query:"year" validate:"omitempty,min=1900,max=2200"`
	Month     int    `query:"month" validate:"omitempty,min=1,max=12"`
	Status    string `query:"status" validate:"omitempty,oneof=pending processing paid cancelled"`
}

type UpsertSettingRequest struct {
	Value       string `json:"value"`
	Type        string `json:"type" validate:"omitempty,oneof=string number boolean json date"`
	Description string `json:"description" validate:"max=2000"`
}

type GenerateReportRequest struct {
	ReportType  string `json:"report_type" validate:"required,oneof=daily weekly monthly quarterly yearly"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type ListReportsRequest struct {
	ReportType string `query:"report_type" validate:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset     int    `query:"offset" validate:"gte=0"`
}
