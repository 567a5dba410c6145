package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeTuition     TransactionType = "tuition"
	TransactionTypeExamFee     TransactionType = "exam_fee"
	TransactionTypeLibraryFee  TransactionType = "library_fee"
	TransactionTypeLabFee      TransactionType = "lab_fee"
	TransactionTypeScholarship TransactionType = "scholarship"
	TransactionTypeRefund      TransactionType = "refund"
	TransactionTypeSalary      TransactionType = "salary"
	TransactionTypeMaintenance TransactionType = "maintenance"
	TransactionTypeEquipment   TransactionType = "equipment"
	TransactionTypeOther       TransactionType = "other"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeTuition, TransactionTypeExamFee, TransactionTypeLibraryFee, TransactionTypeLabFee,
		TransactionTypeScholarship, TransactionTypeRefund, TransactionTypeSalary, TransactionTypeMaintenance,
		TransactionTypeEquipment, TransactionTypeOther:
		return true
	}
	return false
}

// IsStudentFee reports whether the type is billed to a student.
func (t TransactionType) IsStudentFee() bool {
	switch t {
	case TransactionTypeTuition, TransactionTypeExamFee, TransactionTypeLibraryFee, TransactionTypeLabFee:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusOverdue   TransactionStatus = "overdue"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusPartial   TransactionStatus = "partial"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPaid, TransactionStatusPending, TransactionStatusOverdue,
		TransactionStatusCancelled, TransactionStatusPartial:
		return true
	}
	return false
}

// Category is an explicit optional: CategoryUnset means "derive from the transaction type".
type Category string

const (
	CategoryUnset       Category = ""
	CategoryIncome      Category = "income"
	CategoryExpense     Category = "expense"
	CategoryScholarship Category = "scholarship"
	CategorySalary      Category = "salary"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryUnset, CategoryIncome, CategoryExpense, CategoryScholarship, CategorySalary:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodNone          PaymentMethod = ""
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCheck         PaymentMethod = "check"
	PaymentMethodMobilePayment PaymentMethod = "mobile_payment"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodNone, PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodCash,
		PaymentMethodCheck, PaymentMethodMobilePayment:
		return true
	}
	return false
}

type RecurrencePeriod string

const (
	RecurrenceNone      RecurrencePeriod = ""
	RecurrenceMonthly   RecurrencePeriod = "monthly"
	RecurrenceQuarterly RecurrencePeriod = "quarterly"
	RecurrenceYearly    RecurrencePeriod = "yearly"
)

func (r RecurrencePeriod) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return true
	}
	return false
}

type Transaction struct {
	ID                int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TransactionNumber string            `gorm:"column:transaction_number;type:varchar(50);uniqueIndex;<-:create"`
	StudentID         *int64            `gorm:"column:student_id;index"`
	TeacherID         *int64            `gorm:"column:teacher_id;index"`
	TransactionType   TransactionType   `gorm:"column:transaction_type;type:varchar(20);not null;index"`
	Category          Category          `gorm:"column:category;type:varchar(20);not null"`
	Amount            decimal.Decimal   `gorm:"column:amount;type:decimal(12,3);not null"`
	PaidAmount        decimal.Decimal   `gorm:"column:paid_amount;type:decimal(12,3);not null;default:0"`
	Date              time.Time         `gorm:"column:date;type:date;not null;index"`
	DueDate           *time.Time        `gorm:"column:due_date;type:date"`
	PaymentDate       *time.Time        `gorm:"column:payment_date;type:date"`
	Status            TransactionStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	Method            PaymentMethod     `gorm:"column:method;type:varchar(20)"`
	Description       string            `gorm:"column:description;type:text"`
	ReceiptNumber     string            `gorm:"column:receipt_number;type:varchar(50)"`
	InvoiceNumber     string            `gorm:"column:invoice_number;type:varchar(50)"`
	IsRecurring       bool              `gorm:"column:is_recurring;not null;default:false"`
	RecurrencePeriod  RecurrencePeriod  `gorm:"column:recurrence_period;type:varchar(20)"`
	CreatedAt         time.Time         `gorm:"column:created_at"`
	UpdatedAt         time.Time         `gorm:"column:updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// RemainingAmount is what is still owed. Missing amounts count as zero.
func (t Transaction) RemainingAmount() decimal.Decimal {
	return t.Amount.Sub(t.PaidAmount)
}

func (t Transaction) IsOverdue(today time.Time) bool {
	if t.DueDate == nil {
		return false
	}

	if t.Status == TransactionStatusPaid || t.Status == TransactionStatusCancelled {
		return false
	}

	return DateOf(*t.DueDate).Before(DateOf(today))
}

func (t Transaction) DaysOverdue(today time.Time) int {
	if !t.IsOverdue(today) {
		return 0
	}

	return DaysBetween(*t.DueDate, today)
}

// PaymentPercentage is paid/amount*100 rounded to 2 places, 0 when amount is not positive.
func (t Transaction) PaymentPercentage() decimal.Decimal {
	return Percentage(t.PaidAmount, t.Amount)
}
