package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionNumberPrefix = "TRN"
	transactionNumberSpace  = 1_000_000
)

// GenerateTransactionNumber builds "TRN" + two-digit year of date + six digits drawn from rnd.
// rnd must return a value in [0, n).
func GenerateTransactionNumber(date time.Time, rnd func(n int) int) string {
	return fmt.Sprintf("%s%02d%06d", TransactionNumberPrefix, date.Year()%100, rnd(transactionNumberSpace))
}

// CategoryForType maps a transaction type to its default accounting category.
func CategoryForType(t TransactionType) Category {
	switch {
	case t.IsStudentFee():
		return CategoryIncome
	case t == TransactionTypeScholarship, t == TransactionTypeRefund:
		return CategoryScholarship
	case t == TransactionTypeSalary:
		return CategorySalary
	default:
		return CategoryExpense
	}
}

// DeriveCategory fills the category from the type only when it is unset.
func DeriveCategory(t Transaction) Transaction {
	if t.Category == CategoryUnset {
		t.Category = CategoryForType(t.TransactionType)
	}
	return t
}

// ClampAmounts keeps the paid amount within [0, amount].
func ClampAmounts(t Transaction) Transaction {
	if t.PaidAmount.IsNegative() {
		t.PaidAmount = decimal.Zero
	}

	if t.PaidAmount.GreaterThan(t.Amount) {
		t.PaidAmount = t.Amount
	}

	return t
}

// DeriveStatus applies the payment rules followed by the overdue overlay.
//
// A fully paid entry becomes paid (stamping the payment date when missing), a partially paid one
// becomes partial. With nothing paid, pending and cancelled are kept while derived statuses
// (paid, partial, overdue) fall back to pending before the overlay is evaluated.
func DeriveStatus(t Transaction, today time.Time) Transaction {
	switch {
	case t.PaidAmount.GreaterThanOrEqual(t.Amount):
		t.Status = TransactionStatusPaid
		if t.PaymentDate == nil {
			d := DateOf(today)
			t.PaymentDate = &d
		}
	case t.PaidAmount.IsPositive():
		t.Status = TransactionStatusPartial
	case t.Status != TransactionStatusCancelled:
		t.Status = TransactionStatusPending
	}

	if t.IsOverdue(today) {
		t.Status = TransactionStatusOverdue
	}

	return t
}

// PrepareForSave runs the derivations in their fixed order: category, clamp, status.
func PrepareForSave(t Transaction, today time.Time) Transaction {
	t = DeriveCategory(t)
	t = ClampAmounts(t)
	t = DeriveStatus(t, today)
	return t
}

func ValidateTransaction(t Transaction) error {
	if !t.TransactionType.Valid() {
		return NewValidationError("transaction_type", fmt.Sprintf("unknown transaction type %q", t.TransactionType))
	}

	if t.Amount.LessThan(MinAmount) {
		return NewValidationError("amount", "amount must be at least 0.001")
	}

	if t.PaidAmount.IsNegative() {
		return NewValidationError("paid_amount", "paid amount must not be negative")
	}

	if !t.Category.Valid() {
		return NewValidationError("category", fmt.Sprintf("unknown category %q", t.Category))
	}

	if t.Status != "" && !t.Status.Valid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", t.Status))
	}

	if !t.Method.Valid() {
		return NewValidationError("method", fmt.Sprintf("unknown payment method %q", t.Method))
	}

	if t.IsRecurring && (t.RecurrencePeriod == RecurrenceNone || !t.RecurrencePeriod.Valid()) {
		return NewValidationError("recurrence_period", "recurring transactions need a monthly, quarterly or yearly period")
	}

	if !t.IsRecurring && t.RecurrencePeriod != RecurrenceNone {
		return NewValidationError("recurrence_period", "recurrence period is only allowed on recurring transactions")
	}

	if t.TransactionType == TransactionTypeSalary && t.TeacherID == nil {
		return NewValidationError("teacher_id", "a teacher must be specified for salary transactions")
	}

	if t.TransactionType.IsStudentFee() && t.StudentID == nil {
		return NewValidationError("student_id", "a student must be specified for student fees")
	}

	if t.Date.IsZero() {
		return NewValidationError("date", "date is required")
	}

	return nil
}
