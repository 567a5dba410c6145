package v1_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_CreateTransaction(t *testing.T) {
	t.Run("creates a tuition charge", func(t *testing.T) {
		env := newTestEnv(t)

		env.transactions.On("Create", mock.Anything, mock.MatchedBy(func(cmd service.CreateTransactionCommand) bool {
			return cmd.TransactionType == model.TransactionTypeTuition &&
				cmd.Amount.Equal(dec("1500.5")) &&
				cmd.PaidAmount.IsZero() &&
				cmd.DueDate != nil && cmd.DueDate.Equal(date(2025, time.March, 10)) &&
				cmd.Date == nil &&
				*cmd.StudentID == 42
		})).Return(model.Transaction{
			ID:                1,
			TransactionNumber: "TRX-2025-000123",
			TransactionType:   model.TransactionTypeTuition,
			Category:          model.CategoryIncome,
			Amount:            dec("1500.5"),
			Status:            model.TransactionStatusOverdue,
			Date:              date(2025, time.March, 1),
			DueDate:           datePtr(2025, time.March, 10),
		}, nil).Once()

		status, res := env.do(t, http.MethodPost, "transactions",
			`{"transaction_type":"tuition","amount":"1500.5","student_id":42,"due_date":"2025-03-10"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.True(t, res.Successful)
		assert.Equal(t, constants.ResponseCodeSuccess, res.Code)
		assert.NotEmpty(t, res.TrackID)

		tx := decodeResult[v1.TransactionResponse](t, res)
		assert.Equal(t, "TRX-2025-000123", tx.TransactionNumber)
		assert.Equal(t, "1500.500", tx.Amount)
		assert.Equal(t, "1500.500", tx.RemainingAmount)
		assert.Equal(t, "0.00", tx.PaymentPercentage)
		assert.True(t, tx.IsOverdue)
		assert.Equal(t, 5, tx.DaysOverdue)
		assert.Equal(t, "2025-03-10", *tx.DueDate)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":"tuition","amount":"-5"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
		assert.Contains(t, res.Message, "Amount")
	})

	t.Run("rejects more than three decimals", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":"other","amount":"1.0001"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":"donation","amount":"10"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, res.Code)
	})

	t.Run("maps a number conflict to 409", func(t *testing.T) {
		env := newTestEnv(t)

		env.transactions.On("Create", mock.Anything, mock.Anything).Return(model.Transaction{},
			service.NewServiceError(constants.ErrCodeTransactionNumberConflict, service.ErrNumberConflict)).Once()

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":"other","amount":"10"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeTransactionNumberConflict, res.Code)
		assert.False(t, res.Successful)
	})

	t.Run("hides unexpected failures behind INTERNAL_ERROR", func(t *testing.T) {
		env := newTestEnv(t)

		env.transactions.On("Create", mock.Anything, mock.Anything).Return(model.Transaction{},
			service.NewServiceError(constants.ErrCodeOperationFailed, errors.New("deadlock found"))).Once()

		status, res := env.do(t, http.MethodPost, "transactions", `{"transaction_type":"other","amount":"10"}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, constants.ErrCodeInternalError, res.Code)
		assert.Empty(t, res.Error)
	})
}

func TestHandler_GetTransaction(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)

		env.transactions.On("Get", mock.Anything, int64(9)).Return(model.Transaction{},
			service.NewServiceError(constants.ErrCodeTransactionNotFound, repository.ErrTransactionNotFound)).Once()

		status, res := env.do(t, http.MethodGet, "transactions/9", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, constants.ErrCodeTransactionNotFound, res.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodGet, "transactions/abc", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, res.Code)
	})
}

func TestHandler_ListTransactions(t *testing.T) {
	env := newTestEnv(t)

	env.transactions.On("List", mock.Anything, mock.MatchedBy(func(q service.ListTransactionsQuery) bool {
		return q.Type == model.TransactionTypeTuition &&
			q.OverdueOnly &&
			q.Limit == 10 &&
			q.StudentID != nil && *q.StudentID == 7 &&
			q.TeacherID == nil &&
			q.From != nil && q.From.Equal(date(2025, time.January, 1))
	})).Return(service.ListTransactionsResult{
		Transactions: []model.Transaction{{ID: 1, Amount: dec("100"), PaidAmount: dec("25"), Date: date(2025, time.January, 5)}},
		Total:        1,
	}, nil).Once()

	status, res := env.do(t, http.MethodGet, "transactions?type=tuition&overdue=true&limit=10&student_id=7&from=2025-01-01", "")

	assert.Equal(t, http.StatusOK, status)

	list := decodeResult[v1.ListTransactionsResponse](t, res)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, "75.000", list.Transactions[0].RemainingAmount)
	assert.Equal(t, "25.00", list.Transactions[0].PaymentPercentage)
}

func TestHandler_UpdateTransaction(t *testing.T) {
	t.Run("only pending or cancelled may be set", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPut, "transactions/3", `{"status":"paid"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("passes only the given fields", func(t *testing.T) {
		env := newTestEnv(t)

		env.transactions.On("Update", mock.Anything, mock.MatchedBy(func(cmd service.UpdateTransactionCommand) bool {
			return cmd.TransactionID == 3 &&
				cmd.Amount != nil && cmd.Amount.Equal(dec("200")) &&
				cmd.Description != nil && *cmd.Description == "lab" &&
				cmd.Status == nil && cmd.DueDate == nil
		})).Return(model.Transaction{ID: 3, Amount: dec("200"), Date: date(2025, time.March, 1)}, nil).Once()

		status, _ := env.do(t, http.MethodPut, "transactions/3", `{"amount":"200","description":"lab"}`)

		assert.Equal(t, http.StatusOK, status)
	})
}

func TestHandler_RecordPayment(t *testing.T) {
	env := newTestEnv(t)

	env.transactions.On("RecordPayment", mock.Anything, mock.MatchedBy(func(cmd service.RecordPaymentCommand) bool {
		return cmd.TransactionID == 5 && cmd.Amount.Equal(dec("40")) && cmd.Method == model.PaymentMethodCash
	})).Return(model.Transaction{
		ID:         5,
		Amount:     dec("100"),
		PaidAmount: dec("40"),
		Status:     model.TransactionStatusPartial,
		Date:       date(2025, time.March, 1),
	}, nil).Once()

	status, res := env.do(t, http.MethodPost, "transactions/5/payments", `{"amount":40,"method":"cash"}`)

	assert.Equal(t, http.StatusOK, status)

	tx := decodeResult[v1.TransactionResponse](t, res)
	assert.Equal(t, "partial", tx.Status)
	assert.Equal(t, "60.000", tx.RemainingAmount)
}

func TestHandler_CancelAndDeleteTransaction(t *testing.T) {
	env := newTestEnv(t)

	env.transactions.On("Cancel", mock.Anything, int64(4)).
		Return(model.Transaction{ID: 4, Status: model.TransactionStatusCancelled, Date: date(2025, time.March, 1)}, nil).Once()
	env.transactions.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

	status, res := env.do(t, http.MethodPost, "transactions/4/cancel", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", decodeResult[v1.TransactionResponse](t, res).Status)

	status, _ = env.do(t, http.MethodDelete, "transactions/4", "")
	assert.Equal(t, http.StatusOK, status)
}
