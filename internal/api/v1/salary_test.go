package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_CreateSalary(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		env := newTestEnv(t)

		env.salaries.On("Create", mock.Anything, mock.MatchedBy(func(cmd service.CreateSalaryCommand) bool {
			return cmd.TeacherID == 11 && cmd.Month == 3 && cmd.Year == 2025 &&
				cmd.BaseSalary.Equal(dec("3000")) && cmd.Deductions.Equal(dec("300"))
		})).Return(model.Salary{
			ID: 1, TeacherID: 11, Month: 3, Year: 2025,
			BaseSalary: dec("3000"), Bonus: dec("200"), Deductions: dec("320"), NetSalary: dec("2880"),
			Status: model.SalaryStatusPending,
		}, nil).Once()

		status, res := env.do(t, http.MethodPost, "salaries",
			`{"teacher_id":11,"month":3,"year":2025,"base_salary":"3000","bonus":"200","deductions":"300"}`)

		assert.Equal(t, http.StatusCreated, status)

		s := decodeResult[v1.SalaryResponse](t, res)
		assert.Equal(t, "3200.000", s.GrossSalary)
		assert.Equal(t, "2880.000", s.NetSalary)
		assert.Equal(t, "10.00", s.TaxPercentage)
	})

	t.Run("rejects month 13", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "salaries", `{"teacher_id":11,"month":13,"year":2025,"base_salary":"3000"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("duplicate period", func(t *testing.T) {
		env := newTestEnv(t)

		env.salaries.On("Create", mock.Anything, mock.Anything).Return(model.Salary{},
			service.NewServiceError(constants.ErrCodeSalaryExists, assert.AnError)).Once()

		status, res := env.do(t, http.MethodPost, "salaries", `{"teacher_id":11,"month":3,"year":2025,"base_salary":"3000"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeSalaryExists, res.Code)
	})
}

func TestHandler_PaySalary(t *testing.T) {
	paid := model.Salary{
		ID: 1, TeacherID: 11, Month: 3, Year: 2025, NetSalary: dec("2880"),
		Status: model.SalaryStatusPaid,
	}
	payment := model.Transaction{
		ID: 90, TransactionType: model.TransactionTypeSalary, Category: model.CategorySalary,
		Amount: dec("2880"), PaidAmount: dec("2880"), Status: model.TransactionStatusPaid,
		Date: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	t.Run("without a body", func(t *testing.T) {
		env := newTestEnv(t)

		env.salaries.On("Pay", mock.Anything, service.PaySalaryCommand{SalaryID: 1}).
			Return(service.PaySalaryResult{Salary: paid, Transaction: payment}, nil).Once()

		status, res := env.do(t, http.MethodPost, "salaries/1/pay", "")

		assert.Equal(t, http.StatusOK, status)

		out := decodeResult[v1.PaySalaryResponse](t, res)
		assert.Equal(t, "paid", out.Salary.Status)
		assert.Equal(t, int64(90), out.Transaction.ID)
		assert.Equal(t, "100.00", out.Transaction.PaymentPercentage)
	})

	t.Run("charged to a budget", func(t *testing.T) {
		env := newTestEnv(t)

		env.salaries.On("Pay", mock.Anything, mock.MatchedBy(func(cmd service.PaySalaryCommand) bool {
			return cmd.SalaryID == 1 && cmd.BudgetID != nil && *cmd.BudgetID == 4 &&
				cmd.Method == model.PaymentMethodBankTransfer
		})).Return(service.PaySalaryResult{}, service.NewServiceError(constants.ErrCodeInsufficientFunds,
			service.ErrInsufficientFunds)).Once()

		status, res := env.do(t, http.MethodPost, "salaries/1/pay", `{"method":"bank_transfer","budget_id":4}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeInsufficientFunds, res.Code)
	})

	t.Run("already paid", func(t *testing.T) {
		env := newTestEnv(t)

		env.salaries.On("Pay", mock.Anything, mock.Anything).Return(service.PaySalaryResult{},
			service.NewServiceError(constants.ErrCodeSalaryAlreadyPaid, service.ErrSalaryAlreadyPaid)).Once()

		status, res := env.do(t, http.MethodPost, "salaries/1/pay", "")

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeSalaryAlreadyPaid, res.Code)
	})
}

func TestHandler_ListSalaries(t *testing.T) {
	env := newTestEnv(t)

	env.salaries.On("List", mock.Anything, mock.MatchedBy(func(q service.ListSalariesQuery) bool {
		return q.TeacherID != nil && *q.TeacherID == 11 && q.Year == 2025 && q.Status == model.SalaryStatusPending
	})).Return([]model.Salary{}, nil).Once()

	status, res := env.do(t, http.MethodGet, "salaries?teacher_id=11&year=2025&status=pending", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeResult[[]v1.SalaryResponse](t, res))
}
