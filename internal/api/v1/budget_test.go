package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/Behyna/university-finance/pkg/lock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleBudget() model.Budget {
	return model.Budget{
		ID:              2,
		Department:      model.DepartmentEngineering,
		BudgetType:      model.BudgetTypeOperational,
		Year:            2025,
		AllocatedAmount: dec("1000"),
		SpentAmount:     dec("250"),
		CommittedAmount: dec("100"),
		IsActive:        true,
	}
}

func TestHandler_CreateBudget(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("Create", mock.Anything, mock.MatchedBy(func(cmd service.CreateBudgetCommand) bool {
			return cmd.Department == model.DepartmentEngineering && cmd.Year == 2025 &&
				cmd.AllocatedAmount.Equal(dec("1000")) && cmd.IsActive == nil
		})).Return(sampleBudget(), nil).Once()

		status, res := env.do(t, http.MethodPost, "budgets", `{"department":"engineering","year":2025,"allocated_amount":"1000"}`)

		assert.Equal(t, http.StatusCreated, status)

		b := decodeResult[v1.BudgetResponse](t, res)
		assert.Equal(t, "650.000", b.RemainingAmount)
		assert.Equal(t, "750.000", b.AvailableAmount)
		assert.Equal(t, "25.00", b.UtilizationPercentage)
		assert.Equal(t, "10.00", b.CommitmentPercentage)
	})

	t.Run("requires a positive allocation", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "budgets", `{"department":"engineering","year":2025,"allocated_amount":"0"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})
}

func TestHandler_BudgetOperations(t *testing.T) {
	t.Run("commit applied", func(t *testing.T) {
		env := newTestEnv(t)

		committed := sampleBudget()
		committed.CommittedAmount = dec("300")
		env.budgets.On("Commit", mock.Anything, mock.MatchedBy(func(cmd service.BudgetAmountCommand) bool {
			return cmd.BudgetID == 2 && cmd.Amount.Equal(dec("200"))
		})).Return(service.BudgetOperationResult{Applied: true, Budget: committed}, nil).Once()

		status, res := env.do(t, http.MethodPost, "budgets/2/commit", `{"amount":"200"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, res.Successful)
		assert.Equal(t, "300.000", decodeResult[v1.BudgetResponse](t, res).CommittedAmount)
	})

	t.Run("commit rejected answers 409 with the unchanged budget", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("Commit", mock.Anything, mock.Anything).
			Return(service.BudgetOperationResult{Applied: false, Budget: sampleBudget()}, nil).Once()

		status, res := env.do(t, http.MethodPost, "budgets/2/commit", `{"amount":"5000"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.False(t, res.Successful)
		assert.Equal(t, constants.ErrCodeInsufficientFunds, res.Code)
		assert.Equal(t, "100.000", decodeResult[v1.BudgetResponse](t, res).CommittedAmount)
	})

	t.Run("release rejected reports insufficient commitment", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("ReleaseCommitment", mock.Anything, mock.Anything).
			Return(service.BudgetOperationResult{Applied: false, Budget: sampleBudget()}, nil).Once()

		status, res := env.do(t, http.MethodPost, "budgets/2/release", `{"amount":"500"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeInsufficientCommitment, res.Code)
	})

	t.Run("spend applied", func(t *testing.T) {
		env := newTestEnv(t)

		spent := sampleBudget()
		spent.SpentAmount = dec("300")
		spent.CommittedAmount = dec("50")
		env.budgets.On("Spend", mock.Anything, mock.Anything).
			Return(service.BudgetOperationResult{Applied: true, Budget: spent}, nil).Once()

		status, res := env.do(t, http.MethodPost, "budgets/2/spend", `{"amount":"50"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "300.000", decodeResult[v1.BudgetResponse](t, res).SpentAmount)
	})

	t.Run("spend forwards the matched commitment", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("Spend", mock.Anything, mock.MatchedBy(func(cmd service.BudgetAmountCommand) bool {
			return cmd.BudgetID == 2 && cmd.Amount.Equal(dec("80")) && cmd.Matched.Equal(dec("30"))
		})).Return(service.BudgetOperationResult{Applied: true, Budget: sampleBudget()}, nil).Once()

		status, _ := env.do(t, http.MethodPost, "budgets/2/spend", `{"amount":"80","commitment":"30"}`)

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("negative commitment is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "budgets/2/spend", `{"amount":"80","commitment":"-30"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("zero amount never reaches the service", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPost, "budgets/2/spend", `{"amount":"0"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("lock contention maps to 409", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("Spend", mock.Anything, mock.Anything).Return(service.BudgetOperationResult{},
			service.NewServiceError(constants.ErrCodeBudgetLocked, lock.ErrLockNotAcquired)).Once()

		status, res := env.do(t, http.MethodPost, "budgets/2/spend", `{"amount":"10"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeBudgetLocked, res.Code)
	})
}

func TestHandler_CanSpend(t *testing.T) {
	t.Run("reports availability", func(t *testing.T) {
		env := newTestEnv(t)

		env.budgets.On("CanSpend", mock.Anything, int64(2), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(dec("650"))
		})).Return(true, nil).Once()

		status, res := env.do(t, http.MethodGet, "budgets/2/can-spend?amount=650", "")

		assert.Equal(t, http.StatusOK, status)

		out := decodeResult[v1.CanSpendResponse](t, res)
		assert.True(t, out.CanSpend)
		assert.Equal(t, "650.000", out.Amount)
	})

	t.Run("requires an amount", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodGet, "budgets/2/can-spend?amount=abc", "")

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})
}

func TestHandler_ListBudgets(t *testing.T) {
	env := newTestEnv(t)

	env.budgets.On("List", mock.Anything, service.ListBudgetsQuery{
		Department: model.DepartmentEngineering,
		Year:       2025,
		ActiveOnly: true,
	}).Return([]model.Budget{sampleBudget()}, nil).Once()

	status, res := env.do(t, http.MethodGet, "budgets?department=engineering&year=2025&active=true", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeResult[[]v1.BudgetResponse](t, res), 1)
}
