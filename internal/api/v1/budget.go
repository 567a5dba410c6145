package v1

import (
	"net/http"

	"github.com/Behyna/university-finance/internal/api/contract"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type budgetOperation func(ctx *fiber.Ctx, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error)

func (h *Handler) CreateBudget(c *fiber.Ctx) error {
	var request CreateBudgetRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	budget, err := h.budgets.Create(c.UserContext(), service.CreateBudgetCommand{
		Department:      model.Department(request.Department),
		BudgetType:      model.BudgetType(request.BudgetType),
		Year:            request.Year,
		AllocatedAmount: request.AllocatedAmount,
		Description:     request.Description,
		IsActive:        request.IsActive,
	})
	if err != nil {
		h.logger.Error("Failed to create budget",
			zap.String("department", request.Department),
			zap.Int("year", request.Year),
			zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusCreated, constants.BudgetCreated, newBudgetResponse(budget))
}

func (h *Handler) GetBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	budget, err := h.budgets.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.BudgetRetrieved, newBudgetResponse(budget))
}

func (h *Handler) ListBudgets(c *fiber.Ctx) error {
	var request ListBudgetsRequest

	responseError := h.XValidator.ValidateQuery(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	budgets, err := h.budgets.List(c.UserContext(), service.ListBudgetsQuery{
		Department: model.Department(request.Department),
		BudgetType: model.BudgetType(request.BudgetType),
		Year:       request.Year,
		ActiveOnly: request.ActiveOnly,
	})
	if err != nil {
		h.logger.Error("Failed to list budgets", zap.Error(err))
		return err
	}

	res := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		res = append(res, newBudgetResponse(b))
	}

	return h.respond(c, http.StatusOK, constants.BudgetsListed, res)
}

func (h *Handler) UpdateBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request UpdateBudgetRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	budget, err := h.budgets.Update(c.UserContext(), service.UpdateBudgetCommand{
		BudgetID:        id,
		AllocatedAmount: request.AllocatedAmount,
		SpentAmount:     request.SpentAmount,
		CommittedAmount: request.CommittedAmount,
		Description:     request.Description,
		IsActive:        request.IsActive,
	})
	if err != nil {
		h.logger.Error("Failed to update budget", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.BudgetUpdated, newBudgetResponse(budget))
}

func (h *Handler) DeleteBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.budgets.Delete(c.UserContext(), id); err != nil {
		h.logger.Error("Failed to delete budget", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.BudgetDeleted, nil)
}

func (h *Handler) CanSpend(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request CanSpendRequest

	responseError := h.XValidator.ValidateQuery(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeValidationFailed, model.NewValidationError("amount", err.Error()))
	}

	ok, err := h.budgets.CanSpend(c.UserContext(), id, amount)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.BudgetChecked, CanSpendResponse{
		BudgetID: id,
		Amount:   money(amount),
		CanSpend: ok,
	})
}

func (h *Handler) CommitBudget(c *fiber.Ctx) error {
	return h.budgetAmount(c, "commit", constants.BudgetCommitted, constants.ErrCodeInsufficientFunds,
		func(ctx *fiber.Ctx, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
			return h.budgets.Commit(ctx.UserContext(), cmd)
		})
}

func (h *Handler) ReleaseCommitment(c *fiber.Ctx) error {
	return h.budgetAmount(c, "release", constants.BudgetReleased, constants.ErrCodeInsufficientCommitment,
		func(ctx *fiber.Ctx, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
			return h.budgets.ReleaseCommitment(ctx.UserContext(), cmd)
		})
}

func (h *Handler) SpendBudget(c *fiber.Ctx) error {
	return h.budgetAmount(c, "spend", constants.BudgetSpent, constants.ErrCodeInsufficientFunds,
		func(ctx *fiber.Ctx, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
			return h.budgets.Spend(ctx.UserContext(), cmd)
		})
}

// budgetAmount answers 409 with the unchanged budget when the operation is not applied.
func (h *Handler) budgetAmount(c *fiber.Ctx, operation, message, rejectCode string, op budgetOperation) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request BudgetAmountRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	result, err := op(c, service.BudgetAmountCommand{BudgetID: id, Amount: request.Amount, Matched: request.Commitment})
	if err != nil {
		h.logger.Error("Budget operation failed",
			zap.String("operation", operation),
			zap.Int64("id", id),
			zap.Error(err))
		return err
	}

	if !result.Applied {
		h.logger.Info("Budget operation rejected",
			zap.String("operation", operation),
			zap.Int64("id", id),
			zap.String("amount", request.Amount.String()))

		return c.Status(http.StatusConflict).JSON(contract.Response{
			Code:    rejectCode,
			Message: constants.GetErrorMessage(rejectCode),
			TrackID: trackID(c),
			Result:  newBudgetResponse(result.Budget),
		})
	}

	return h.respond(c, http.StatusOK, message, newBudgetResponse(result.Budget))
}
