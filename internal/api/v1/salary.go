package v1

import (
	"net/http"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) CreateSalary(c *fiber.Ctx) error {
	var request CreateSalaryRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	salary, err := h.salaries.Create(c.UserContext(), service.CreateSalaryCommand{
		TeacherID:     request.TeacherID,
		Month:         request.Month,
		Year:          request.Year,
		BaseSalary:    request.BaseSalary,
		Bonus:         request.Bonus,
		Deductions:    request.Deductions,
		NetSalary:     request.NetSalary,
		PaymentMethod: model.PaymentMethod(request.PaymentMethod),
		Comments:      request.Comments,
	})
	if err != nil {
		h.logger.Error("Failed to create salary",
			zap.Int64("teacherID", request.TeacherID),
			zap.Int("month", request.Month),
			zap.Int("year", request.Year),
			zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusCreated, constants.SalaryCreated, newSalaryResponse(salary))
}

func (h *Handler) GetSalary(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	salary, err := h.salaries.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.SalaryRetrieved, newSalaryResponse(salary))
}

func (h *Handler) ListSalaries(c *fiber.Ctx) error {
	var request ListSalariesRequest

	responseError := h.XValidator.ValidateQuery(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	salaries, err := h.salaries.List(c.UserContext(), service.ListSalariesQuery{
		TeacherID: optionalID(request.TeacherID),
		Year:      request.Year,
		Month:     request.Month,
		Status:    model.SalaryStatus(request.Status),
	})
	if err != nil {
		h.logger.Error("Failed to list salaries", zap.Error(err))
		return err
	}

	res := make([]SalaryResponse, 0, len(salaries))
	for _, s := range salaries {
		res = append(res, newSalaryResponse(s))
	}

	return h.respond(c, http.StatusOK, constants.SalariesListed, res)
}

func (h *Handler) PaySalary(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request PaySalaryRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	result, err := h.salaries.Pay(c.UserContext(), service.PaySalaryCommand{
		SalaryID: id,
		Method:   model.PaymentMethod(request.Method),
		BudgetID: request.BudgetID,
	})
	if err != nil {
		h.logger.Error("Failed to pay salary", zap.Int64("id", id), zap.Error(err))
		return err
	}

	h.logger.Info("Salary paid",
		zap.Int64("id", result.Salary.ID),
		zap.Int64("transactionID", result.Transaction.ID),
		zap.String("net", result.Salary.NetSalary.String()))

	return h.respond(c, http.StatusOK, constants.SalaryPaid, PaySalaryResponse{
		Salary:      newSalaryResponse(result.Salary),
		Transaction: newTransactionResponse(result.Transaction, h.clock.Today()),
	})
}
