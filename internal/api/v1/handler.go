package v1

import (
	"fmt"
	"time"

	"github.com/Behyna/university-finance/internal/api/contract"
	"github.com/Behyna/university-finance/internal/api/validator"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const trackIDKey = "requestid"

type Handler struct {
	logger       *zap.Logger
	transactions service.TransactionService
	budgets      service.BudgetService
	salaries     service.SalaryService
	settings     service.SettingService
	reports      service.ReportService
	XValidator   validator.IXValidator
	clock        service.Clock
}

func NewHandler(logger *zap.Logger, transactions service.TransactionService, budgets service.BudgetService,
	salaries service.SalaryService, settings service.SettingService, reports service.ReportService,
	XValidator validator.IXValidator, clock service.Clock) *Handler {
	return &Handler{
		logger:       logger,
		transactions: transactions,
		budgets:      budgets,
		salaries:     salaries,
		settings:     settings,
		reports:      reports,
		XValidator:   XValidator,
		clock:        clock,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) respond(c *fiber.Ctx, status int, message string, result any) error {
	return c.Status(status).JSON(contract.Response{
		Successful: true,
		Code:       constants.ResponseCodeSuccess,
		Message:    message,
		TrackID:    trackID(c),
		Result:     result,
	})
}

// rejected writes a validator failure; the validator has already set the status.
func (h *Handler) rejected(c *fiber.Ctx, res contract.Response, request any) error {
	h.logger.Warn("Error Validator",
		zap.String("path", c.Path()),
		zap.String("code", res.Code),
		zap.Any("request", request))

	res.TrackID = trackID(c)
	return c.JSON(res)
}

func trackID(c *fiber.Ctx) string {
	id, _ := c.Locals(trackIDKey).(string)
	return id
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeInvalidRequestBody,
			fmt.Errorf("invalid id %q", c.Params("id")))
	}
	return int64(id), nil
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	d, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, service.NewServiceError(constants.ErrCodeValidationFailed,
			model.NewValidationError(field, fmt.Sprintf("%q is not a YYYY-MM-DD date", value)))
	}
	return &d, nil
}

func parseDatePtr(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseDate(field, *value)
}

func optionalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func castPtr[T ~string](value *string) *T {
	if value == nil {
		return nil
	}
	v := T(*value)
	return &v
}
