package validator

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Behyna/university-finance/internal/api/contract"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	sep = " and "
)

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	ValidateQuery(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	for key, function := range valid {
		_ = validator.RegisterValidation(key, function)
	}
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

// Validator parses the JSON body into data and validates it. An empty body validates the zero request.
func (x XValidator) Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if len(c.Body()) == 0 {
		return x.check(data, message, c)
	}

	if err := c.BodyParser(data); err != nil {
		c.Status(http.StatusBadRequest)
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		}
	}

	return x.check(data, message, c)
}

// ValidateQuery is Validator for query string parameters.
func (x XValidator) ValidateQuery(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if err := c.QueryParser(data); err != nil {
		c.Status(http.StatusBadRequest)
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: err.Error(),
		}
	}

	return x.check(data, message, c)
}

func (x XValidator) check(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	start := time.Now()

	if errs := x.Validate(data); len(errs) > 0 && errs[0].Error {
		errMsgs := make([]string, 0, len(errs))
		for _, err := range errs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				message,
				err.FailedField,
			))

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.FailedField, err.Tag)
			}
		}
		errMess := strings.Join(errMsgs, sep)
		c.Status(http.StatusUnprocessableEntity)

		if x.metrics != nil {
			x.metrics.RecordValidationDuration("validation_error", time.Since(start))
		}

		return contract.Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: errMess,
		}
	}

	if x.metrics != nil {
		x.metrics.RecordValidationDuration("validation_success", time.Since(start))
	}

	return responseErr
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		verrs, ok := errs.(validator.ValidationErrors)
		if !ok {
			return []Error{{Error: true, FailedField: "request", Tag: "invalid"}}
		}

		for _, err := range verrs {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}
