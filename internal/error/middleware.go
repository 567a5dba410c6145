package middleware

import (
	"errors"
	"net/http"

	"github.com/Behyna/university-finance/internal/api/contract"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, logger, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.ResponseError{
				Code:    http.StatusText(fiberErr.Code),
				Message: fiberErr.Message,
				TrackID: trackID(c),
			})
		}

		logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.ResponseError{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
			TrackID: trackID(c),
		})
	}
}

func handleServiceError(c *fiber.Ctx, logger *zap.Logger, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == http.StatusInternalServerError && err.Code != constants.ErrCodeInternalError {
		logger.Error("Service error", zap.String("code", err.Code), zap.String("path", c.Path()), zap.Error(err))
		errorCode = constants.ErrCodeInternalError
	}

	res := contract.ResponseError{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
		TrackID: trackID(c),
	}

	// Client errors carry the cause so callers can tell which field failed.
	if status < http.StatusInternalServerError && err.Cause != nil {
		res.Error = err.Cause.Error()
	}

	return c.Status(status).JSON(res)
}

func trackID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
