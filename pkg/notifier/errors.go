package notifier

import (
	"errors"
	"net/http"
)

const (
	ErrCodeRecipientNotFound = "RECIPIENT_NOT_FOUND"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeServerError       = "SERVER_ERROR"
)

var (
	ErrRecipientNotFound = errors.New(ErrCodeRecipientNotFound)
	ErrValidationFailed  = errors.New(ErrCodeValidationFailed)
	ErrTimeout           = errors.New(ErrCodeTimeout)
	ErrServerError       = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	http.StatusNotFound:            ErrRecipientNotFound,
	http.StatusBadRequest:          ErrValidationFailed,
	http.StatusUnprocessableEntity: ErrValidationFailed,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}

// IsPermanent reports whether retrying the same notification cannot succeed.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrRecipientNotFound) || errors.Is(err, ErrValidationFailed)
}
