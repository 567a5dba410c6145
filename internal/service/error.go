package service

import (
	"errors"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/pkg/lock"
)

var (
	ErrInsufficientFunds      = errors.New("INSUFFICIENT_FUNDS")
	ErrInsufficientCommitment = errors.New("INSUFFICIENT_COMMITMENT")
	ErrSalaryAlreadyPaid      = errors.New("SALARY_ALREADY_PAID")
	ErrNumberConflict         = errors.New("TRANSACTION_NUMBER_CONFLICT")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

var repositoryErrorCodes = []struct {
	err  error
	code string
}{
	{repository.ErrTransactionNotFound, constants.ErrCodeTransactionNotFound},
	{repository.ErrTransactionNumberExists, constants.ErrCodeTransactionNumberConflict},
	{repository.ErrBudgetNotFound, constants.ErrCodeBudgetNotFound},
	{repository.ErrSalaryNotFound, constants.ErrCodeSalaryNotFound},
	{repository.ErrSalaryExists, constants.ErrCodeSalaryExists},
	{repository.ErrSettingNotFound, constants.ErrCodeSettingNotFound},
	{repository.ErrReportNotFound, constants.ErrCodeReportNotFound},
	{lock.ErrLockNotAcquired, constants.ErrCodeBudgetLocked},
}

// toServiceError classifies err, leaving errors that already carry a code untouched.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}

	var se Error
	if errors.As(err, &se) {
		return err
	}

	var ve model.ValidationError
	if errors.As(err, &ve) {
		return NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	for _, m := range repositoryErrorCodes {
		if errors.Is(err, m.err) {
			return NewServiceError(m.code, err)
		}
	}

	return NewServiceError(constants.ErrCodeOperationFailed, err)
}

// ErrorCode extracts the code of a service error, INTERNAL_ERROR otherwise.
func ErrorCode(err error) string {
	var se Error
	if errors.As(err, &se) {
		return se.Code
	}
	return constants.ErrCodeInternalError
}
