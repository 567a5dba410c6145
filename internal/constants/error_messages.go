package constants

import "net/http"

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed          = "VALIDATION_FAILED"
	ErrCodeTransactionNumberConflict = "TRANSACTION_NUMBER_CONFLICT"
	ErrCodeTransactionNotFound       = "TRANSACTION_NOT_FOUND"
	ErrCodeBudgetNotFound            = "BUDGET_NOT_FOUND"
	ErrCodeSalaryNotFound            = "SALARY_NOT_FOUND"
	ErrCodeSalaryExists              = "SALARY_ALREADY_EXISTS"
	ErrCodeSalaryAlreadyPaid         = "SALARY_ALREADY_PAID"
	ErrCodeSettingNotFound           = "SETTING_NOT_FOUND"
	ErrCodeReportNotFound            = "REPORT_NOT_FOUND"
	ErrCodeInsufficientFunds         = "INSUFFICIENT_FUNDS"
	ErrCodeInsufficientCommitment    = "INSUFFICIENT_COMMITMENT"
	ErrCodeBudgetLocked              = "BUDGET_LOCKED"
	ErrCodeOperationFailed           = "OPERATION_FAILED"
	ErrCodeInvalidRequestBody        = "INVALID_REQUEST_BODY"
	ErrCodeInternalError             = "INTERNAL_ERROR"
)

const (
	ErrMsgValidationFailed          = "validation failed"
	ErrMsgTransactionNumberConflict = "could not allocate a unique transaction number"
	ErrMsgTransactionNotFound       = "transaction not found"
	ErrMsgBudgetNotFound            = "budget not found"
	ErrMsgSalaryNotFound            = "salary not found"
	ErrMsgSalaryExists              = "salary already exists for this teacher and period"
	ErrMsgSalaryAlreadyPaid         = "salary already paid"
	ErrMsgSettingNotFound           = "setting not found"
	ErrMsgReportNotFound            = "report not found"
	ErrMsgInsufficientFunds         = "insufficient funds in budget"
	ErrMsgInsufficientCommitment    = "insufficient committed amount"
	ErrMsgBudgetLocked              = "budget is being updated, retry later"
	ErrMsgOperationFailed           = "operation failed"
	ErrMsgInvalidRequestBody        = "failed to parse request body"
	ErrMsgInternalError             = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:          ErrMsgValidationFailed,
	ErrCodeTransactionNumberConflict: ErrMsgTransactionNumberConflict,
	ErrCodeTransactionNotFound:       ErrMsgTransactionNotFound,
	ErrCodeBudgetNotFound:            ErrMsgBudgetNotFound,
	ErrCodeSalaryNotFound:            ErrMsgSalaryNotFound,
	ErrCodeSalaryExists:              ErrMsgSalaryExists,
	ErrCodeSalaryAlreadyPaid:         ErrMsgSalaryAlreadyPaid,
	ErrCodeSettingNotFound:           ErrMsgSettingNotFound,
	ErrCodeReportNotFound:            ErrMsgReportNotFound,
	ErrCodeInsufficientFunds:         ErrMsgInsufficientFunds,
	ErrCodeInsufficientCommitment:    ErrMsgInsufficientCommitment,
	ErrCodeBudgetLocked:              ErrMsgBudgetLocked,
	ErrCodeOperationFailed:           ErrMsgOperationFailed,
	ErrCodeInvalidRequestBody:        ErrMsgInvalidRequestBody,
	ErrCodeInternalError:             ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case ErrCodeTransactionNotFound, ErrCodeBudgetNotFound, ErrCodeSalaryNotFound,
		ErrCodeSettingNotFound, ErrCodeReportNotFound:
		return http.StatusNotFound
	case ErrCodeTransactionNumberConflict, ErrCodeSalaryExists, ErrCodeSalaryAlreadyPaid,
		ErrCodeInsufficientFunds, ErrCodeInsufficientCommitment, ErrCodeBudgetLocked:
		return http.StatusConflict
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
