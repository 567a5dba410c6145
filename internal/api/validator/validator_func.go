package validator

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Amounts carry at most three decimals, matching the decimal(…,3) columns.
const amountRegex = `^\d+(\.\d{1,3})?$`

const (
	AmountTag         = "amount"
	PositiveAmountTag = "positive_amount"
)

var amountPattern = regexp.MustCompile(amountRegex)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AmountTag:         ValidateAmount,
	PositiveAmountTag: ValidatePositiveAmount,
}

func ValidateAmount(fl validator.FieldLevel) bool {
	return amountPattern.MatchString(fl.Field().String())
}

func ValidatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !amountPattern.MatchString(raw) {
		return false
	}

	d, err := decimal.NewFromString(raw)
	return err == nil && d.IsPositive()
}

// decimalValue lets string tags run against decimal.Decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}
