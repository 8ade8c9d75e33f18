package statementdelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidAmount checks that the bound amount is a positive decimal number.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}

	return amountDecimal.IsPositive()
}
