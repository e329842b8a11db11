package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations wires the custom validators used by the request DTOs
// into gin's binding engine. Call once at startup.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("dgte0", decimalGTEZero)
}

// decimalGTEZero accepts any decimal.Decimal that is not negative. The
// zero value (an omitted amount) passes; sign conventions are derived
// from the voucher type, so a stored amount is never negative.
func decimalGTEZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}
