package web

import "github.com/go-playground/validator/v10"

// GetErrorMsg returns a human readable message for a failed binding validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "email":
		return " must be a valid email address"
	case "min":
		return " must be at least " + fe.Param() + " characters long"
	case "max":
		return " must be at most " + fe.Param() + " characters long"
	case "uuid":
		return " must be a valid uuid"
	case "amount":
		return " must be a positive decimal number"
	default:
		return " is invalid"
	}
}
