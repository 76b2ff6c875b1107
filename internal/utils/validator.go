package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
// The first failed rule is surfaced as the error message.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds the validator with campaign-specific rules registered
func NewRequestValidator() *RequestValidator {
	v := validator.New()

	// inphone: canonical Indian mobile number, +91 followed by 10 digits
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validate.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("%s", validationMessage(errs[0]))
		}
		return err
	}
	return nil
}

// validationMessage renders a user-facing message for a single failed rule
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "inphone":
		return "Invalid Indian phone number format"
	case "len":
		return fmt.Sprintf("%s must be %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "url":
		return "Invalid URL format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
