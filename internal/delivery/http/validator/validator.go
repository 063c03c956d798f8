// Package validator wires go-playground/validator into echo, plus the
// storefront's custom rules.
package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator with the storefront rules
// registered:
//   - inphone: Indian 10-digit mobile number (leading 6-9)
//   - pincode: 6-digit postal code
//   - notpast: YYYY-MM-DD date not before today
func New() *requestValidator {
	validate := validator.New()

	// Registration only fails for empty tags or nil funcs; both are
	// impossible here.
	_ = validate.RegisterValidation("inphone", validPhone)
	_ = validate.RegisterValidation("pincode", validPincode)
	_ = validate.RegisterValidation("notpast", validStartDate)

	return &requestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func validPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) != 10 {
		return false
	}
	if phone[0] < '6' || phone[0] > '9' {
		return false
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func validPincode(fl validator.FieldLevel) bool {
	pincode := fl.Field().String()
	if len(pincode) != 6 {
		return false
	}
	for _, r := range pincode {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func validStartDate(fl validator.FieldLevel) bool {
	date, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return !date.Before(today)
}
