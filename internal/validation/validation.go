// Package validation holds the date and time format predicates the CLI
// applies before constructing interactions. The store itself treats both
// fields as opaque strings.
package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("crmdate", func(fl validator.FieldLevel) bool {
		return ValidDate(fl.Field().String())
	})
	_ = validate.RegisterValidation("crmtime", func(fl validator.FieldLevel) bool {
		return ValidTime(fl.Field().String())
	})
}

// ValidDate reports whether s has the shape DD/MM/YYYY: ten characters,
// slashes at positions 2 and 5, digits everywhere else. Calendar
// plausibility is not checked.
func ValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 2 || i == 5 {
			if s[i] != '/' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidTime reports whether s has the shape HH:MM: five characters, a
// colon at position 2, digits everywhere else.
func ValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 2 {
			if s[i] != ':' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// InteractionInput carries the user-supplied date and time of a new
// interaction through the format validators.
type InteractionInput struct {
	Date string `validate:"required,crmdate"`
	Time string `validate:"required,crmtime"`
}

// CheckInteractionInput validates the date and time formats of a new
// interaction. It returns the validator's error describing the first
// failing rule.
func CheckInteractionInput(date, timeOfDay string) error {
	return validate.Struct(InteractionInput{Date: date, Time: timeOfDay})
}
