package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired = "is required"
	ErrMin      = "must be at least %s"
	ErrMax      = "must be at most %s"
	ErrOneOf    = "must be one of: %s"
	ErrSeatType = "must be one of: PLATINUM, GOLD, SILVER, UNKNOWN"
	ErrTime     = "must be a time in HH:MM format"
	ErrInvalid  = "is invalid"
)

var hhmmRgx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("seat_type", validateSeatType)
	validate.RegisterValidation("hhmm", validateTimeOfDay)

	return validate
}

func validateSeatType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PLATINUM", "GOLD", "SILVER", "UNKNOWN":
		return true
	}

	return false
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return hhmmRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMin, err.Param())
	case "max":
		return fmt.Sprintf(ErrMax, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "seat_type":
		return ErrSeatType
	case "hhmm":
		return ErrTime
	default:
		return ErrInvalid
	}
}
