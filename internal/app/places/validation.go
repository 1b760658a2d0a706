package places

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bestlocations/internal/models"
)

// fieldRules holds the validator tags applied to each place field.
var fieldRules = map[string]string{
	models.FieldTitle:       "max=200",
	models.FieldPrice:       "max=100",
	models.FieldDescription: "max=5000",
	models.FieldLocation:    "max=300",
	models.FieldImage:       "omitempty,max=2048,http_url",
}

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every problem found in a submitted place.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid place: " + strings.Join(msgs, "; ")
}

// Add records a problem with field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// For returns the first message recorded for field, or "".
func (e *ValidationError) For(field string) string {
	if e == nil {
		return ""
	}
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// OrNil returns e when it holds at least one problem.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// checkFields validates the given field values in display order.
func checkFields(v *validator.Validate, fields map[string]string) error {
	verr := &ValidationError{}
	for _, name := range models.PlaceFields {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := v.Var(value, fieldRules[name]); err != nil {
			var ves validator.ValidationErrors
			if !errors.As(err, &ves) {
				return fmt.Errorf("validate %s: %w", name, err)
			}
			for _, fe := range ves {
				verr.Add(name, describe(fe))
			}
		}
	}
	return verr.OrNil()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "http_url":
		return "must be an http or https URL"
	default:
		return "is invalid"
	}
}
