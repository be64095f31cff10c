package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) []Error {
	var errs []Error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, Error{
				Field:   e.Namespace(),
				Message: e.Error(),
				tag:     e.Tag(),
			})
		}
	}
	return errs
}

// Summary joins the formatted field errors into one line.
func Summary(err error) string {
	errs := FormatValidationError(err)
	if len(errs) == 0 {
		return err.Error()
	}
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field + " (" + e.Tag() + ")"
	}
	return "invalid " + strings.Join(fields, ", ")
}

// Error represents a validation error
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	tag     string
}

func (e Error) Tag() string { return e.tag }
