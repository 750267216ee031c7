package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first binding failure into an INVALID_INPUT error.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "min", "max", "len", "gte", "lte", "gt", "lt":
			return ErrInvalidInput.Withf("%s must satisfy %s=%s", field, e.Tag(), e.Param())
		case "email":
			return ErrInvalidInput.Withf("%s must be a valid email address", field)
		case "oneof":
			return ErrInvalidInput.Withf("%s must be one of [%s]", field, e.Param())
		default:
			return InvalidField(field)
		}
	}

	return ErrInvalidInput.Withf("Invalid request body")
}
