package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)
)

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("sessionid", func(fl validator.FieldLevel) bool {
		return ValidSessionID(fl.Field().String())
	})
}

// ValidSessionID reports whether id is a usable session identifier.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrs {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// FromInputError converts a service-level input error into field errors.
func FromInputError(err *domain.InputError) []problem.FieldError {
	return []problem.FieldError{{Field: err.Field, Message: err.Reason}}
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "sessionid":
		return "must be 1-128 letters, digits, '_' or '-'"
	default:
		return "is invalid"
	}
}
