package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads.
//
// Typical pattern:
//   - tag the request struct (`validate:"omitempty,datetime=..."`)
//   - implement Validate() error as `return validation.Struct(r)`
//   - return CustomValidationErrors for rules tags cannot express
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single violation that no validator tag covers.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom violations that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate fills payload from the path params and JSON body, then
// validates it.
//
// A body that cannot be decoded is a 400; a payload that decodes but breaks
// a rule is a 422 listing every offending field.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		if fieldErrors == nil {
			return err
		}
		return errs.NewUnprocessableEntityError(msg, nil, fieldErrors)
	}

	return nil
}

// bindError keeps echo's own description of the failure when it has one.
func bindError(err error) *errs.HTTPError {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil, nil)
		}
	}
	return errs.NewBadRequestError(http.StatusText(http.StatusBadRequest), false, nil, nil, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var (
		modelErrors     model.ValidationErrors
		customErrors    CustomValidationErrors
		validatorErrors validator.ValidationErrors
	)

	switch {
	case errors.As(err, &modelErrors):
		return modelErrors.Error(), modelErrors

	case errors.As(err, &customErrors):
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: ce.Field, Error: ce.Message})
		}
		return "Validation failed", fieldErrors

	case errors.As(err, &validatorErrors):
		// handled below

	default:
		return "", nil
	}

	for _, fe := range validatorErrors {
		field := fe.Field()
		var msg string

		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s must be provided.", field)

		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s.", field, fe.Param())
			}

		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("%s must not exceed %s characters.", field, fe.Param())
			} else {
				msg = fmt.Sprintf("%s must not exceed %s.", field, fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("%v not an allowed value for %s.", fe.Value(), field)

		case "email":
			msg = "Invalid email syntax."

		case "datetime":
			msg = fmt.Sprintf("%v does not match format YYYY-MM-DDTHH:MM:SS.ffffffZ.", fe.Value())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: msg})
	}

	return "Validation failed", fieldErrors
}
