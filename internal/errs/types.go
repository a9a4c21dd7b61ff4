package errs

import (
	"net/http"
)

// ReadFailureMessage is the message of the 400 returned when a list or
// fetch fails for a reason other than a missing row.
const ReadFailureMessage = "Something went wrong!"

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func codeOr(status int, code *string) string {
	if code != nil {
		return *code
	}
	return statusCode(status)
}

// NewUnauthorizedError creates a 401.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusUnauthorized),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewForbiddenError creates a 403.
func NewForbiddenError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusForbidden),
		Message:  message,
		Status:   http.StatusForbidden,
		Override: override,
	}
}

// NewBadRequestError creates a 400. A nil code falls back to BAD_REQUEST.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	return &HTTPError{
		Code:     codeOr(http.StatusBadRequest, code),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404. A nil code falls back to NOT_FOUND.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     codeOr(http.StatusNotFound, code),
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewUnprocessableEntityError creates a 422 listing every violated field.
// It is the response for any validator rejection.
func NewUnprocessableEntityError(message string, code *string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     codeOr(http.StatusUnprocessableEntity, code),
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: true,
		Errors:   errors,
	}
}

// NewReadFailureError wraps an unexpected list/fetch failure into a 400.
// The cause is rendered as a string under the "stack_trace" field.
func NewReadFailureError(cause error) *HTTPError {
	code := "READ_FAILED"
	return NewBadRequestError(ReadFailureMessage, false, &code, []FieldError{
		{Field: "stack_trace", Error: cause.Error()},
	}, nil)
}

// NewTooManyRequestsError creates a 429.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusTooManyRequests),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 with the generic status text only.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a validator error into a 422.
func ValidationError(err error) *HTTPError {
	return NewUnprocessableEntityError("Validation failed: "+err.Error(), nil, nil)
}
