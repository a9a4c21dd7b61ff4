package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/deppfellow/travelog/internal/errs"
)

// ValidationErrors collects every field rule a value broke.
type ValidationErrors []errs.FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Error)
	}
	return strings.Join(messages, " ")
}

// Add records a violation of field.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, errs.FieldError{Field: field, Error: message})
}

// Merge appends the violations held by err, if any.
func (v *ValidationErrors) Merge(err error) {
	if other, ok := err.(ValidationErrors); ok {
		*v = append(*v, other...)
	}
}

// Err returns nil when nothing was recorded so callers can `return v.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// HTTPError renders the violations as a 422.
func (v ValidationErrors) HTTPError() *errs.HTTPError {
	return errs.NewUnprocessableEntityError(v.Error(), nil, v)
}

func requireText(v *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, fmt.Sprintf("%s must be provided.", field))
	}
}

func requireOneOf(v *ValidationErrors, field, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		v.Add(field, fmt.Sprintf("%s not an allowed value for %s.", value, field))
	}
}

// requireRange accepts lo <= value < hi.
func requireRange(v *ValidationErrors, field string, value, lo, hi int) {
	if value < lo || value >= hi {
		v.Add(field, fmt.Sprintf("%d not an allowed value for %s.", value, field))
	}
}

// ValidateEmail requires a non-empty address containing "@" and ".".
func ValidateEmail(email string) error {
	var v ValidationErrors
	switch {
	case email == "":
		v.Add("email", "Email must be provided.")
	case !strings.Contains(email, "@") || !strings.Contains(email, "."):
		v.Add("email", "Invalid email syntax.")
	}
	return v.Err()
}

// ReferenceExists reports a violation when id is not among ids. Callers
// pass the complete id set of the referenced table.
func ReferenceExists(field string, id int, ids []int) error {
	var v ValidationErrors
	if !slices.Contains(ids, id) {
		v.Add(field, fmt.Sprintf("%s does not exist.", field))
	}
	return v.Err()
}
