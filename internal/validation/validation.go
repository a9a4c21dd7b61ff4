// Package validation binds request payloads and checks their wire format.
//
// Struct tags (`validate:"..."`) cover what can be decided from the request
// alone, such as the date_visited layout. Domain rules with the journal's
// own wording live in the model package; both end up as a 422 listing
// every offending field.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON (or path param) name so field
// errors match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// Struct runs the tag rules of s.
func Struct(s any) error {
	return validate.Struct(s)
}
