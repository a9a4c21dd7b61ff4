package handler

import (
	"encoding/json"

	"github.com/deppfellow/travelog/internal/validation"
)

// IDRequest addresses a single row by its integer id.
type IDRequest struct {
	ID int `param:"id"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

// PatchRequest carries a partial update: the row id from the path and the
// raw JSON object of attributes to replace.
type PatchRequest struct {
	ID    int            `param:"id"`
	Attrs map[string]any `json:"-"`
}

func (r *PatchRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Attrs)
}

func (r *PatchRequest) Validate() error {
	if len(r.Attrs) == 0 {
		return validation.CustomValidationErrors{{
			Field:   "attributes",
			Message: "at least one attribute must be provided.",
		}}
	}
	return nil
}
