package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visitRequest struct {
	ID          int    `param:"id"`
	Name        string `json:"location_name" validate:"required"`
	DateVisited string `json:"date_visited" validate:"omitempty,datetime=2006-01-02T15:04:05Z"`
}

func (r *visitRequest) Validate() error {
	return Struct(r)
}

type modelRuleRequest struct {
	Rating int `json:"rating"`
}

func (r *modelRuleRequest) Validate() error {
	var v model.ValidationErrors
	if r.Rating > 4 {
		v.Add("rating", "5 not an allowed value for rating.")
	}
	return v.Err()
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/locations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "got %T", err)
	return httpErr
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	req := &visitRequest{}
	err := BindAndValidate(newContext(`{"location_name":"Haneul Park","date_visited":"2019-05-04T13:45:00.000000Z"}`), req)

	require.NoError(t, err)
	assert.Equal(t, "Haneul Park", req.Name)
}

func TestBindAndValidateMalformedJSONIsBadRequest(t *testing.T) {
	err := BindAndValidate(newContext(`{"location_name":`), &visitRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateTagViolationsUseJSONNames(t *testing.T) {
	err := BindAndValidate(newContext(`{"date_visited":"yesterday"}`), &visitRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, []errs.FieldError{
		{Field: "location_name", Error: "location_name must be provided."},
		{Field: "date_visited", Error: "yesterday does not match format YYYY-MM-DDTHH:MM:SS.ffffffZ."},
	}, httpErr.Errors)
}

func TestBindAndValidateModelViolations(t *testing.T) {
	err := BindAndValidate(newContext(`{"rating":5}`), &modelRuleRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "5 not an allowed value for rating.", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "rating", httpErr.Errors[0].Field)
}

func TestExtractCustomValidationErrors(t *testing.T) {
	msg, fields := extractValidationError(CustomValidationErrors{{Field: "attrs", Message: "no attributes given."}})

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "attrs", Error: "no attributes given."}}, fields)
}
