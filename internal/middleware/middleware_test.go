package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRequestID(t *testing.T, incoming string) (header, stored string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		stored = GetRequestID(c)
		return nil
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(RequestIDHeader), stored
}

func TestRequestID(t *testing.T) {
	t.Run("generated when absent", func(t *testing.T) {
		header, stored := serveRequestID(t, "")
		assert.Equal(t, header, stored)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("client uuid is kept", func(t *testing.T) {
		id := uuid.NewString()
		header, stored := serveRequestID(t, id)
		assert.Equal(t, id, header)
		assert.Equal(t, id, stored)
	})

	t.Run("other client values are replaced", func(t *testing.T) {
		header, _ := serveRequestID(t, "trace me please")
		assert.NotEqual(t, "trace me please", header)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})
}

func TestGetRequestIDOutsideMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}

func TestNormalize(t *testing.T) {
	var violations model.ValidationErrors
	violations.Add("rating", "5 not an allowed value for rating.")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error passes through", errs.NewNotFoundError("no cities exist", true, nil), http.StatusNotFound, "no cities exist"},
		{"model violations", violations, http.StatusUnprocessableEntity, "5 not an allowed value for rating."},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"bind error", echo.NewHTTPError(http.StatusBadRequest, "Syntax error: offset=9"), http.StatusBadRequest, "Syntax error: offset=9"},
		{"unique violation", &pgconn.PgError{Code: "23505", TableName: "cities", ConstraintName: "unique_city_country"}, http.StatusUnprocessableEntity, ""},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.err)
			assert.Equal(t, tt.status, got.Status)
			if tt.message != "" {
				assert.Equal(t, tt.message, got.Message)
			}
			assert.Equal(t, tt.status, statusOf(tt.err, http.StatusOK))
		})
	}
}

func TestStatusOfWithoutError(t *testing.T) {
	assert.Equal(t, http.StatusAccepted, statusOf(nil, http.StatusAccepted))
}
