package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(fmt.Errorf("insert city: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "cities",
		ConstraintName: "unique_city_country",
	}))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "CITY_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A City with this Country already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		TableName:  "locationNotes",
		ColumnName: "location_id",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "LOCATION_NOTE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Location does not exist", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "location_id", httpErr.Errors[0].Field)
}

func TestHandleErrorNotNullAndCheck(t *testing.T) {
	notNull := asHTTPError(t, HandleError(&pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "email"}))
	assert.Equal(t, "USER_REQUIRED", notNull.Code)
	assert.Equal(t, "The Email is required", notNull.Message)

	check := asHTTPError(t, HandleError(&pgconn.PgError{Code: "23514", TableName: "locations", ColumnName: "rating"}))
	assert.Equal(t, "LOCATION_INVALID", check.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, check.Status)
}

func TestHandleErrorNoRows(t *testing.T) {
	named := asHTTPError(t, HandleError(fmt.Errorf("table:cities:id 9: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, named.Status)
	assert.Equal(t, "City not found", named.Message)

	generic := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", generic.Message)
}

func TestHandleErrorPassThroughAndFallback(t *testing.T) {
	original := errs.NewNotFoundError("user not found", true, nil)
	assert.Same(t, original, HandleError(original))

	fallback := asHTTPError(t, HandleError(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, fallback.Status)

	other := asHTTPError(t, HandleError(&pgconn.PgError{Code: "53300"}))
	assert.Equal(t, http.StatusInternalServerError, other.Status)
}

func TestMapping(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, Other, MapCode("99999"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("weird"))

	converted := ConvertPgError(&pgconn.PgError{Code: "23503", Severity: "ERROR", Message: "fk"})
	assert.Equal(t, ForeignKeyViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "city", singular("cities"))
	assert.Equal(t, "city_note", singular("cityNotes"))
	assert.Equal(t, "user", singular("users"))
	assert.Equal(t, "location_note", singular("locationNotes"))
}
