// Package sqlerr turns PostgreSQL driver errors into application errors.
//
// Raw pgconn errors carry a SQLSTATE code and constraint metadata; this
// package classifies them and converts them into *errs.HTTPError values
// with readable messages, e.g. a unique violation on cities becomes a 422
// "A City with this Country already exists".
package sqlerr

import "fmt"

// Code classifies a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	TooManyConnections  Code = "too_many_connections"
	DeadlockDetected    Code = "deadlock_detected"
	SerializationFail   Code = "serialization_failure"
	UndefinedTable      Code = "undefined_table"
)

// Severity mirrors the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a classified PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode converts a SQLSTATE string into a Code.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "53300":
		return TooManyConnections
	case "40P01":
		return DeadlockDetected
	case "40001":
		return SerializationFail
	case "42P01":
		return UndefinedTable
	default:
		return Other
	}
}

// MapSeverity converts the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR", "FATAL", "PANIC", "WARNING", "NOTICE", "DEBUG", "INFO", "LOG":
		return Severity(severity)
	default:
		return SeverityError
	}
}
