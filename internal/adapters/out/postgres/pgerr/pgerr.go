// Package pgerr classifies PostgreSQL errors into the application error taxonomy.
package pgerr

import (
	"errors"

	"dealership/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation        = "23505"
	ForeignKeyViolation    = "23503"
	CheckViolation         = "23514"
	NumericValueOutOfRange = "22003"
	SerializationFailure   = "40001"
	DeadlockDetected       = "40P01"
	LockNotAvailable       = "55P03"
)

// Code returns the SQLSTATE of err, or "" when err does not come from the server.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Translate maps lock contention to errs.TransientError and values the schema
// refuses to store to validation errors. Every other error is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	switch Code(err) {
	case SerializationFailure, DeadlockDetected, LockNotAvailable:
		return errs.NewTransientError(err)
	case NumericValueOutOfRange:
		return errs.NewValueIsOutOfRangeErrorWithCause(column(err), "stored value", "column minimum", "column maximum", err)
	case CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(Constraint(err), err)
	default:
		return err
	}
}

func column(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return "value"
}

// IsUniqueViolation reports whether err violates the named unique constraint.
// An empty name matches any unique constraint.
func IsUniqueViolation(err error, constraint string) bool {
	return Code(err) == UniqueViolation && (constraint == "" || Constraint(err) == constraint)
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}
