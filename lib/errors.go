package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks user input that failed a type rule. It is surfaced as
// an inline form error, never as a database error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid value for " + e.Field + ": " + e.Reason
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// sqlState extracts the SQLSTATE code from a driver error, supporting both
// pgdriver (bun) and pgconn (pgx) error types.
func sqlState(err error) string {
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// MapDBError translates driver-level errors into the package sentinels so
// handlers never have to inspect raw database error text.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	switch sqlState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict) || sqlState(err) == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
