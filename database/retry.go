package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// RetryConfig defines retry behavior for read queries.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// WithRetry runs op, retrying transient failures with exponential backoff.
// Constraint violations, syntax errors and missing rows never retry.
func WithRetry(ctx context.Context, op func() error) error {
	cfg := DefaultRetryConfig()
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !isRetryableError(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return err
}

// isRetryableError classifies errors by SQLSTATE. Supports both pgdriver
// (bun's driver) and pgconn (pgx) error types.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	code := ""
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		code = bunErr.Field('C')
	} else {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			code = pgErr.Code
		}
	}

	switch code {
	// Integrity violations are caller bugs or expected conflicts, never retry.
	case "23000", "23502", "23503", "23505", "23514":
		return false

	// Syntax and access-rule violations will not heal on retry.
	case "42601", "42501", "42703", "42883", "42P01", "42804":
		return false

	// Transaction conflicts are safe to retry.
	case "40001", "40P01":
		return true

	// Connection-level failures.
	case "08000", "08003", "08006", "08001", "08004", "08P01":
		return true

	// Resource exhaustion usually clears.
	case "53000", "53100", "53200", "53300", "53400":
		return true
	}

	// Unknown error without a SQLSTATE: likely a network error surfaced by the
	// driver, worth one more attempt.
	return code == ""
}
