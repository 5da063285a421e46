package store

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation means the database itself is unreachable or the operation
// failed for an ordinary reason.
type ErrorClassification int

const (
	// Other is the default classification: the database answered, the
	// operation simply failed (bad query, scan mismatch, and so on).
	Other ErrorClassification = iota

	// Unavailable indicates that the database cannot be reached at all.
	// Callers map this to a service-unavailable response.
	Unavailable
)

// ErrorClassificator classifies driver-level errors for one engine.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Connection-level failures —
// driver.ErrBadConn, a cancelled or timed-out context, and PostgreSQL
// class 08 / 57P03 error codes — are classified as [Unavailable]; any other
// error (or nil) is [Other].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Other
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	return Other
}

// classifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Unavailable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - 57P03   — cannot connect now
//
// Any code not listed above is classified as [Other].
func classifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Unavailable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Unavailable
	}

	return Other
}
