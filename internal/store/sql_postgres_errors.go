package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It separates failures caused by the request (constraint violations, bad
// input) from transient infrastructure failures.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and non-driver errors.
	Unclassified ErrorClassification = iota

	// UniqueConflict is a unique constraint violation (23505).
	UniqueConflict

	// MissingReference is a foreign key violation (23503).
	MissingReference

	// InvalidData covers check, not-null and data exceptions (class 22, 23514, 23502).
	InvalidData

	// Transient covers connection loss, serialization failures and deadlocks.
	Transient
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueConflict

	case pgerrcode.ForeignKeyViolation:
		return MissingReference

	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.DataException,
		pgerrcode.InvalidTextRepresentation,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow:
		return InvalidData

	// Class 08 — connection exceptions, class 40 — transaction rollback
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Unclassified
}
