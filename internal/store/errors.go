package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnknownInterest is returned when an interest id does not exist.
	ErrUnknownInterest = errors.New("unknown interest")

	// ErrInvalidData is returned when the database rejects a value
	// (check constraint, malformed uuid, bad date).
	ErrInvalidData = errors.New("invalid data")

	// ErrConnectionAlreadyExists is returned when the pair of users already
	// has a connection, in either direction.
	ErrConnectionAlreadyExists = errors.New("connection already exists")

	// ErrConnectionNotFound is returned when no connection with the id is
	// addressed to the acting user.
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrConnectionAlreadyResolved is returned when a response targets a
	// connection that is no longer pending.
	ErrConnectionAlreadyResolved = errors.New("connection already resolved")

	// ErrUnsupportedPhoto is returned for uploads with a disallowed type or size.
	ErrUnsupportedPhoto = errors.New("unsupported photo")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
