package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the data access layer. Handlers map these to
// HTTP statuses; nothing below this layer panics or swallows storage errors.
var (
	// ErrDuplicate is returned on unique-constraint violations
	// (username, email, like/save/friendship pairs).
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when a lookup by id matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when the acting user does not own the
	// target of a mutating operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidStatus is returned when a status transition value is not
	// one of the accepted enum members.
	ErrInvalidStatus = errors.New("invalid status")
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Toggle operations treat it as "already in that state".
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// translateNotFound maps gorm's record-not-found to the layer's sentinel.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
