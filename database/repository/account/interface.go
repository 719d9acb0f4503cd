package accountRepo

import (
	"errors"

	"quickfind/models"
)

var (
	// ErrNotFound is returned when no account matches the query.
	ErrNotFound = errors.New("account not found")
	// ErrInsufficientCredits is returned when a decrement would take the
	// credit counter below zero.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// AccountRepository exposes the slice of the account subsystem QuickFind
// depends on: identity lookups and the per-account credit counter.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// DecrementCredits atomically consumes one credit from the account.
	DecrementCredits(id string) error
}
