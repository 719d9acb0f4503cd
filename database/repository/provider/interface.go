package providerRepo

import (
	"errors"

	"quickfind/models"
)

// ErrNotFound is returned when no provider matches the query.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines the catalog reads QuickFind performs. The
// catalog subsystem owns writes; this core only takes snapshots.
type ProviderRepository interface {
	// GetByID retrieves a provider snapshot by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetActive retrieves active providers, optionally restricted to a category.
	GetActive(category string) ([]models.Provider, error)
}
