package ports

import (
	"context"

	"github.com/modstash/modstash/internal/core/domain"
)

// ModRegistry defines the port for the mod library registry. The stager
// never writes it; commands register the staged result after the stager
// hands ownership back.
type ModRegistry interface {
	// Save adds or updates a mod record
	Save(ctx context.Context, rec domain.ModRecord) error

	// Get retrieves a mod record by id
	Get(ctx context.Context, id string) (*domain.ModRecord, error)

	// List returns all registered mods
	List(ctx context.Context) ([]domain.ModRecord, error)

	// Search finds mods matching a query
	Search(ctx context.Context, query string) ([]domain.ModRecord, error)

	// Delete removes a mod from the registry
	Delete(ctx context.Context, id string) error
}
