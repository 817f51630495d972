package countries

import (
	"context"

	"github.com/joefazee/travel-explorer/models"
)

// Repository defines the interface for country data access
type Repository interface {
	// FetchAll returns every country known to the upstream API in source order.
	FetchAll(ctx context.Context) ([]models.Country, error)
}

// Service defines the interface for country business logic
type Service interface {
	Browse(ctx context.Context, q BrowseQuery) (*Listing, error)
	GetByCode(ctx context.Context, code string) (*models.Country, error)
	State() LoadState
}
