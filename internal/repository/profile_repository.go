package repository

import (
	"context"

	"github.com/focoteam/foco-backend/internal/domain"
)

// Selection is the coarse, store-evaluated narrowing of a search request.
// It is a superset filter: the search use case re-applies the complete
// compiled predicate in memory, so the store may safely return extra rows
// but must never drop a qualifying one.
type Selection struct {
	// Role narrows to an exact role value when non-empty.
	Role string
	// Location narrows to a case-insensitive location substring when non-empty.
	Location string
	// Query narrows to rows where any of full_name, bio, location or
	// username contains the text case-insensitively, when non-empty.
	Query string
}

// ProfileRepository is the read interface the search core consumes. The
// core composes predicates; persistence, indexing and migrations live with
// the storage collaborator.
type ProfileRepository interface {
	// List returns every profile matching the selection, attributes decoded.
	// One call serves as the consistency snapshot for a count+page pair.
	List(ctx context.Context, sel Selection) ([]domain.Profile, error)
	// GetByUsername returns a single profile with its portfolio images.
	GetByUsername(ctx context.Context, username string) (*domain.Profile, []domain.PortfolioImage, error)
	// Locations returns the distinct non-empty location strings in the store.
	Locations(ctx context.Context) ([]string, error)
}
