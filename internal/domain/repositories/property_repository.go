package repositories

import (
	"context"

	"github.com/lightbnb/backend/internal/domain/entities"
)

// PropertyFilter holds the optional search criteria. Nil fields are not applied.
type PropertyFilter struct {
	// City is matched as a substring of the property city
	City *string

	OwnerID *int64

	// Prices are whole currency units; stored costs are cents
	MinimumPricePerNight *int64
	MaximumPricePerNight *int64

	// MinimumRating is compared against the average review rating
	MinimumRating *float64

	// Limit caps the result count; non-positive selects the configured default
	Limit int
}

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	// List returns listings matching every set filter, cheapest first
	List(ctx context.Context, filter PropertyFilter) ([]*entities.PropertyListing, error)

	// Create inserts the non-nil fields of property and returns the stored row
	Create(ctx context.Context, property *entities.Property) (*entities.Property, error)
}
