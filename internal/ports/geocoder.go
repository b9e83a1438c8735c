package ports

import (
	"context"
	"food-finder-service/internal/domain"
)

// Contract for resolving a free-form address into a coordinate.
type Geocoder interface {
	// Return the coordinate of the given address, or an error when the
	// address cannot be resolved. Geocoding failure is fatal to a search
	// run; no later stage executes without a center point.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}
