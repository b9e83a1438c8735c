package ports

import (
	"context"
	"food-finder-service/internal/domain"
)

// Contract for discovering venues of one category around a center point.
type NearbySearcher interface {
	// Return candidates within radiusMeters of center matching category.
	// A failure affects that category only; callers continue with the rest.
	SearchNearby(ctx context.Context, center domain.Coordinate, radiusMeters int, category domain.SearchCategory) ([]domain.PlaceCandidate, error)
}

// Contract for fetching the enriched detail record of a single venue.
type DetailFetcher interface {
	// Return the detail record for the given place ID. A failure affects
	// that candidate only; callers degrade its fields to placeholders.
	FetchDetail(ctx context.Context, placeID string) (domain.PlaceDetail, error)
}
