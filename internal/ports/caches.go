package ports

import (
	"context"
	"food-finder-service/internal/domain"
)

// Cache boundaries for external API responses. Providers consult a cache
// before issuing a call and write results back after; a nil cache is
// valid and means "always miss". TTL policy belongs to the
// implementation, not the caller.

type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinate, bool, error)
	Put(ctx context.Context, address string, coord domain.Coordinate) error
}

type DistanceCache interface {
	Get(ctx context.Context, origin, destination string) (string, bool, error)
	Put(ctx context.Context, origin, destination, distanceText string) error
}

type DetailCache interface {
	Get(ctx context.Context, placeID string) (domain.PlaceDetail, bool, error)
	Put(ctx context.Context, placeID string, detail domain.PlaceDetail) error
}

type SearchResultCache interface {
	Get(ctx context.Context, key string) ([]domain.PlaceCandidate, bool, error)
	Put(ctx context.Context, key string, candidates []domain.PlaceCandidate) error
}
