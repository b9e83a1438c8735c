package ports

import (
	"context"
	"food-finder-service/internal/domain"
)

// Contract for retrieving a human-readable walking distance between two
// points, as formatted by the external routing service (e.g. "1.2 km").
type DistanceProvider interface {
	WalkingDistance(ctx context.Context, origin, destination domain.Coordinate) (string, error)
}
