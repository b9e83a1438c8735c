package ports

import "food-finder-service/internal/domain"

// Clock resolves "now" into the reference timezone used for
// opening-hours evaluation. Implementations pin a single zone so every
// venue is judged against the same local instant.
type Clock interface {
	Now() domain.LocalTime
}
