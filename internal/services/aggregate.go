package services

import (
	"context"
	"time"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/ports"
)

// AggregateNearby fans one search out over every category and merges the
// results into a deduplicated candidate list, keeping first-seen order
// across the category enumeration order.
//
// A failing category contributes zero candidates and a warning; the
// remaining categories still run. settleDelay, when positive, is waited
// between consecutive category calls to stay inside the external API's
// per-second quota.
func AggregateNearby(
	ctx context.Context,
	searcher ports.NearbySearcher,
	center domain.Coordinate,
	radiusMeters int,
	categories []domain.SearchCategory,
	settleDelay time.Duration,
) ([]domain.PlaceCandidate, []Warning, error) {
	seen := make(map[string]struct{})
	candidates := make([]domain.PlaceCandidate, 0, 32)
	warnings := []Warning{}

	for i, category := range categories {
		if i > 0 && settleDelay > 0 {
			if err := settle(ctx, settleDelay); err != nil {
				return nil, nil, err
			}
		}

		results, err := searcher.SearchNearby(ctx, center, radiusMeters, category)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			warnings = append(warnings, warnf(
				StageCategorySearch, string(category),
				"search for %s places failed: %v", category, err,
			))
			continue
		}

		for _, c := range results {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			candidates = append(candidates, c)
		}
	}

	return candidates, warnings, nil
}

// settle waits for the given delay while respecting context cancellation.
func settle(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
