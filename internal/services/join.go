package services

import (
	"context"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/ports"
)

// JoinDetails fetches the detail record for every candidate and returns
// a place-ID keyed map. Fetch outcomes are memoized by ID for the
// lifetime of the call: a repeated ID never re-invokes the fetcher, even
// after a failure.
//
// A failing candidate is recorded as absent plus a warning; the batch
// never aborts on individual failures.
func JoinDetails(
	ctx context.Context,
	fetcher ports.DetailFetcher,
	candidates []domain.PlaceCandidate,
) (map[string]domain.PlaceDetail, []Warning) {
	details := make(map[string]domain.PlaceDetail, len(candidates))
	attempted := make(map[string]struct{}, len(candidates))
	warnings := []Warning{}

	for _, c := range candidates {
		if _, ok := attempted[c.ID]; ok {
			continue
		}
		attempted[c.ID] = struct{}{}

		detail, err := fetcher.FetchDetail(ctx, c.ID)
		if err != nil {
			warnings = append(warnings, warnf(
				StageDetailFetch, c.ID,
				"details for %q unavailable: %v", c.Name, err,
			))
			continue
		}

		details[c.ID] = detail
	}

	return details, warnings
}
