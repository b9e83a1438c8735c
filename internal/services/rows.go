package services

import (
	"context"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/ports"
)

// BuildRow projects one (candidate, detail) pair into a display row.
// A candidate with no detail record degrades every derived field to its
// placeholder.
func BuildRow(
	candidate domain.PlaceCandidate,
	detail domain.PlaceDetail,
	distanceText string,
	status domain.OpenStatus,
) domain.DisplayRow {
	return domain.DisplayRow{
		Name:         candidate.Name,
		Rating:       domain.FormatRating(detail.Rating),
		PriceLevel:   domain.PriceGlyphs(detail.PriceLevel),
		Types:        domain.JoinTypes(detail.Types),
		DistanceText: distanceText,
		OpenStatus:   status,
		PlaceID:      candidate.ID,
		ReviewCount:  detail.TotalReviews,
	}
}

// BuildRows assembles display rows for every candidate: walking distance
// from the search center, the open/closed classification at the given
// local time, and the formatted detail fields. Rows sharing a
// (name, distance) pair collapse to the first occurrence.
//
// A distance lookup failure degrades to "N/A" with a warning.
func BuildRows(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin domain.Coordinate,
	candidates []domain.PlaceCandidate,
	details map[string]domain.PlaceDetail,
	now domain.LocalTime,
) ([]domain.DisplayRow, []Warning) {
	rows := make([]domain.DisplayRow, 0, len(candidates))
	warnings := []Warning{}
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		distanceText, err := provider.WalkingDistance(ctx, origin, c.Location)
		if err != nil {
			warnings = append(warnings, warnf(
				StageDistance, c.ID,
				"walking distance to %q unavailable: %v", c.Name, err,
			))
			distanceText = domain.NotAvailable
		}

		detail := details[c.ID]
		status := domain.EvaluateOpenStatus(detail.Periods, now)

		key := c.Name + "|" + distanceText
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		rows = append(rows, BuildRow(c, detail, distanceText, status))
	}

	return rows, warnings
}
