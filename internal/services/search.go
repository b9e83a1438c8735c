package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/platform/obs"
	"food-finder-service/internal/ports"
)

// ErrGeocode marks an unresolvable search address. It is the only
// failure that aborts a whole run.
var ErrGeocode = errors.New("address could not be geocoded")

type SearchRequest struct {
	Address      string
	RadiusMeters int
	Filters      FilterOptions
	SortBy       SortKey
}

// SearchResult is everything a search run hands to the presentation
// layer: the resolved center, the local time the run was evaluated at,
// the filtered and sorted rows, and the per-stage warnings collected
// along the way.
type SearchResult struct {
	Center    domain.Coordinate
	LocalTime domain.LocalTime
	Rows      []domain.DisplayRow
	Warnings  []Warning
}

// Finder runs the dining search pipeline. All collaborators are
// explicit; there is no process-wide client state.
type Finder struct {
	Geocoder    ports.Geocoder
	Searcher    ports.NearbySearcher
	Details     ports.DetailFetcher
	Distance    ports.DistanceProvider
	Clock       ports.Clock
	Categories  []domain.SearchCategory
	SettleDelay time.Duration
}

// FindDining executes one sequential pipeline run:
// geocode -> per-category search -> per-candidate detail join ->
// row building -> filter -> sort.
//
// Only geocoding failure (or context cancellation) returns an error;
// every later stage degrades per category or per candidate and reports
// through SearchResult.Warnings. An empty row set is a valid result.
func (f *Finder) FindDining(ctx context.Context, req SearchRequest) (_ *SearchResult, err error) {
	defer obs.Time(ctx, "search.FindDining")(&err)

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, fmt.Errorf("find dining: %w: empty address", ErrGeocode)
	}

	center, err := f.Geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("find dining: %w: %v", ErrGeocode, err)
	}

	categories := f.Categories
	if len(categories) == 0 {
		categories = domain.FoodCategories()
	}

	candidates, warnings, err := AggregateNearby(ctx, f.Searcher, center, req.RadiusMeters, categories, f.SettleDelay)
	if err != nil {
		return nil, fmt.Errorf("find dining: aggregate nearby: %w", err)
	}

	details, joinWarnings := JoinDetails(ctx, f.Details, candidates)
	warnings = append(warnings, joinWarnings...)

	now := f.Clock.Now()

	rows, rowWarnings := BuildRows(ctx, f.Distance, center, candidates, details, now)
	warnings = append(warnings, rowWarnings...)

	rows = FilterRows(rows, req.Filters)
	SortRows(rows, req.SortBy)

	return &SearchResult{
		Center:    center,
		LocalTime: now,
		Rows:      rows,
		Warnings:  warnings,
	}, nil
}
