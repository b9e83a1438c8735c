package services

import (
	"context"
	"errors"
	"testing"

	"food-finder-service/internal/domain"
)

func TestAggregateNearbyDeduplicatesKeepingFirstSeen(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[domain.SearchCategory][]domain.PlaceCandidate{
			domain.CategoryRestaurant: {{ID: "1"}, {ID: "2"}},
			domain.CategoryCafe:       {{ID: "2"}, {ID: "3"}},
		},
	}

	categories := []domain.SearchCategory{domain.CategoryRestaurant, domain.CategoryCafe}
	candidates, warnings, err := AggregateNearby(context.Background(), searcher, domain.Coordinate{}, 1000, categories, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}

	want := []string{"1", "2", "3"}
	if len(candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(candidates), len(want))
	}
	for i, id := range want {
		if candidates[i].ID != id {
			t.Errorf("candidates[%d].ID = %q, want %q", i, candidates[i].ID, id)
		}
	}
}

func TestAggregateNearbyPartialFailure(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[domain.SearchCategory][]domain.PlaceCandidate{
			domain.CategoryRestaurant: {{ID: "1"}},
			domain.CategoryBakery:     {{ID: "4"}},
		},
		errs: map[domain.SearchCategory]error{
			domain.CategoryCafe: errors.New("503 from upstream"),
		},
	}

	categories := []domain.SearchCategory{
		domain.CategoryRestaurant,
		domain.CategoryCafe,
		domain.CategoryBakery,
	}
	candidates, warnings, err := AggregateNearby(context.Background(), searcher, domain.Coordinate{}, 1000, categories, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The failed category contributes zero candidates; later ones still run.
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if len(searcher.calls) != 3 {
		t.Fatalf("searcher called %d times, want 3", len(searcher.calls))
	}
	if len(warnings) != 1 || warnings[0].Subject != string(domain.CategoryCafe) {
		t.Fatalf("warnings = %+v, want one for cafe", warnings)
	}
}

func TestAggregateNearbyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	searcher := &fakeSearcher{
		errs: map[domain.SearchCategory]error{
			domain.CategoryRestaurant: context.Canceled,
		},
	}

	_, _, err := AggregateNearby(ctx, searcher, domain.Coordinate{}, 1000, domain.FoodCategories(), 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
