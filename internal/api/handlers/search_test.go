package handlers

import (
	"testing"

	"food-finder-service/internal/api/dto"
	"food-finder-service/internal/domain"
	"food-finder-service/internal/services"
)

func TestParseFiltersAbsentBlockMatchesEverything(t *testing.T) {
	opts, err := parseFilters(nil)
	if err != nil {
		t.Fatalf("parseFilters(nil) returned error: %v", err)
	}
	if opts.MinRating != 0 || opts.MaxPrice != "" {
		t.Errorf("expected zero-valued rating/price filters, got %+v", opts)
	}
	if len(opts.OpenStatuses) != 3 {
		t.Errorf("expected all three open statuses, got %v", opts.OpenStatuses)
	}
}

func TestParseFiltersAnyPriceIsNoCeiling(t *testing.T) {
	opts, err := parseFilters(&dto.SearchFilters{MaxPrice: "Any"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxPrice != "" {
		t.Errorf("MaxPrice = %q, want empty", opts.MaxPrice)
	}
}

func TestParseFiltersRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		filters dto.SearchFilters
	}{
		{"negative rating", dto.SearchFilters{MinRating: -1}},
		{"rating above five", dto.SearchFilters{MinRating: 5.5}},
		{"non dollar price", dto.SearchFilters{MaxPrice: "cheap"}},
		{"price too long", dto.SearchFilters{MaxPrice: "$$$$$"}},
		{"unknown status", dto.SearchFilters{OpenStatuses: []string{"Maybe"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseFilters(&tc.filters); err == nil {
				t.Errorf("parseFilters(%+v) accepted invalid input", tc.filters)
			}
		})
	}
}

func TestParseFiltersEmptyStatusListMatchesNone(t *testing.T) {
	opts, err := parseFilters(&dto.SearchFilters{OpenStatuses: []string{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts.OpenStatuses) != 0 {
		t.Errorf("expected empty status set, got %v", opts.OpenStatuses)
	}
}

func TestParseFiltersKeepsValidStatuses(t *testing.T) {
	opts, err := parseFilters(&dto.SearchFilters{OpenStatuses: []string{"Open", "Unknown"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.OpenStatus{domain.StatusOpen, domain.StatusUnknown}
	if len(opts.OpenStatuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", opts.OpenStatuses, want)
	}
	for i, s := range want {
		if opts.OpenStatuses[i] != s {
			t.Errorf("statuses[%d] = %q, want %q", i, opts.OpenStatuses[i], s)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	key, err := parseSortKey("")
	if err != nil || key != services.SortByDistance {
		t.Errorf("parseSortKey(\"\") = (%q, %v), want distance default", key, err)
	}

	for _, valid := range []string{"distance", "price", "rating", "reviews"} {
		if _, err := parseSortKey(valid); err != nil {
			t.Errorf("parseSortKey(%q) rejected a valid key: %v", valid, err)
		}
	}

	if _, err := parseSortKey("popularity"); err == nil {
		t.Error("parseSortKey accepted an unknown key")
	}
}
