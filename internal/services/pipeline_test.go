package services

import (
	"testing"

	"food-finder-service/internal/domain"
)

func allStatuses() []domain.OpenStatus {
	return []domain.OpenStatus{domain.StatusOpen, domain.StatusClosed, domain.StatusUnknown}
}

func TestFilterRowsMinRating(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "A", Rating: "4.5", OpenStatus: domain.StatusOpen},
		{Name: "B", Rating: "N/A", OpenStatus: domain.StatusOpen},
		{Name: "C", Rating: "3.0", OpenStatus: domain.StatusOpen},
	}

	got := FilterRows(rows, FilterOptions{MinRating: 4.0, OpenStatuses: allStatuses()})
	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("got %+v, want only A", got)
	}
}

func TestFilterRowsUnratedExcludedEvenAtZeroMinimum(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "A", Rating: "N/A", OpenStatus: domain.StatusOpen},
	}

	got := FilterRows(rows, FilterOptions{MinRating: 0, OpenStatuses: allStatuses()})
	if len(got) != 0 {
		t.Fatalf("unrated row must not pass the rating filter, got %+v", got)
	}
}

func TestFilterRowsPriceCeiling(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "cheap", Rating: "4.0", PriceLevel: "$", OpenStatus: domain.StatusOpen},
		{Name: "mid", Rating: "4.0", PriceLevel: "$$$", OpenStatus: domain.StatusOpen},
		{Name: "lux", Rating: "4.0", PriceLevel: "$$$$", OpenStatus: domain.StatusOpen},
	}

	got := FilterRows(rows, FilterOptions{MaxPrice: "$$$", OpenStatuses: allStatuses()})
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	// No ceiling: everything passes.
	got = FilterRows(rows, FilterOptions{OpenStatuses: allStatuses()})
	if len(got) != 3 {
		t.Fatalf("with Any ceiling got %d rows, want 3", len(got))
	}
}

func TestFilterRowsOpenStatus(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "open", Rating: "4.0", OpenStatus: domain.StatusOpen},
		{Name: "closed", Rating: "4.0", OpenStatus: domain.StatusClosed},
		{Name: "unknown", Rating: "4.0", OpenStatus: domain.StatusUnknown},
	}

	got := FilterRows(rows, FilterOptions{
		OpenStatuses: []domain.OpenStatus{domain.StatusOpen, domain.StatusUnknown},
	})
	if len(got) != 2 || got[0].Name != "open" || got[1].Name != "unknown" {
		t.Fatalf("got %+v", got)
	}
}

func TestFilterRowsCuisineSubstring(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "A", Rating: "4.0", Types: "cafe, bakery, food", OpenStatus: domain.StatusOpen},
		{Name: "B", Rating: "4.0", Types: "bar, night_club", OpenStatus: domain.StatusOpen},
	}

	got := FilterRows(rows, FilterOptions{Cuisines: []string{"bakery"}, OpenStatuses: allStatuses()})
	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("got %+v, want only A", got)
	}

	// Empty cuisine set disables the filter.
	got = FilterRows(rows, FilterOptions{OpenStatuses: allStatuses()})
	if len(got) != 2 {
		t.Fatalf("empty cuisine set must pass all rows, got %d", len(got))
	}
}

func TestSortRowsDistance(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "far", DistanceText: "1.2 km"},
		{Name: "unknown", DistanceText: "N/A"},
		{Name: "near", DistanceText: "650 m"},
	}

	SortRows(rows, SortByDistance)

	want := []string{"near", "far", "unknown"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("rows[%d] = %q, want %q", i, rows[i].Name, name)
		}
	}
}

func TestSortRowsRatingDescendingStableTies(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "A", Rating: "4.0"},
		{Name: "B", Rating: "4.0"},
		{Name: "C", Rating: "3.0"},
	}

	SortRows(rows, SortByRating)

	want := []string{"A", "B", "C"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("rows[%d] = %q, want %q (stable tie order)", i, rows[i].Name, name)
		}
	}
}

func TestSortRowsPriceAscending(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "lux", PriceLevel: "$$$$"},
		{Name: "cheap", PriceLevel: "$"},
		{Name: "mid", PriceLevel: "$$"},
	}

	SortRows(rows, SortByPrice)

	want := []string{"cheap", "mid", "lux"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("rows[%d] = %q, want %q", i, rows[i].Name, name)
		}
	}
}

func TestSortRowsReviewsDescending(t *testing.T) {
	rows := []domain.DisplayRow{
		{Name: "quiet", ReviewCount: 12},
		{Name: "busy", ReviewCount: 900},
		{Name: "mid", ReviewCount: 300},
	}

	SortRows(rows, SortByReviews)

	want := []string{"busy", "mid", "quiet"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("rows[%d] = %q, want %q", i, rows[i].Name, name)
		}
	}
}

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"650 m", 650},
		{"1.2 km", 1200},
		{"1,050 m", 1050},
	}
	for _, tc := range tests {
		if got := distanceMeters(tc.text); got != tc.want {
			t.Errorf("distanceMeters(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
