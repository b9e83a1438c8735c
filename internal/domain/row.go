package domain

import (
	"fmt"
	"strings"
)

// NotAvailable is the placeholder rendered for any field the detail
// record does not carry.
const NotAvailable = "N/A"

// DisplayRow is the flattened, formatted representation of one venue.
// Rows are rebuilt on every filter/sort pass and never persisted.
type DisplayRow struct {
	Name         string
	Rating       string
	PriceLevel   string
	Types        string
	DistanceText string
	OpenStatus   OpenStatus
	PlaceID      string
	ReviewCount  int
}

// FormatRating renders a rating with one decimal, or "N/A" when absent.
func FormatRating(rating *float64) string {
	if rating == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *rating)
}

// PriceGlyphs renders a price level as repeated "$" characters.
// Level zero and "not reported" both render "N/A"; the upstream API does
// not distinguish them.
func PriceGlyphs(level int) string {
	if level <= 0 {
		return NotAvailable
	}
	return strings.Repeat("$", level)
}

// JoinTypes renders a venue's type tags as a comma-separated string,
// or "N/A" for an empty set.
func JoinTypes(types []string) string {
	if len(types) == 0 {
		return NotAvailable
	}
	return strings.Join(types, ", ")
}
