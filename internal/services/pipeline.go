package services

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"food-finder-service/internal/domain"
)

// SortKey selects the single active ordering of the row set.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
	SortByRating   SortKey = "rating"
	SortByReviews  SortKey = "reviews"
)

// FilterOptions is the compound predicate applied to display rows.
// All filters are conjunctive.
//
// MaxPrice is a glyph string ("$".."$$$$"); empty means no price
// ceiling. An empty Cuisines set disables the cuisine filter, while an
// empty OpenStatuses set matches nothing (set membership is literal).
type FilterOptions struct {
	MinRating    float64
	MaxPrice     string
	OpenStatuses []domain.OpenStatus
	Cuisines     []string
}

// FilterRows returns the rows passing every active filter, preserving
// input order.
//
// Rows whose rating is not numeric ("N/A") never pass the rating filter,
// including at MinRating zero: the comparison against an absent value is
// always false. The price filter compares glyph-string lengths, so an
// "N/A" price behaves as length 3.
func FilterRows(rows []domain.DisplayRow, opts FilterOptions) []domain.DisplayRow {
	out := make([]domain.DisplayRow, 0, len(rows))

	for _, row := range rows {
		rating, err := strconv.ParseFloat(row.Rating, 64)
		if err != nil || rating < opts.MinRating {
			continue
		}

		if opts.MaxPrice != "" && len(row.PriceLevel) > len(opts.MaxPrice) {
			continue
		}

		if !slices.Contains(opts.OpenStatuses, row.OpenStatus) {
			continue
		}

		if len(opts.Cuisines) > 0 && !matchesAnyCuisine(row.Types, opts.Cuisines) {
			continue
		}

		out = append(out, row)
	}

	return out
}

func matchesAnyCuisine(joinedTypes string, cuisines []string) bool {
	for _, cuisine := range cuisines {
		if strings.Contains(joinedTypes, cuisine) {
			return true
		}
	}
	return false
}

// SortRows orders rows by the given key: distance and price ascending,
// rating and review count descending. Ties keep their prior relative
// order. An unrecognized key leaves the order untouched.
func SortRows(rows []domain.DisplayRow, key SortKey) {
	switch key {
	case SortByDistance:
		sort.SliceStable(rows, func(i, j int) bool {
			return distanceMeters(rows[i].DistanceText) < distanceMeters(rows[j].DistanceText)
		})
	case SortByPrice:
		sort.SliceStable(rows, func(i, j int) bool {
			return len(rows[i].PriceLevel) < len(rows[j].PriceLevel)
		})
	case SortByRating:
		sort.SliceStable(rows, func(i, j int) bool {
			return ratingValue(rows[i].Rating) > ratingValue(rows[j].Rating)
		})
	case SortByReviews:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ReviewCount > rows[j].ReviewCount
		})
	}
}

// distanceMeters extracts the numeric magnitude from a formatted
// distance string, normalizing kilometers to meters. Unparsable text
// ("N/A") sorts last.
func distanceMeters(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return math.MaxFloat64
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil {
		return math.MaxFloat64
	}

	if len(fields) > 1 && strings.EqualFold(fields[1], "km") {
		return value * 1000
	}
	return value
}

// ratingValue parses a formatted rating for sorting; "N/A" sorts last in
// a descending order.
func ratingValue(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}
