package services

import (
	"sort"

	"food-finder-service/internal/domain"
)

// SelectReviews splits a venue's reviews into the top positive and
// bottom negative picks.
//
// Reviews are stably sorted by rating, highest first. Positive is the
// first three with rating >= 4. Negative is the last three of the
// rating <= 2 band taken from the same descending order, which selects
// the lowest-rated entries of that band. Empty bands yield empty slices.
func SelectReviews(reviews []domain.Review) (positive, negative []domain.Review) {
	ordered := make([]domain.Review, len(reviews))
	copy(ordered, reviews)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rating > ordered[j].Rating
	})

	positive = []domain.Review{}
	for _, r := range ordered {
		if r.Rating < 4 {
			break
		}
		positive = append(positive, r)
		if len(positive) == 3 {
			break
		}
	}

	low := []domain.Review{}
	for _, r := range ordered {
		if r.Rating <= 2 {
			low = append(low, r)
		}
	}
	if len(low) > 3 {
		low = low[len(low)-3:]
	}
	negative = low

	return positive, negative
}
