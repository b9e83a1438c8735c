package services

import (
	"testing"

	"food-finder-service/internal/domain"
)

func reviewRatings(reviews []domain.Review) []int {
	out := make([]int, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Rating)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelectReviews(t *testing.T) {
	tests := []struct {
		name         string
		ratings      []int
		wantPositive []int
		wantNegative []int
	}{
		{
			name:         "mixed bands",
			ratings:      []int{5, 4, 3, 1},
			wantPositive: []int{5, 4},
			wantNegative: []int{1},
		},
		{
			name:         "positive capped at three",
			ratings:      []int{5, 5, 4, 4, 4},
			wantPositive: []int{5, 5, 4},
			wantNegative: []int{},
		},
		{
			name: "negative takes the tail of the low band",
			// Descending low band is [2, 2, 1, 1]; the tail slice keeps
			// the three lowest-rated entries.
			ratings:      []int{5, 2, 2, 1, 1},
			wantPositive: []int{5},
			wantNegative: []int{2, 1, 1},
		},
		{
			name:         "rating three lands in neither band",
			ratings:      []int{3, 3, 3},
			wantPositive: []int{},
			wantNegative: []int{},
		},
		{
			name:         "empty input",
			ratings:      []int{},
			wantPositive: []int{},
			wantNegative: []int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := make([]domain.Review, 0, len(tc.ratings))
			for _, r := range tc.ratings {
				reviews = append(reviews, domain.Review{Rating: r})
			}

			positive, negative := SelectReviews(reviews)

			if !equalInts(reviewRatings(positive), tc.wantPositive) {
				t.Errorf("positive = %v, want %v", reviewRatings(positive), tc.wantPositive)
			}
			if !equalInts(reviewRatings(negative), tc.wantNegative) {
				t.Errorf("negative = %v, want %v", reviewRatings(negative), tc.wantNegative)
			}
		})
	}
}

func TestSelectReviewsDoesNotMutateInput(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 1, Text: "cold food"},
		{Rating: 5, Text: "superb"},
	}

	SelectReviews(reviews)

	if reviews[0].Rating != 1 || reviews[1].Rating != 5 {
		t.Fatalf("input slice was reordered: %+v", reviews)
	}
}
