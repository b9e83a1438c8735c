package handlers

import (
	"log"
	"net/http"

	"food-finder-service/internal/api/dto"
	"food-finder-service/internal/domain"
	"food-finder-service/internal/ports"
	"food-finder-service/internal/services"
)

// PlaceHandler exposes the per-venue detail view: enriched metadata,
// the open/closed classification and the selected reviews.
type PlaceHandler struct {
	Details ports.DetailFetcher
	Clock   ports.Clock
}

func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		writeError(w, r, http.StatusBadRequest, "place id is required")
		return
	}

	detail, err := h.Details.FetchDetail(r.Context(), placeID)
	if err != nil {
		log.Printf("fetch place detail failed: id=%s err=%v", placeID, err)
		writeError(w, r, http.StatusBadGateway, "place details unavailable")
		return
	}

	status := domain.EvaluateOpenStatus(detail.Periods, h.Clock.Now())
	positive, negative := services.SelectReviews(detail.Reviews)

	res := dto.PlaceDetailResponse{
		PlaceID:         placeID,
		Name:            detail.Name,
		Address:         detail.FormattedAddress,
		Phone:           detail.Phone,
		Website:         detail.Website,
		Types:           domain.JoinTypes(detail.Types),
		Rating:          domain.FormatRating(detail.Rating),
		PriceLevel:      domain.PriceGlyphs(detail.PriceLevel),
		TotalReviews:    detail.TotalReviews,
		OpenStatus:      string(status),
		WeekdayText:     detail.WeekdayText,
		PositiveReviews: toReviewResponses(positive),
		NegativeReviews: toReviewResponses(negative),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toReviewResponses(reviews []domain.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, dto.ReviewResponse{Rating: review.Rating, Text: review.Text})
	}
	return out
}
