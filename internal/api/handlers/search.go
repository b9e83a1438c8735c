package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"food-finder-service/internal/api/dto"
	"food-finder-service/internal/domain"
	"food-finder-service/internal/ports"
	"food-finder-service/internal/services"
)

const (
	defaultRadiusMeters = 1000
	minRadiusMeters     = 500
	maxRadiusMeters     = 5000
)

type SearchHandler struct {
	Finder  *services.Finder
	History ports.SearchHistoryRepository
}

// Search runs one dining search: geocode, multi-category nearby search,
// detail join, row building and the filter/sort pipeline. Recovered
// per-stage failures come back as warnings alongside the rows.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = defaultRadiusMeters
	}
	if radius < minRadiusMeters || radius > maxRadiusMeters {
		writeError(w, r, http.StatusBadRequest, "radius_meters must be between 500 and 5000")
		return
	}

	filters, err := parseFilters(req.Filters)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sortBy, err := parseSortKey(req.SortBy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.SearchRequest{
		Address:      address,
		RadiusMeters: radius,
		Filters:      filters,
		SortBy:       sortBy,
	}

	res, err := h.Finder.FindDining(r.Context(), svcReq)
	if err != nil {
		if errors.Is(err, services.ErrGeocode) {
			writeError(w, r, http.StatusUnprocessableEntity, "address could not be geocoded")
			return
		}
		log.Printf("find dining failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// History is best-effort; a write failure never fails the search.
	if h.History != nil {
		rec := ports.SearchRecord{
			Address:      address,
			RadiusMeters: radius,
			RowCount:     len(res.Rows),
			SearchedAt:   time.Now().UTC(),
		}
		if err := h.History.RecordSearch(r.Context(), rec); err != nil {
			log.Printf("record search history failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, toSearchResponse(res))
}

// parseFilters maps the request filters to the pipeline's options.
// An absent filter block (or absent open_statuses list) matches every
// open status; an explicitly empty list matches none.
func parseFilters(f *dto.SearchFilters) (services.FilterOptions, error) {
	allStatuses := []domain.OpenStatus{domain.StatusOpen, domain.StatusClosed, domain.StatusUnknown}

	if f == nil {
		return services.FilterOptions{OpenStatuses: allStatuses}, nil
	}

	if f.MinRating < 0 || f.MinRating > 5 {
		return services.FilterOptions{}, errors.New("min_rating must be between 0 and 5")
	}

	maxPrice := f.MaxPrice
	if strings.EqualFold(maxPrice, "Any") {
		maxPrice = ""
	}
	if maxPrice != strings.Repeat("$", len(maxPrice)) || len(maxPrice) > 4 {
		return services.FilterOptions{}, errors.New(`max_price must be "Any" or "$".."$$$$"`)
	}

	statuses := allStatuses
	if f.OpenStatuses != nil {
		statuses = make([]domain.OpenStatus, 0, len(f.OpenStatuses))
		for _, s := range f.OpenStatuses {
			switch domain.OpenStatus(s) {
			case domain.StatusOpen, domain.StatusClosed, domain.StatusUnknown:
				statuses = append(statuses, domain.OpenStatus(s))
			default:
				return services.FilterOptions{}, errors.New("open_statuses entries must be Open, Closed or Unknown")
			}
		}
	}

	return services.FilterOptions{
		MinRating:    f.MinRating,
		MaxPrice:     maxPrice,
		OpenStatuses: statuses,
		Cuisines:     f.Cuisines,
	}, nil
}

func parseSortKey(s string) (services.SortKey, error) {
	if s == "" {
		return services.SortByDistance, nil
	}

	key := services.SortKey(s)
	switch key {
	case services.SortByDistance, services.SortByPrice, services.SortByRating, services.SortByReviews:
		return key, nil
	}
	return "", errors.New("sort_by must be one of distance, price, rating, reviews")
}

func toSearchResponse(res *services.SearchResult) dto.SearchResponse {
	rows := make([]dto.RowResponse, 0, len(res.Rows))
	for _, row := range res.Rows {
		rows = append(rows, dto.RowResponse{
			Name:        row.Name,
			Rating:      row.Rating,
			PriceLevel:  row.PriceLevel,
			Types:       row.Types,
			Distance:    row.DistanceText,
			OpenStatus:  string(row.OpenStatus),
			PlaceID:     row.PlaceID,
			ReviewCount: row.ReviewCount,
		})
	}

	warnings := make([]dto.WarningResponse, 0, len(res.Warnings))
	for _, warning := range res.Warnings {
		warnings = append(warnings, dto.WarningResponse{
			Stage:   warning.Stage,
			Subject: warning.Subject,
			Message: warning.Message,
		})
	}

	return dto.SearchResponse{
		Center:    dto.CoordinateResponse{Lat: res.Center.Lat, Lng: res.Center.Lng},
		LocalTime: dto.LocalTimeResponse{Day: res.LocalTime.Day, Minute: res.LocalTime.Minute},
		Rows:      rows,
		Warnings:  warnings,
	}
}
