package handlers

import (
	"log"
	"net/http"
	"strconv"

	"food-finder-service/internal/api/dto"
	"food-finder-service/internal/ports"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler exposes read-only access to past search runs.
type HistoryHandler struct {
	Repo ports.SearchHistoryRepository
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	records, err := h.Repo.RecentSearches(r.Context(), limit)
	if err != nil {
		log.Printf("list search history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{
		Searches: make([]dto.SearchRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Searches = append(res.Searches, dto.SearchRecordResponse{
			ID:           rec.ID,
			Address:      rec.Address,
			RadiusMeters: rec.RadiusMeters,
			RowCount:     rec.RowCount,
			SearchedAt:   rec.SearchedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
