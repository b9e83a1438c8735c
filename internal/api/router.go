package api

import (
	"net/http"

	"food-finder-service/internal/api/handlers"
	"food-finder-service/internal/ports"
	"food-finder-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	finder *services.Finder,
	details ports.DetailFetcher,
	clk ports.Clock,
	history ports.SearchHistoryRepository,
) http.Handler {
	mux := http.NewServeMux()

	searchHandler := &handlers.SearchHandler{Finder: finder, History: history}
	placeHandler := &handlers.PlaceHandler{Details: details, Clock: clk}
	historyHandler := &handlers.HistoryHandler{Repo: history}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/search", searchHandler.Search)
	mux.HandleFunc("GET /places/{id}", placeHandler.Get)
	mux.HandleFunc("/history", historyHandler.List)

	return requestIDMiddleware(loggingMiddleware(mux))
}
