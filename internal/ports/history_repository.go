package ports

import (
	"context"
	"time"
)

// One completed search run, recorded for the history view.
type SearchRecord struct {
	ID           int
	Address      string
	RadiusMeters int
	RowCount     int
	SearchedAt   time.Time
}

// Port: a boundary for persisting and listing past search runs.
type SearchHistoryRepository interface {
	// Record a completed search run.
	RecordSearch(ctx context.Context, rec SearchRecord) error
	// Return the most recent search runs, newest first.
	RecentSearches(ctx context.Context, limit int) ([]SearchRecord, error)
}
