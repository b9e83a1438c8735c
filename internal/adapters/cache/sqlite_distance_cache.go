package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache for formatted walking distances between two
// points. Keys are expected to be consistent (e.g., already normalized)
// by the caller.
type SqliteDistanceCache struct {
	DB *sql.DB
}

func NewSqliteDistanceCache(db *sql.DB) *SqliteDistanceCache {
	return &SqliteDistanceCache{DB: db}
}

// Fetch the cached distance text for one origin/destination pair.
func (s *SqliteDistanceCache) Get(ctx context.Context, origin, destination string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("distance cache: db is nil")
	}

	if origin == "" || destination == "" {
		return "", false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q := `
	SELECT
        distance_text
    FROM distance_cache
    WHERE origin = ?
        AND destination = ?;
	`

	var text string
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return text, true, nil
}

// Store the distance text for one origin/destination pair.
func (s *SqliteDistanceCache) Put(ctx context.Context, origin, destination, distanceText string) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	if strings.TrimSpace(distanceText) == "" {
		return errors.New("insert distance cache: empty distance text")
	}

	q := `
	INSERT OR REPLACE INTO distance_cache (
        origin,
        destination,
        distance_text
    )
    VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, distanceText); err != nil {
		return fmt.Errorf("insert distance cache dest=%q: %w", destination, err)
	}

	return nil
}
