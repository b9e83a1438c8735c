package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"food-finder-service/internal/ports"
)

// SQLite-backed implementation of the SearchHistoryRepository port.
type SqliteHistoryRepository struct{ DB *sql.DB }

func NewSqliteHistoryRepository(db *sql.DB) *SqliteHistoryRepository {
	return &SqliteHistoryRepository{DB: db}
}

// Record a completed search run.
func (s *SqliteHistoryRepository) RecordSearch(ctx context.Context, rec ports.SearchRecord) error {
	if s.DB == nil {
		return errors.New("sqlite history repository: DB is nil")
	}

	query := `
	INSERT INTO search_history (
		address,
		radius_meters,
		row_count,
		searched_at
	)
	VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, query, rec.Address, rec.RadiusMeters, rec.RowCount, rec.SearchedAt); err != nil {
		return fmt.Errorf("record search: insert search_history: %w", err)
	}

	return nil
}

// Return the most recent search runs, newest first.
func (s *SqliteHistoryRepository) RecentSearches(ctx context.Context, limit int) ([]ports.SearchRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite history repository: DB is nil")
	}

	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT
		id,
		address,
		radius_meters,
		row_count,
		searched_at
	FROM search_history
	ORDER BY searched_at DESC, id DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: query search_history table: %w", err)
	}
	defer rows.Close()

	records := make([]ports.SearchRecord, 0, limit)
	for rows.Next() {
		var rec ports.SearchRecord
		if err := rows.Scan(&rec.ID, &rec.Address, &rec.RadiusMeters, &rec.RowCount, &rec.SearchedAt); err != nil {
			return nil, fmt.Errorf("recent searches: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent searches: row iteration: %w", err)
	}

	return records, nil
}
