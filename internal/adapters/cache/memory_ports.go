package cache

import (
	"context"

	"food-finder-service/internal/domain"
)

// Typed wrappers exposing Memory behind the cache ports. Reads and
// writes never fail; the context is accepted for interface symmetry
// with the SQL-backed caches.

type MemoryGeocodeCache struct {
	inner *Memory[domain.Coordinate]
}

func NewMemoryGeocodeCache(inner *Memory[domain.Coordinate]) *MemoryGeocodeCache {
	return &MemoryGeocodeCache{inner: inner}
}

func (m *MemoryGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	coord, ok := m.inner.Get(address)
	return coord, ok, nil
}

func (m *MemoryGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	m.inner.Put(address, coord)
	return nil
}

type MemorySearchCache struct {
	inner *Memory[[]domain.PlaceCandidate]
}

func NewMemorySearchCache(inner *Memory[[]domain.PlaceCandidate]) *MemorySearchCache {
	return &MemorySearchCache{inner: inner}
}

func (m *MemorySearchCache) Get(ctx context.Context, key string) ([]domain.PlaceCandidate, bool, error) {
	candidates, ok := m.inner.Get(key)
	return candidates, ok, nil
}

func (m *MemorySearchCache) Put(ctx context.Context, key string, candidates []domain.PlaceCandidate) error {
	m.inner.Put(key, candidates)
	return nil
}

type MemoryDetailCache struct {
	inner *Memory[domain.PlaceDetail]
}

func NewMemoryDetailCache(inner *Memory[domain.PlaceDetail]) *MemoryDetailCache {
	return &MemoryDetailCache{inner: inner}
}

func (m *MemoryDetailCache) Get(ctx context.Context, placeID string) (domain.PlaceDetail, bool, error) {
	detail, ok := m.inner.Get(placeID)
	return detail, ok, nil
}

func (m *MemoryDetailCache) Put(ctx context.Context, placeID string, detail domain.PlaceDetail) error {
	m.inner.Put(placeID, detail)
	return nil
}

type MemoryDistanceCache struct {
	inner *Memory[string]
}

func NewMemoryDistanceCache(inner *Memory[string]) *MemoryDistanceCache {
	return &MemoryDistanceCache{inner: inner}
}

func (m *MemoryDistanceCache) Get(ctx context.Context, origin, destination string) (string, bool, error) {
	text, ok := m.inner.Get(origin + "|" + destination)
	return text, ok, nil
}

func (m *MemoryDistanceCache) Put(ctx context.Context, origin, destination, distanceText string) error {
	m.inner.Put(origin+"|"+destination, distanceText)
	return nil
}
