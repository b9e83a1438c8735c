// Package cache provides the response caches consulted by the external
// API client: a generic in-memory TTL cache plus persistent SQL-backed
// variants for geocoding and distance lookups.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Memory is a generic thread-safe cache with TTL expiration.
type Memory[T any] struct {
	items map[string]entry[T]
	mu    sync.RWMutex
	ttl   time.Duration
	stop  chan struct{}
}

// NewMemory creates a cache whose entries expire after ttl.
func NewMemory[T any](ttl time.Duration) *Memory[T] {
	m := &Memory[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// Get retrieves a value, returning (value, true) if present and fresh.
func (m *Memory[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Put stores a value with the cache's TTL.
func (m *Memory[T]) Put(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(m.ttl),
	}
}

// Len returns the number of stored items, expired ones included.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close stops the background cleanup goroutine.
func (m *Memory[T]) Close() {
	close(m.stop)
}

// cleanup runs periodically to remove expired items.
func (m *Memory[T]) cleanup() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory[T]) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.items {
		if now.After(e.expiresAt) {
			delete(m.items, key)
		}
	}
}
