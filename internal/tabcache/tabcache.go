// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabcache stores fetched tab rows keyed by (document, tab) so
// repeated page builds within the freshness window skip the network.
//
// A Store only persists entries with their fetch time; deciding whether an
// entry is still fresh is the reader's job. That keeps the TTL rules
// (TTL <= 0 disables caching, expiry compared at read time) in one place,
// the sheets client. Stores never return errors to readers: a corrupt or
// unreadable entry is simply a miss, and a failed write is ignored — the
// spreadsheet remains the source of truth either way.
package tabcache

import (
	"context"
	"sync"
	"time"
)

// Entry is one cached tab: its rows and when they were fetched.
type Entry struct {
	FetchedAt time.Time  `json:"fetched_at"`
	Rows      [][]string `json:"rows"`
}

// Store is the pluggable cache backend.
type Store interface {
	// Get returns the entry for key, or ok=false on a miss. Corrupt
	// entries are misses.
	Get(ctx context.Context, key string) (Entry, bool)

	// Set stores rows under key with the current time. Write failures
	// are swallowed; the next Get is just a miss.
	Set(ctx context.Context, key string, rows [][]string)
}

// Memory is a process-local Store backed by a map. It is the default for
// tests and for single-shot CLI runs.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry

	// now is swappable so tests can cross TTL boundaries deterministically.
	now func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	return entry, ok
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = Entry{FetchedAt: m.now(), Rows: rows}
}
