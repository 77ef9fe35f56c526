package rankings

import (
	"context"
	"sync"
)

// MemoryStore keeps the leaderboard in memory. State is lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Add(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, e)
	ranked(m.entries)
	if len(m.entries) > Limit {
		m.entries = m.entries[:Limit]
	}
	return nil
}

func (m *MemoryStore) Top(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *MemoryStore) Close() error { return nil }
