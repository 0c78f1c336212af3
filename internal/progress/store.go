package progress

import (
	"context"
	"fmt"
	"sync"
)

// Store persists the learner's Record under a fixed key.
type Store interface {
	// Load returns the stored record, or New() when none exists.
	Load(ctx context.Context) (Record, error)

	// Save replaces the stored record.
	Save(ctx context.Context, r Record) error
}

// PersistenceError reports a failed progress read or write.
type PersistenceError struct {
	Op  string // "load", "save" or "delete"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("progress %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MemoryStore keeps the record in memory. It is used by tests and as the
// fallback when no durable backend could be opened.
type MemoryStore struct {
	mu    sync.Mutex
	rec   *Record
	saves int
}

// NewMemoryStore returns a store, optionally pre-populated with rec.
func NewMemoryStore(rec *Record) *MemoryStore {
	m := &MemoryStore{}
	if rec != nil {
		r := rec.Clone()
		m.rec = &r
	}
	return m
}

func (m *MemoryStore) Load(_ context.Context) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return New(), nil
	}
	return m.rec.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := r.Clone()
	m.rec = &c
	m.saves++
	return nil
}

// SaveCount returns how many times Save was called.
func (m *MemoryStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
