// internal/highscore/memory.go
//
// In-memory implementation of the Store interface.
// Used by tests and when no highscore file is configured; state is lost when
// the process exits.

package highscore

import (
	"context"
	"slices"
	"sync"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu   sync.RWMutex // guards list
	list []Entry
}

// NewMemoryStore constructs an in-memory Store seeded with list.
func NewMemoryStore(list ...Entry) Store {
	return &memory{list: slices.Clone(list)}
}

// Load returns a copy of the stored list.
func (m *memory) Load(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.list), nil
}

// Save replaces the stored list with a copy of list.
func (m *memory) Save(ctx context.Context, list []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = slices.Clone(list)
	return nil
}
