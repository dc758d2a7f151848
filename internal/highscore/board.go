// internal/highscore/board.go
//
// Board serialises highscore read-modify-write cycles against a Store so
// concurrent submitters cannot lose each other's updates.

package highscore

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Board guards a Store with a mutex.
type Board struct {
	mu    sync.Mutex
	store Store
}

// NewBoard returns a Board over store.
func NewBoard(store Store) *Board {
	return &Board{store: store}
}

// List returns the current ranked list.
func (b *Board) List(ctx context.Context) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load highscores: %w", err)
	}
	return Normalize(list), nil
}

// Qualifies loads the list and reports whether score would enter it.
func (b *Board) Qualifies(ctx context.Context, score int) (bool, error) {
	list, err := b.List(ctx)
	if err != nil {
		return false, err
	}
	return Qualifies(score, list), nil
}

// Submit adds (score, name) if the score qualifies against the stored list,
// and returns whether it was added along with the resulting list.
func (b *Board) Submit(ctx context.Context, score int, name string) (bool, []Entry, error) {
	name, err := ValidName(name)
	if err != nil {
		return false, nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list, err := b.store.Load(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("load highscores: %w", err)
	}
	list = Normalize(list)
	if !Qualifies(score, list) {
		return false, list, nil
	}

	list = Insert(list, Entry{Score: score, Name: name})
	if err := b.store.Save(ctx, list); err != nil {
		return false, nil, fmt.Errorf("save highscores: %w", err)
	}
	log.Info().Int("score", score).Str("player", name).Int("entries", len(list)).Msg("new highscore")
	return true, list, nil
}
