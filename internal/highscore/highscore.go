// internal/highscore/highscore.go
//
// Ranked, size-capped highscore list.
//
// Rules:
//   - At most Capacity entries, sorted descending by score.
//   - A score qualifies if the list has room, or if it is at least as high as
//     the lowest (last) entry. A score of 0 never qualifies.
//   - Inserting into a full list drops the worst entries first.
//
// Persistence is behind the Store interface (file, SQLite, memory).

package highscore

import (
	"context"
	"errors"
	"slices"
	"strings"
)

// Capacity is the maximum number of entries kept.
const Capacity = 10

// ErrEmptyName is returned when an entry has a blank player name.
var ErrEmptyName = errors.New("player name must not be empty")

// Entry is one highscore: a score and the player who made it.
type Entry struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// Store defines the persistence interface for highscore lists.
type Store interface {
	// Load returns the stored list. A store that does not exist yet
	// yields an empty list and no error.
	Load(ctx context.Context) ([]Entry, error)

	// Save replaces the stored list.
	Save(ctx context.Context, list []Entry) error
}

// Qualifies reports whether score earns a place in list.
func Qualifies(score int, list []Entry) bool {
	if score <= 0 {
		return false
	}
	if len(list) < Capacity {
		return true
	}
	return score >= list[len(list)-1].Score
}

// Insert returns a new list with e added. Worst entries are dropped until
// there is room, then the list is re-sorted.
func Insert(list []Entry, e Entry) []Entry {
	out := slices.Clone(Normalize(list))
	for len(out) >= Capacity {
		out = out[:len(out)-1]
	}
	out = append(out, e)
	sortDesc(out)
	return out
}

// Normalize sorts list descending by score and trims it to Capacity.
func Normalize(list []Entry) []Entry {
	out := slices.Clone(list)
	sortDesc(out)
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// ValidName trims name and reports whether anything is left.
func ValidName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

func sortDesc(list []Entry) {
	slices.SortStableFunc(list, func(a, b Entry) int { return b.Score - a.Score })
}
