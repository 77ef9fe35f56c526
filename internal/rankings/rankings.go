// Package rankings keeps the leaderboard of finished games.
package rankings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/plus3/tetris/tetris"
)

// Limit is how many entries a leaderboard keeps.
const Limit = 10

// MaxNameLength bounds player names, in runes.
const MaxNameLength = 16

var ErrInvalidName = errors.New("invalid player name")

type Entry struct {
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Lines    int       `json:"lines"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

// Store persists entries and returns the best ones, highest score first.
// Entries that fall out of the top Limit may be discarded.
type Store interface {
	Add(ctx context.Context, e Entry) error
	Top(ctx context.Context) ([]Entry, error)
	Close() error
}

// NewEntry validates the player name and records a game result.
func NewEntry(name string, result tetris.MatchResult, at time.Time) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return Entry{
		Name:     name,
		Level:    result.Level,
		Lines:    result.Lines,
		Score:    result.Score,
		PlayedAt: at,
	}, nil
}

// Qualifies reports whether score would enter a leaderboard holding top.
func Qualifies(top []Entry, score int) bool {
	if len(top) < Limit {
		return true
	}
	return score > top[len(top)-1].Score
}

// ranked orders entries by score, then by who got there first.
func ranked(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayedAt.Before(entries[j].PlayedAt)
	})
}
