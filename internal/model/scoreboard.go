package model

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// ScoreBoardCapacity is the number of entries kept on the board
	ScoreBoardCapacity = 10
	// IdentifierLength is the exact length of a player identifier (initials)
	IdentifierLength = 3
)

// ScoreEntry is one line of the high score board. Lower scores are better.
type ScoreEntry struct {
	Identifier string
	Score      int // Elapsed whole seconds
}

// ScoreBoard is the ordered top-N list of best scores.
// Entries are always sorted ascending by score.
type ScoreBoard struct {
	Entries []ScoreEntry
}

// NewScoreBoard creates an empty board
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{Entries: []ScoreEntry{}}
}

// Qualifies returns true if score would be admitted to the board
func (b *ScoreBoard) Qualifies(score int) bool {
	if len(b.Entries) < ScoreBoardCapacity {
		return true
	}
	return score < b.Entries[len(b.Entries)-1].Score
}

// Record adds a score if it qualifies, dropping the current worst entry
// when the board is full. Returns false without touching the board if
// the score does not qualify.
func (b *ScoreBoard) Record(identifier string, score int) (bool, error) {
	if !b.Qualifies(score) {
		return false, nil
	}
	id, err := NormalizeIdentifier(identifier)
	if err != nil {
		return false, err
	}

	if len(b.Entries) >= ScoreBoardCapacity {
		b.Entries = b.Entries[:ScoreBoardCapacity-1]
	}
	b.Entries = append(b.Entries, ScoreEntry{Identifier: id, Score: score})
	b.Sort()
	return true, nil
}

// Sort orders entries ascending by score, keeping earlier entries first on ties
func (b *ScoreBoard) Sort() {
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[i].Score < b.Entries[j].Score
	})
}

// Lines renders each entry as "identifier : score", best first
func (b *ScoreBoard) Lines() []string {
	lines := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		lines = append(lines, fmt.Sprintf("%s : %d", e.Identifier, e.Score))
	}
	return lines
}

// NormalizeIdentifier upper-cases and validates player initials
func NormalizeIdentifier(identifier string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(identifier))
	if utf8.RuneCountInString(id) != IdentifierLength {
		return "", fmt.Errorf("%w: got %q", ErrInvalidIdentifier, identifier)
	}
	return id, nil
}
