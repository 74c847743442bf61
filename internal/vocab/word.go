package vocab

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty is the coarse tag shown next to a word. Values outside the three
// known levels are kept verbatim so they can still be displayed.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Word is a single flashcard entry.
type Word struct {
	Word        string
	Translation string
	Definition  string
	Difficulty  Difficulty
}

// Stats are the aggregate learning numbers shown on the dashboard. They are
// supplied, never derived from the deck.
type Stats struct {
	WordsKnown int
	DueToday   int
	Streak     int
	TotalWords int
}

// ProgressPercent is WordsKnown as a rounded share of TotalWords.
func (s Stats) ProgressPercent() int {
	if s.TotalWords <= 0 {
		return 0
	}
	return int(math.Round(float64(s.WordsKnown) / float64(s.TotalWords) * 100))
}
