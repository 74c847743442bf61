package tui

import (
	"github.com/jask/lexicon/internal/pronounce"
	"github.com/jask/lexicon/internal/vocab"
)

type statusMsg string

type errMsg struct{ error }

// pronouncedMsg reports the end of playback run number seq.
type pronouncedMsg struct {
	seq     int
	outcome pronounce.Outcome
	err     error
}

type reviewedMsg struct {
	correct bool
	input   *vocab.DetailInput
}
