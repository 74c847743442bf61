// Package pronounce plays a word aloud. The only implementation today is a
// timed stand-in; a real audio backend plugs in behind Pronouncer.
package pronounce

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DefaultDelay is how long a simulated playback lasts.
const DefaultDelay = time.Second

// ErrNothingToPlay is returned for an empty word.
var ErrNothingToPlay = errors.New("pronounce: nothing to play")

// Pronouncer plays a word and returns when playback has finished, failed or
// ctx was cancelled.
type Pronouncer interface {
	Pronounce(ctx context.Context, word string) error
}

// Simulated pretends to play audio by waiting for Delay.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns a Simulated pronouncer; a non-positive delay uses
// DefaultDelay.
func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Simulated{Delay: delay}
}

func (s *Simulated) Pronounce(ctx context.Context, word string) error {
	if strings.TrimSpace(word) == "" {
		return ErrNothingToPlay
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Outcome classifies the error returned by a Pronouncer.
type Outcome int

const (
	Played Outcome = iota
	Cancelled
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Played:
		return "played"
	case Cancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// OutcomeOf maps a Pronounce result to an Outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Played
	case errors.Is(err, context.Canceled):
		return Cancelled
	default:
		return Failed
	}
}
