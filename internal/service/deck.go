package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/vocab"
)

// DeckService reads the stored deck and records reviews against it.
type DeckService struct {
	Repo *repository.WordRepo
	Log  logrus.FieldLogger
	Now  func() time.Time
}

func (s *DeckService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DeckService) log() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

// Words returns the deck as dashboard cards, in stored order.
func (s *DeckService) Words(ctx context.Context) ([]vocab.Word, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r repository.Word, _ int) vocab.Word {
		return vocab.Word{
			Word:        r.Word,
			Translation: r.Translation,
			Definition:  r.Definition,
			Difficulty:  vocab.Difficulty(r.Difficulty),
		}
	}), nil
}

// Detail returns the stored record for word with review times rendered for
// display. Fields the store left empty stay empty for vocab.Normalize.
func (s *DeckService) Detail(ctx context.Context, word string) (*vocab.DetailInput, error) {
	r, err := s.Repo.Get(ctx, word)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &vocab.DetailInput{
		Word:           r.Word,
		Translation:    r.Translation,
		Definition:     r.Definition,
		Difficulty:     vocab.Difficulty(r.Difficulty),
		Phonetic:       r.Phonetic,
		PartOfSpeech:   r.PartOfSpeech,
		Examples:       r.Examples,
		Synonyms:       r.Synonyms,
		Antonyms:       r.Antonyms,
		Etymology:      r.Etymology,
		Frequency:      r.Frequency,
		LastReviewed:   ReviewLabel(r.LastReviewedAt, now),
		NextReview:     ReviewLabel(r.NextReviewAt, now),
		CorrectAnswers: r.CorrectAnswers,
		TotalAttempts:  r.TotalAttempts,
	}, nil
}

// Review records one recall attempt for word.
func (s *DeckService) Review(ctx context.Context, word string, correct bool) error {
	if err := s.Repo.RecordAnswer(ctx, word, correct, s.now()); err != nil {
		return err
	}
	s.log().WithFields(logrus.Fields{"word": word, "correct": correct}).Info("review recorded")
	return nil
}

// ReviewLabel renders a review time relative to now in calendar days.
// An unset time renders as "".
func ReviewLabel(t sql.NullTime, now time.Time) string {
	if !t.Valid {
		return ""
	}
	loc := now.Location()
	day := func(x time.Time) time.Time {
		x = x.In(loc)
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, loc)
	}
	days := int(math.Round(day(t.Time).Sub(day(now)).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days == 1:
		return "Tomorrow"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("In %d days", days)
	}
}
