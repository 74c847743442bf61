package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/lexicon/internal/database"
	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/logging"
	"github.com/jask/lexicon/internal/vocab"
)

func seededDeck(t *testing.T, now time.Time) (*DeckService, *repository.WordRepo) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := database.Open(filepath.Join(t.TempDir(), "deck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repo := repository.NewWordRepo(db)
	require.NoError(t, database.SeedDefaults(ctx, db, now))
	return &DeckService{Repo: repo, Log: logging.Discard(), Now: func() time.Time { return now }}, repo
}

func TestDeckWordsMatchesBuiltinOrder(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc, _ := seededDeck(t, now)

	words, err := svc.Words(context.Background())
	require.NoError(t, err)
	require.Equal(t, vocab.BuiltinWords(), words)
}

func TestDeckDetailHumanisesReviewTimes(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc, _ := seededDeck(t, now)

	in, err := svc.Detail(context.Background(), "Serendipity")
	require.NoError(t, err)
	require.Equal(t, "2 days ago", in.LastReviewed)
	require.Equal(t, "Tomorrow", in.NextReview)

	d := vocab.Normalize(in)
	require.Equal(t, 80, d.Accuracy())
	require.Equal(t, "Интуиция", d.Translation)
}

func TestDeckDetailForBareWordUsesDefaults(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc, _ := seededDeck(t, now)

	in, err := svc.Detail(context.Background(), "ephemeral")
	require.NoError(t, err)
	d := vocab.Normalize(in)
	require.Equal(t, vocab.DefaultLastReviewed, d.LastReviewed)
	require.Equal(t, vocab.DefaultNextReview, d.NextReview)
	require.Equal(t, 1, d.TotalAttempts)
	require.Equal(t, 0, d.Accuracy())
}

func TestDeckReviewUpdatesAccuracy(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc, _ := seededDeck(t, now)
	ctx := context.Background()

	require.NoError(t, svc.Review(ctx, "Serendipity", true))
	require.NoError(t, svc.Review(ctx, "Serendipity", true))

	in, err := svc.Detail(ctx, "Serendipity")
	require.NoError(t, err)
	require.Equal(t, 10, in.CorrectAnswers)
	require.Equal(t, 12, in.TotalAttempts)
	require.Equal(t, "Today", in.LastReviewed)
	require.Equal(t, 83, vocab.Normalize(in).Accuracy())

	require.ErrorIs(t, svc.Review(ctx, "nope", false), vocab.ErrWordNotFound)
}

func TestReviewLabel(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)
	at := func(days int) sql.NullTime {
		return sql.NullTime{Time: now.AddDate(0, 0, days).Add(-20 * time.Hour), Valid: true}
	}
	tests := []struct {
		name string
		in   sql.NullTime
		want string
	}{
		{"unset", sql.NullTime{}, ""},
		{"today", at(0), "Today"},
		{"yesterday", at(-1), "Yesterday"},
		{"days ago", at(-5), "5 days ago"},
		{"tomorrow", at(1), "Tomorrow"},
		{"in days", at(3), "In 3 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ReviewLabel(tt.in, now))
		})
	}
}

func TestMaintenanceResetProgress(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	_, repo := seededDeck(t, now)
	m := &MaintenanceService{Repo: repo, Log: logging.Discard()}

	n, err := m.ResetProgress(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, len(vocab.BuiltinWords()), n)

	w, err := repo.Get(context.Background(), "Serendipity")
	require.NoError(t, err)
	require.Zero(t, w.CorrectAnswers)

	_, err = (&MaintenanceService{}).ResetProgress(context.Background())
	require.Error(t, err)
}

func TestDeckReviewNonASCIIWordIgnoresCase(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc, repo := seededDeck(t, now)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, repository.Word{Word: "Ёлка", Translation: "Fir tree"}))

	require.NoError(t, svc.Review(ctx, "ЁЛКА", true))
	in, err := svc.Detail(ctx, "ёлка")
	require.NoError(t, err)
	require.Equal(t, "Ёлка", in.Word)
	require.Equal(t, 1, in.CorrectAnswers)
}
