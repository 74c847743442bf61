package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/vocab"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	require.Equal(t, 1, one)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := testDB(t)
	repo := repository.NewWordRepo(db)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, SeedDefaults(ctx, db, now))
	require.NoError(t, SeedDefaults(ctx, db, now))

	words, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, words, len(vocab.BuiltinWords()))
	for i, w := range vocab.BuiltinWords() {
		require.Equal(t, w.Word, words[i].Word)
		require.Equal(t, string(w.Difficulty), words[i].Difficulty)
	}
}

func TestSeedDefaultsEnrichesDefaultWord(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := repository.NewWordRepo(db)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, SeedDefaults(ctx, db, now))

	w, err := repo.Get(ctx, "serendipity")
	require.NoError(t, err)
	require.Equal(t, "Интуиция", w.Translation)
	require.Equal(t, 8, w.CorrectAnswers)
	require.Equal(t, 10, w.TotalAttempts)
	require.Len(t, w.Examples, 3)
	require.True(t, w.LastReviewedAt.Valid)
	require.True(t, w.LastReviewedAt.Time.Equal(now.AddDate(0, 0, -2)))

	other, err := repo.Get(ctx, "Ephemeral")
	require.NoError(t, err)
	require.Empty(t, other.Examples)
	require.False(t, other.LastReviewedAt.Valid)
}

func TestSeedDefaultsRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := repository.NewWordRepo(db)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := db.Exec(`CREATE TRIGGER reject_serendipity BEFORE INSERT ON words
		WHEN NEW.word = 'Serendipity'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	require.Error(t, SeedDefaults(ctx, db, now))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = db.Exec(`DROP TRIGGER reject_serendipity`)
	require.NoError(t, err)
	require.NoError(t, SeedDefaults(ctx, db, now))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(vocab.BuiltinWords()), n)
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := repository.NewWordRepo(db)

	err := WithTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := repository.NewWordRepo(tx).Upsert(ctx, repository.Word{Word: "Lucid", Translation: "Ясный"}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, WithTx(ctx, db, func(tx *sqlx.Tx) error {
		return repository.NewWordRepo(tx).Upsert(ctx, repository.Word{Word: "Lucid", Translation: "Ясный"})
	}))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
