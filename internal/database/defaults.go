package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/vocab"
)

// SeedDefaults loads the starter deck into an empty database. It is
// idempotent and safe to run on every startup. The deck is written in one
// transaction so a failed seed leaves the table empty for the next attempt.
func SeedDefaults(ctx context.Context, db *sqlx.DB, now time.Time) error {
	n, err := repository.NewWordRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sqlx.Tx) error {
		return seedWords(ctx, repository.NewWordRepo(tx), now)
	})
}

func seedWords(ctx context.Context, repo *repository.WordRepo, now time.Time) error {
	extra := vocab.DefaultDetail()
	for idx, w := range vocab.BuiltinWords() {
		row := repository.Word{
			Word:        w.Word,
			Translation: w.Translation,
			Definition:  w.Definition,
			Difficulty:  string(w.Difficulty),
			SortOrder:   idx,
		}
		// The default detail record describes the same word as one of the
		// starter cards; it contributes the fields the card lacks.
		if strings.EqualFold(w.Word, extra.Word) {
			row.Phonetic = extra.Phonetic
			row.PartOfSpeech = extra.PartOfSpeech
			row.Examples = extra.Examples
			row.Synonyms = extra.Synonyms
			row.Antonyms = extra.Antonyms
			row.Etymology = extra.Etymology
			row.Frequency = extra.Frequency
			row.CorrectAnswers = extra.CorrectAnswers
			row.TotalAttempts = extra.TotalAttempts
			row.LastReviewedAt = sql.NullTime{Time: now.AddDate(0, 0, -2), Valid: true}
			row.NextReviewAt = sql.NullTime{Time: now.AddDate(0, 0, 1), Valid: true}
		}
		if err := repo.Upsert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
