package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jask/lexicon/internal/vocab"
)

// Word represents a words row.
type Word struct {
	ID             string       `db:"id"`
	Word           string       `db:"word"`
	Translation    string       `db:"translation"`
	Definition     string       `db:"definition"`
	Difficulty     string       `db:"difficulty"`
	Phonetic       string       `db:"phonetic"`
	PartOfSpeech   string       `db:"part_of_speech"`
	Examples       StringList   `db:"examples"`
	Synonyms       StringList   `db:"synonyms"`
	Antonyms       StringList   `db:"antonyms"`
	Etymology      string       `db:"etymology"`
	Frequency      int          `db:"frequency"`
	CorrectAnswers int          `db:"correct_answers"`
	TotalAttempts  int          `db:"total_attempts"`
	LastReviewedAt sql.NullTime `db:"last_reviewed_at"`
	NextReviewAt   sql.NullTime `db:"next_review_at"`
	SortOrder      int          `db:"sort_order"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// WordID derives the stable id for a word. Case is ignored so re-importing a
// word in different capitalisation hits the same row.
func WordID(word string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("word:"+strings.ToLower(strings.TrimSpace(word)))).String()
}

const wordColumns = `id, word, translation, definition, difficulty, phonetic, part_of_speech,
	examples, synonyms, antonyms, etymology, frequency, correct_answers, total_attempts,
	last_reviewed_at, next_review_at, sort_order, created_at, updated_at`

// WordRepo handles words. It runs against a *sqlx.DB or, inside
// database.WithTx, a *sqlx.Tx.
type WordRepo struct {
	db sqlx.ExtContext
}

func NewWordRepo(db sqlx.ExtContext) *WordRepo {
	return &WordRepo{db: db}
}

// now is UTC truncated to seconds, matching what SQLite stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (r *WordRepo) List(ctx context.Context) ([]Word, error) {
	var out []Word
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT `+wordColumns+` FROM words ORDER BY sort_order, word COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return out, nil
}

// Get finds a word by its text, ignoring case. Lookup goes through WordID so
// case folding covers non-ASCII letters too.
func (r *WordRepo) Get(ctx context.Context, word string) (Word, error) {
	var w Word
	err := sqlx.GetContext(ctx, r.db, &w, `SELECT `+wordColumns+` FROM words WHERE id = ?`, WordID(word))
	if errors.Is(err, sql.ErrNoRows) {
		return Word{}, fmt.Errorf("%w: %q", vocab.ErrWordNotFound, word)
	}
	if err != nil {
		return Word{}, fmt.Errorf("get word %q: %w", word, err)
	}
	return w, nil
}

func (r *WordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM words`); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Upsert inserts w or updates its content columns. Review counters and
// timestamps are only written on insert so an update never resets progress.
func (r *WordRepo) Upsert(ctx context.Context, w Word) error {
	if w.ID == "" {
		w.ID = WordID(w.Word)
	}
	ts := now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = ts
	}
	w.UpdatedAt = ts
	_, err := sqlx.NamedExecContext(ctx, r.db, `
	INSERT INTO words(`+wordColumns+`)
	VALUES (:id, :word, :translation, :definition, :difficulty, :phonetic, :part_of_speech,
		:examples, :synonyms, :antonyms, :etymology, :frequency, :correct_answers, :total_attempts,
		:last_reviewed_at, :next_review_at, :sort_order, :created_at, :updated_at)
	ON CONFLICT(id) DO UPDATE SET
	 word=excluded.word,
	 translation=excluded.translation,
	 definition=excluded.definition,
	 difficulty=excluded.difficulty,
	 phonetic=excluded.phonetic,
	 part_of_speech=excluded.part_of_speech,
	 examples=excluded.examples,
	 synonyms=excluded.synonyms,
	 antonyms=excluded.antonyms,
	 etymology=excluded.etymology,
	 frequency=excluded.frequency,
	 updated_at=excluded.updated_at;
	`, w)
	if err != nil {
		return fmt.Errorf("upsert word %q: %w", w.Word, err)
	}
	return nil
}

// RecordAnswer counts one review attempt for word.
func (r *WordRepo) RecordAnswer(ctx context.Context, word string, correct bool, at time.Time) error {
	inc := 0
	if correct {
		inc = 1
	}
	res, err := r.db.ExecContext(ctx, `
	UPDATE words SET
	 total_attempts = total_attempts + 1,
	 correct_answers = correct_answers + ?,
	 last_reviewed_at = ?,
	 updated_at = ?
	WHERE id = ?`, inc, at.UTC(), at.UTC(), WordID(word))
	if err != nil {
		return fmt.Errorf("record answer for %q: %w", word, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", vocab.ErrWordNotFound, word)
	}
	return nil
}

// ResetProgress zeroes every review counter and returns how many rows changed.
func (r *WordRepo) ResetProgress(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	UPDATE words SET correct_answers = 0, total_attempts = 0, last_reviewed_at = NULL, updated_at = ?`, now())
	if err != nil {
		return 0, fmt.Errorf("reset progress: %w", err)
	}
	return res.RowsAffected()
}
