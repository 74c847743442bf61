package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jask/lexicon/internal/database"
	"github.com/jask/lexicon/internal/database/repository"
)

func testRepo(t *testing.T) *repository.WordRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return repository.NewWordRepo(db)
}

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "deck.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []any{"word", "translation", "definition", "difficulty", "phonetic", "pos", "examples", "synonyms", "antonyms", "etymology", "frequency"}

func TestImportXLSXCreatesWords(t *testing.T) {
	repo := testRepo(t)
	path := writeXLSX(t, [][]any{
		header,
		{"Lucid", "Ясный", "Expressed clearly", "Easy", "/ˈluːsɪd/", "adjective", "A lucid essay; Lucid dreams", "clear; coherent", "vague", "Latin lucidus", "60"},
		{"Tenacious", "Упорный", "Holding firmly", "hard"},
	})

	res, err := Import(context.Background(), path, repo, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.Processed)
	require.Equal(t, 2, res.Created)
	require.Zero(t, res.Updated)
	require.Empty(t, res.Errors)

	w, err := repo.Get(context.Background(), "lucid")
	require.NoError(t, err)
	require.Equal(t, "easy", w.Difficulty)
	require.Equal(t, repository.StringList{"A lucid essay", "Lucid dreams"}, w.Examples)
	require.Equal(t, repository.StringList{"clear", "coherent"}, w.Synonyms)
	require.Equal(t, 60, w.Frequency)

	words, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Lucid", words[0].Word)
	require.Equal(t, "Tenacious", words[1].Word)
}

func TestImportCollectsRowErrors(t *testing.T) {
	repo := testRepo(t)
	path := writeXLSX(t, [][]any{
		header,
		{"", "Пусто"},
		{"Odd", "Странный", "", "impossible"},
		{"Rare", "Редкий", "", "hard", "", "", "", "", "", "", "often"},
		{"Fine", "Хорошо"},
	})

	res, err := Import(context.Background(), path, repo, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 4, res.Processed)
	require.Equal(t, 1, res.Created)
	require.Len(t, res.Errors, 3)
	require.Contains(t, res.Errors[0], "row 2")
	require.Contains(t, res.Errors[1], "row 3")
	require.Contains(t, res.Errors[2], "row 4")
}

func TestImportCSVUpdatesExistingWord(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, repository.Word{Word: "Ephemeral", Translation: "old", CorrectAnswers: 3, TotalAttempts: 4}))
	require.NoError(t, repo.RecordAnswer(ctx, "Ephemeral", true, time.Now()))

	path := filepath.Join(t.TempDir(), "deck.csv")
	body := "word,translation,definition,difficulty\nephemeral,Мимолетный,Lasting a very short time,hard\nQuaint,Причудливый,,medium\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	res, err := Import(ctx, path, repo, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, res.Updated)
	require.Equal(t, 1, res.Created)

	w, err := repo.Get(ctx, "Ephemeral")
	require.NoError(t, err)
	require.Equal(t, "Мимолетный", w.Translation)
	require.Equal(t, 4, w.CorrectAnswers)
	require.Equal(t, 5, w.TotalAttempts)
}

func TestImportMatchesNonASCIIWordsIgnoringCase(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	path := writeXLSX(t, [][]any{
		header,
		{"Ёлка", "Fir tree"},
		{"ёлка", "Christmas tree"},
	})

	res, err := Import(ctx, path, repo, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)
	require.Equal(t, 1, res.Updated)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	w, err := repo.Get(ctx, "ЁЛКА")
	require.NoError(t, err)
	require.Equal(t, "Christmas tree", w.Translation)
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	_, err := Import(context.Background(), "deck.txt", testRepo(t), DefaultOptions())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
