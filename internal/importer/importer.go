// Package importer loads deck spreadsheets (.xlsx or .csv) into the word store.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/vocab"
)

// Column order of an import sheet.
const (
	colWord = iota
	colTranslation
	colDefinition
	colDifficulty
	colPhonetic
	colPartOfSpeech
	colExamples
	colSynonyms
	colAntonyms
	colEtymology
	colFrequency
)

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported import format")

// Store is the part of the word repository the importer writes through.
type Store interface {
	Get(ctx context.Context, word string) (repository.Word, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, w repository.Word) error
}

// Options controls how a file is read.
type Options struct {
	Sheet      string // xlsx only; empty means the first sheet
	SkipHeader bool
	ListSep    string
}

// DefaultOptions skips the header row and splits list cells on ";".
func DefaultOptions() Options {
	return Options{SkipHeader: true, ListSep: ";"}
}

// Result summarises an import run. Row errors do not abort the run.
type Result struct {
	Processed int
	Created   int
	Updated   int
	Errors    []string
}

// Import reads path and upserts every valid row into store.
func Import(ctx context.Context, path string, store Store, opts Options) (*Result, error) {
	if opts.ListSep == "" {
		opts.ListSep = ";"
	}
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path, opts.Sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	start := 0
	if opts.SkipHeader && len(rows) > 0 {
		start = 1
	}
	next, err := store.Count(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{Errors: make([]string, 0)}
	for i := start; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		row := rows[i]
		if isBlank(row) {
			continue
		}
		res.Processed++
		w, err := parseRow(row, opts.ListSep)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		existing, err := store.Get(ctx, w.Word)
		found := err == nil
		switch {
		case found:
			w.ID = existing.ID
			w.SortOrder = existing.SortOrder
		case errors.Is(err, vocab.ErrWordNotFound):
			w.SortOrder = next
		default:
			return res, err
		}
		if err := store.Upsert(ctx, w); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if found {
			res.Updated++
		} else {
			res.Created++
			next++
		}
	}
	return res, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func parseRow(row []string, sep string) (repository.Word, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	w := repository.Word{
		Word:         cell(colWord),
		Translation:  cell(colTranslation),
		Definition:   cell(colDefinition),
		Phonetic:     cell(colPhonetic),
		PartOfSpeech: cell(colPartOfSpeech),
		Examples:     splitList(cell(colExamples), sep),
		Synonyms:     splitList(cell(colSynonyms), sep),
		Antonyms:     splitList(cell(colAntonyms), sep),
		Etymology:    cell(colEtymology),
	}
	if w.Word == "" || w.Translation == "" {
		return repository.Word{}, errors.New("word and translation are required")
	}
	if raw := cell(colDifficulty); raw != "" {
		d, err := vocab.ParseDifficulty(raw)
		if err != nil {
			return repository.Word{}, err
		}
		w.Difficulty = string(d)
	}
	if raw := cell(colFrequency); raw != "" {
		f, err := strconv.Atoi(raw)
		if err != nil {
			return repository.Word{}, fmt.Errorf("frequency %q is not a number", raw)
		}
		w.Frequency = f
	}
	return w, nil
}

func splitList(s, sep string) repository.StringList {
	if s == "" {
		return nil
	}
	parts := lo.Map(strings.Split(s, sep), func(p string, _ int) string { return strings.TrimSpace(p) })
	return lo.Filter(parts, func(p string, _ int) bool { return p != "" })
}

func isBlank(row []string) bool {
	return !lo.SomeBy(row, func(c string) bool { return strings.TrimSpace(c) != "" })
}
