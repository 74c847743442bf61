package vocab

import (
	"fmt"
	"math"
)

// Fallbacks applied by Normalize to fields the caller left empty.
const (
	DefaultEtymology    = "No information available"
	DefaultPhonetic     = "/ˈwɜːrd/"
	DefaultPartOfSpeech = "word"
	DefaultFrequency    = 50
	DefaultLastReviewed = "Not studied yet"
	DefaultNextReview   = "Soon"
	DefaultAttempts     = 1
)

// DetailInput is a word record as it arrives from a caller or the store.
// Any field may be left at its zero value; Normalize fills the gaps.
type DetailInput struct {
	Word           string
	Translation    string
	Definition     string
	Difficulty     Difficulty
	Phonetic       string
	PartOfSpeech   string
	Examples       []string
	Synonyms       []string
	Antonyms       []string
	Etymology      string
	Frequency      int
	LastReviewed   string
	NextReview     string
	CorrectAnswers int
	TotalAttempts  int
}

// Detail is a fully populated word record. TotalAttempts is always >= 1 and
// Frequency always within [0, 100].
type Detail struct {
	Word           string
	Translation    string
	Definition     string
	Difficulty     Difficulty
	Phonetic       string
	PartOfSpeech   string
	Examples       []string
	Synonyms       []string
	Antonyms       []string
	Etymology      string
	Frequency      int
	LastReviewed   string
	NextReview     string
	CorrectAnswers int
	TotalAttempts  int
}

// Normalize turns an optional input into a complete record. A nil input
// yields the built-in default word.
func Normalize(in *DetailInput) Detail {
	src := DefaultDetail()
	if in != nil {
		src = *in
	}
	d := Detail{
		Word:           src.Word,
		Translation:    src.Translation,
		Definition:     src.Definition,
		Difficulty:     src.Difficulty,
		Phonetic:       orString(src.Phonetic, DefaultPhonetic),
		PartOfSpeech:   orString(src.PartOfSpeech, DefaultPartOfSpeech),
		Examples:       orList(src.Examples),
		Synonyms:       orList(src.Synonyms),
		Antonyms:       orList(src.Antonyms),
		Etymology:      orString(src.Etymology, DefaultEtymology),
		Frequency:      clampPercent(orInt(src.Frequency, DefaultFrequency)),
		LastReviewed:   orString(src.LastReviewed, DefaultLastReviewed),
		NextReview:     orString(src.NextReview, DefaultNextReview),
		CorrectAnswers: src.CorrectAnswers,
		TotalAttempts:  src.TotalAttempts,
	}
	if d.TotalAttempts <= 0 {
		d.TotalAttempts = DefaultAttempts
	}
	return d
}

// Accuracy is the record's correct answer rate in percent.
func (d Detail) Accuracy() int {
	return Accuracy(d.CorrectAnswers, d.TotalAttempts)
}

// AnswerRatio renders the raw counters, e.g. "8/10".
func (d Detail) AnswerRatio() string {
	return fmt.Sprintf("%d/%d", d.CorrectAnswers, d.TotalAttempts)
}

// Accuracy returns round(correct/total*100) clamped to [0, 100]. A total of
// zero or less counts as a single attempt.
func Accuracy(correct, total int) int {
	if total <= 0 {
		total = DefaultAttempts
	}
	return clampPercent(int(math.Round(float64(correct) / float64(total) * 100)))
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func orList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
