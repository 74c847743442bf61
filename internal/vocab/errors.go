package vocab

import "errors"

var (
	// ErrEmptyDeck is returned when a card cycler is built over no words.
	ErrEmptyDeck = errors.New("vocab: deck is empty")
	// ErrUnknownDifficulty is returned by ParseDifficulty.
	ErrUnknownDifficulty = errors.New("vocab: unknown difficulty")
	// ErrWordNotFound is returned by lookups that miss.
	ErrWordNotFound = errors.New("vocab: word not found")
)
