package vocab

// Cycler walks a fixed-length list of cards, wrapping back to the first card
// after the last one.
type Cycler struct {
	n     int
	index int
}

// NewCycler returns a cycler positioned on the first of n cards.
func NewCycler(n int) (*Cycler, error) {
	if n <= 0 {
		return nil, ErrEmptyDeck
	}
	return &Cycler{n: n}, nil
}

// Next advances to the following card and returns its index.
func (c *Cycler) Next() int {
	c.index = (c.index + 1) % c.n
	return c.index
}

// Index is the current card position.
func (c *Cycler) Index() int { return c.index }

// Len is the number of cards being cycled.
func (c *Cycler) Len() int { return c.n }
