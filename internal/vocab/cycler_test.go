package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCyclerRejectsEmptyDeck(t *testing.T) {
	_, err := NewCycler(0)
	require.ErrorIs(t, err, ErrEmptyDeck)
}

func TestCyclerWrapsAfterLastCard(t *testing.T) {
	c, err := NewCycler(3)
	require.NoError(t, err)
	require.Equal(t, 0, c.Index())
	require.Equal(t, 1, c.Next())
	require.Equal(t, 2, c.Next())
	require.Equal(t, 0, c.Next())
}

func TestCyclerFullLapReturnsToStart(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		c, err := NewCycler(n)
		require.NoError(t, err)
		c.Next()
		start := c.Index()
		for i := 0; i < n; i++ {
			c.Next()
		}
		require.Equal(t, start, c.Index(), "n=%d", n)
	}
}
