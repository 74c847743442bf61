package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleForIsTotal(t *testing.T) {
	tests := []struct {
		in   Difficulty
		want Tone
	}{
		{Easy, TonePositive},
		{Medium, ToneWarning},
		{Hard, ToneDanger},
		{"", ToneNeutral},
		{"expert", ToneNeutral},
		{"Easy", ToneNeutral},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			require.Equal(t, tt.want, StyleFor(tt.in))
		})
	}
}

func TestToneString(t *testing.T) {
	require.Equal(t, "positive", TonePositive.String())
	require.Equal(t, "warning", ToneWarning.String())
	require.Equal(t, "danger", ToneDanger.String())
	require.Equal(t, "neutral", ToneNeutral.String())
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	require.Equal(t, Hard, d)

	_, err = ParseDifficulty("impossible")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
}
