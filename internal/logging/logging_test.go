package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/lexicon/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lexicon.log")
	logger, closer, err := New(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.WithField("word", "Ephemeral").Debug("card shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "card shown")
	require.Contains(t, string(data), "word=Ephemeral")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	require.ErrorContains(t, err, "parse log level")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closer.Close())
}
