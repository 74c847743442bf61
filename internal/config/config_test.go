package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LEXICON_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, SourceSQLite, cfg.Deck.Source)
	require.Equal(t, filepath.Join(home, ".local", "share", "lexicon", "lexicon.db"), cfg.Database.Path)
	require.Equal(t, "ocean", cfg.UI.ThemeDashboard)
	require.Equal(t, "dusk", cfg.UI.ThemeDetail)
	require.True(t, cfg.UI.Search)
	require.Equal(t, 140, cfg.UI.DailyGoal)
	require.Equal(t, 30, cfg.UI.StreakGoal)
	require.Equal(t, time.Second, cfg.Audio.Delay)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("LEXICON_DECK_SOURCE", "builtin")
	t.Setenv("LEXICON_UI_LOCALE", "ru")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, SourceBuiltin, cfg.Deck.Source)
	require.Equal(t, "ru", cfg.UI.Locale)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "cfg", "config.toml")

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.UI.ThemeDashboard = "dusk"
	cfg.UI.Search = false
	cfg.Audio.Delay = 250 * time.Millisecond
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dusk", got.UI.ThemeDashboard)
	require.False(t, got.UI.Search)
	require.Equal(t, 250*time.Millisecond, got.Audio.Delay)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[deck]\nsource = \"postgres\"\n"), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "deck.source")
}
