package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Deck sources.
const (
	SourceSQLite  = "sqlite"
	SourceBuiltin = "builtin"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Deck     DeckConfig     `mapstructure:"deck"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
	Audio    AudioConfig    `mapstructure:"audio"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DeckConfig selects where words come from.
type DeckConfig struct {
	Source string `mapstructure:"source"`
}

// LogConfig holds logging settings. The terminal belongs to the UI, so logs
// always go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ThemeDashboard string `mapstructure:"theme_dashboard"`
	ThemeDetail    string `mapstructure:"theme_detail"`
	Locale         string `mapstructure:"locale"`
	Search         bool   `mapstructure:"search"`
	DailyGoal      int    `mapstructure:"daily_goal"`
	StreakGoal     int    `mapstructure:"streak_goal"`
}

// AudioConfig holds pronunciation settings.
type AudioConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// LEXICON_. A .env file in the working directory is applied first; path may
// be empty to use LEXICON_CONFIG or ~/.config/lexicon/config.toml.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LEXICON_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "lexicon"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LEXICON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; a missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := filepath.Join(homeDir(), ".local", "share", "lexicon")
	v.SetDefault("database.path", filepath.Join(dataDir, "lexicon.db"))
	v.SetDefault("deck.source", SourceSQLite)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, "lexicon.log"))
	v.SetDefault("ui.theme_dashboard", "ocean")
	v.SetDefault("ui.theme_detail", "dusk")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.search", true)
	v.SetDefault("ui.daily_goal", 140)
	v.SetDefault("ui.streak_goal", 30)
	v.SetDefault("audio.delay", "1s")
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	switch c.Deck.Source {
	case SourceSQLite, SourceBuiltin:
	default:
		return fmt.Errorf("config: deck.source must be %q or %q, got %q", SourceSQLite, SourceBuiltin, c.Deck.Source)
	}
	if c.Deck.Source == SourceSQLite && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("config: database.path is required for the sqlite deck")
	}
	if c.UI.DailyGoal <= 0 || c.UI.StreakGoal <= 0 {
		return fmt.Errorf("config: ui goals must be positive")
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("LEXICON_CONFIG")
	}
	if path == "" {
		path = filepath.Join(homeDir(), ".config", "lexicon", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("deck.source", cfg.Deck.Source)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("ui.theme_dashboard", cfg.UI.ThemeDashboard)
	v.Set("ui.theme_detail", cfg.UI.ThemeDetail)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.search", cfg.UI.Search)
	v.Set("ui.daily_goal", cfg.UI.DailyGoal)
	v.Set("ui.streak_goal", cfg.UI.StreakGoal)
	v.Set("audio.delay", cfg.Audio.Delay.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
