package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/jask/lexicon/internal/config"
	"github.com/jask/lexicon/internal/database"
	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/logging"
	"github.com/jask/lexicon/internal/service"
	"github.com/jask/lexicon/internal/vocab"
)

// env is everything a command needs once config, logging and (for the
// sqlite source) the database are up.
type env struct {
	cfg    config.Config
	log    *logrus.Logger
	db     *sqlx.DB
	repo   *repository.WordRepo
	deck   *service.DeckService
	closer io.Closer
}

func setup(ctx context.Context, needDB bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	e := &env{cfg: cfg, log: log, closer: closer}
	if !needDB && cfg.Deck.Source == config.SourceBuiltin {
		log.Info("using built-in deck")
		return e, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		e.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	if err := database.RunMigrations(db); err != nil {
		e.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	e.repo = repository.NewWordRepo(db)
	if err := database.SeedDefaults(ctx, db, time.Now()); err != nil {
		e.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	e.deck = &service.DeckService{Repo: e.repo, Log: log}
	log.WithField("path", cfg.Database.Path).Info("database ready")
	return e, nil
}

// words returns the dashboard deck from the configured source.
func (e *env) words(ctx context.Context) ([]vocab.Word, error) {
	if e.deck == nil {
		return vocab.BuiltinWords(), nil
	}
	return e.deck.Words(ctx)
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	if e.closer != nil {
		_ = e.closer.Close()
	}
}
