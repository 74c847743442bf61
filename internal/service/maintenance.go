package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jask/lexicon/internal/database/repository"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	Repo *repository.WordRepo
	Log  logrus.FieldLogger
}

// ResetProgress wipes review counters but keeps the words themselves.
func (s *MaintenanceService) ResetProgress(ctx context.Context) (int64, error) {
	if s.Repo == nil {
		return 0, fmt.Errorf("maintenance: repo not configured")
	}
	n, err := s.Repo.ResetProgress(ctx)
	if err != nil {
		return 0, err
	}
	if s.Log != nil {
		s.Log.WithField("words", n).Warn("review progress reset")
	}
	return n, nil
}
