package scheduler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/config"
)

// Scheduler runs periodic maintenance tasks. The only job today sweeps the
// upload directory for import files that a crashed or aborted request left
// behind; the happy path deletes its file right after parsing.
type Scheduler struct {
	cron   *cron.Cron
	cfg    config.UploadConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.UploadConfig, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.SweepSchedule))

	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.sweepUploads); err != nil {
		s.logger.Error("failed to schedule upload sweep", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sweepUploads() {
	cutoff := time.Now().Add(-s.cfg.MaxAge)

	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		s.logger.Warn("failed to read upload directory", zap.Error(err), zap.String("dir", s.cfg.Dir))
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.cfg.Dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove stale upload", zap.Error(err), zap.String("path", path))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("swept stale uploads", zap.Int("removed", removed))
	}
}
