// Package expiry wires up the cron job that periodically closes postings
// whose application deadline has passed.
package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/campushire/placement-portal/internal/repository"
)

// Sweeper wraps robfig/cron and manages the deadline sweep loop.
type Sweeper struct {
	cron     *cron.Cron
	postings repository.PostingRepository
	spec     string // cron spec, e.g. "@daily"
	logger   *slog.Logger
}

func New(postings repository.PostingRepository, spec string, logger *slog.Logger) *Sweeper {
	if spec == "" {
		spec = "@daily"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		cron:     cron.New(),
		postings: postings,
		spec:     spec,
		logger:   logger,
	}
}

// Start registers the job and starts the scheduler. Also runs one sweep
// immediately so a restart does not leave stale postings open until the
// first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("expiry sweeper started", "spec", s.spec)

	go s.runSweep(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("expiry sweeper stopped")
}

func (s *Sweeper) runSweep(ctx context.Context) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	n, err := s.postings.CloseExpired(ctx, today)
	if err != nil {
		s.logger.Error("expiry sweep failed", "error", err)
		return
	}
	s.logger.Info("expiry sweep complete", "closed", n)
}
