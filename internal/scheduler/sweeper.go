// Package scheduler runs background maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweeper purges expired frequency counters.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int64, error)
}

// SweepService periodically calls a Sweeper. A run that is still in progress
// when the next tick fires makes that tick a no-op.
type SweepService struct {
	scheduler *gocron.Scheduler
	target    Sweeper
	interval  time.Duration
	timeout   time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewSweepService creates a service that sweeps target every interval.
func NewSweepService(target Sweeper, interval time.Duration, logger *slog.Logger) *SweepService {
	return &SweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		target:    target,
		interval:  interval,
		timeout:   30 * time.Second,
		now:       time.Now,
		logger:    logger,
	}
}

// Start schedules the sweep until ctx is cancelled.
func (s *SweepService) Start(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("frequency sweep disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("frequency sweep failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule frequency sweep: %w", err)
	}
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()
	return nil
}

// RunOnce sweeps immediately and returns the number of removed counters.
func (s *SweepService) RunOnce(ctx context.Context) (int64, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("frequency sweep already running")
		return 0, nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	removed, err := s.target.Sweep(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Debug("expired frequency counters swept", slog.Int64("removed", removed))
	}
	return removed, nil
}
