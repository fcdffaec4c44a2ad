// Package scheduler runs the periodic deadline check: sweep overdue rows,
// then dispatch notifications. The production schedule fires hourly; the
// same check is reachable on demand through the HTTP surface.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/notify"

	"github.com/robfig/cron/v3"
)

// Sweeper reclassifies overdue deadlines.
type Sweeper interface {
	SweepOverdue(ctx context.Context) (int64, error)
}

// Dispatcher sends deadline notifications.
type Dispatcher interface {
	Run(ctx context.Context) (notify.Result, error)
}

type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	disp    Dispatcher
	log     *slog.Logger
	timeout time.Duration
}

func New(sweeper Sweeper, disp Dispatcher, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		disp:    disp,
		log:     log,
		timeout: 5 * time.Minute,
	}
}

// Start registers the check under the given cron spec and starts the clock.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runCheck); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("deadline scheduler started", "cron", spec)
	return nil
}

// Stop halts the clock and waits for an in-flight check to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("deadline scheduler stopped")
}

func (s *Scheduler) runCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.Check(ctx)
}

// Check runs one sweep-and-dispatch cycle. Failures are logged; the
// scheduler keeps running.
func (s *Scheduler) Check(ctx context.Context) {
	if _, err := s.sweeper.SweepOverdue(ctx); err != nil {
		s.log.Error("overdue sweep failed", "err", err)
	}
	if _, err := s.disp.Run(ctx); err != nil {
		s.log.Error("notification dispatch failed", "err", err)
	}
}
