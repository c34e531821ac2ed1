// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

// Scheduler fires workers on standard cron specs ("*/5 * * * *",
// "@every 5m"). A run still in progress when its next tick arrives is
// skipped, and a panicking worker is recovered and logged.
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates an idle scheduler.
func NewScheduler(log *logger.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: log,
		ctx:    context.Background(),
	}
}

// Schedule registers w under spec. It may be called before or after Start.
func (s *Scheduler) Schedule(name, spec string, w Worker) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx := s.runContext()
		if ctx.Err() != nil {
			return
		}
		s.logger.Debug().Str("worker", name).Msg("running scheduled worker")
		w.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	return nil
}

// Start begins firing workers. Workers receive a context derived from ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.cron.Start()
}

// Stop stops firing workers, cancels the context of running ones and waits
// for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}

// Len returns the number of scheduled workers.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) runContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// cronLogger routes cron's logging to zerolog.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Err(err).Fields(keysAndValues).Msg(msg)
}
