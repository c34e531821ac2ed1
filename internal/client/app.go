// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/internal/workers"
)

// ErrMissingDependency is returned by NewApp when a required part is nil.
var ErrMissingDependency = errors.New("client: missing dependency")

// UI is the interactive front-end run by the App.
type UI interface {
	Run(ctx context.Context) error
}

// App owns the client process lifecycle: it restores the persisted state,
// starts the background jobs, runs the UI and shuts everything down once
// the UI returns.
type App struct {
	services  *service.Services
	ui        UI
	storage   io.Closer
	scheduler *workers.Scheduler
	workers   config.ClientWorkers

	logger *logger.Logger
}

// NewApp wires the App. storage may be nil; it is closed after Run.
func NewApp(services *service.Services, ui UI, storage io.Closer, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, ErrMissingDependency
	}

	scheduler := workers.NewScheduler(log.GetChildLogger())
	if cfg.Workers.SweepSchedule != "" && services.Pages != nil && services.Users != nil {
		sweepers := []workers.Worker{
			workers.NewCacheSweeper("pages", services.Pages, cfg.Cache.GCTime, log),
			workers.NewCacheSweeper("users", services.Users, cfg.Cache.GCTime, log),
		}
		if err := scheduler.Schedule("cache-sweeper", cfg.Workers.SweepSchedule, workers.NewWorkers(sweepers...)); err != nil {
			return nil, fmt.Errorf("error scheduling cache sweeper: %w", err)
		}
	}

	return &App{
		services:  services,
		ui:        ui,
		storage:   storage,
		scheduler: scheduler,
		workers:   cfg.Workers,
		logger:    log,
	}, nil
}

// Run blocks until the UI exits or ctx is cancelled. Dispatched mutations
// are allowed to finish before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.closeStorage()

	if err := a.services.Preferences.Load(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("preferences not loaded, using defaults")
	}

	if a.services.Session != nil {
		if _, err := a.services.Session.EnsureLoggedInUser(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("no logged-in user")
		}
	}

	if a.services.RefreshJob != nil {
		a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
		defer a.services.RefreshJob.Stop()
	}

	a.scheduler.Start(ctx)
	defer a.scheduler.Stop()

	err := a.ui.Run(ctx)

	a.logger.Debug().Msg("waiting for pending mutations")
	a.services.Mutations.Wait()

	if err != nil {
		a.logger.Err(err).Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) closeStorage() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storage")
	}
}
