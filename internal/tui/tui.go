// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the dashboard: the users table
// with search, company filter, email sort and pagination, the detail view,
// the add/edit dialog, delete confirmation and the activity panel.
//
// The package holds no reconciliation logic. It dispatches mutations through
// [service.MutationService], renders whatever the query cache holds and
// redraws when the cache or the preferences change.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/models"
)

// ErrNoServices is returned by New when services are missing.
var ErrNoServices = errors.New("tui: services are required")

// TUI runs the dashboard program.
type TUI struct {
	services *service.Services
	perPage  int

	logger *logger.Logger
}

// New returns a TUI showing perPage users per page.
func New(services *service.Services, perPage int, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Queries == nil || services.Mutations == nil || services.Preferences == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, perPage: perPage, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	version := "dev"
	if t.services.AppInfo != nil {
		version = t.services.AppInfo.GetAppVersion(ctx)
	}

	model := newAppModel(ctx, t.services, t.perPage, version, t.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads the message, and cache writes
	// also happen inside Update, so every notification is sent from its own
	// goroutine.
	if t.services.Pages != nil {
		unsubscribe := t.services.Pages.Subscribe(func(key string) {
			go p.Send(pageChangedMsg{key: key})
		})
		defer unsubscribe()
	}

	onPreferences := func(models.Preferences) {
		go p.Send(preferencesChangedMsg{})
	}
	for _, slice := range []service.Slice{service.SliceDarkMode, service.SliceLoggedInUser, service.SliceActivityLog} {
		defer t.services.Preferences.Subscribe(slice, onPreferences)()
	}

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
