// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the dashboard preferences blob. The blob is a
// single named JSON document; backends are SQLite, PostgreSQL and a plain
// JSON file, selected from the configured DSN.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/preferences_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

// PreferencesRepository loads and saves the preferences blob stored under a
// name. Load returns [ErrPreferencesNotFound] when nothing was saved yet.
type PreferencesRepository interface {
	Load(ctx context.Context, name string) (models.Preferences, error)
	Save(ctx context.Context, name string, prefs models.Preferences) error
}
