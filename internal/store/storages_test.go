// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

func TestNewStorages_JSONBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	cfg := config.ClientStorage{
		DB:       config.ClientDB{DSN: path, Backend: config.BackendJSON},
		BlobName: "app-store",
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.PreferencesRepository)
	defer s.Close()

	require.NoError(t, s.PreferencesRepository.Save(context.Background(), "app-store", models.Preferences{DarkMode: true}))
	got, err := s.PreferencesRepository.Load(context.Background(), "app-store")
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
}

func TestNewStorages_SQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")
	cfg := config.ClientStorage{
		DB:       config.ClientDB{DSN: path, Backend: config.BackendSQLite},
		BlobName: "app-store",
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	_, err = s.PreferencesRepository.Load(ctx, "app-store")
	assert.ErrorIs(t, err, ErrPreferencesNotFound)

	require.NoError(t, s.PreferencesRepository.Save(ctx, "app-store", models.Preferences{DarkMode: true}))
	require.NoError(t, s.PreferencesRepository.Save(ctx, "app-store", samplePreferences()))

	got, err := s.PreferencesRepository.Load(ctx, "app-store")
	require.NoError(t, err)
	require.NotNil(t, got.LoggedInUser)
	assert.Equal(t, "Leanne Graham", got.LoggedInUser.Name)
}

func TestNewStorages_UnknownBackend(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: "x", Backend: "mongo"}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}

func TestStorages_CloseClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	s := newSQLStorages(&DB{DB: db, dialect: DialectSQLite}, logger.Nop())
	require.NoError(t, s.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteFilePath(t *testing.T) {
	assert.Equal(t, "dashboard.db", sqliteFilePath("dashboard.db"))
	assert.Equal(t, "/tmp/d.db", sqliteFilePath("file:/tmp/d.db?_busy_timeout=5000"))
	assert.Empty(t, sqliteFilePath(":memory:"))
	assert.Empty(t, sqliteFilePath("file::memory:?cache=shared"))
}
