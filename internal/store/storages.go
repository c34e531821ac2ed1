// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

// Storages bundles the repositories used by the client together with the
// resources that back them.
type Storages struct {
	PreferencesRepository PreferencesRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.Backend, applies schema
// migrations for SQL backends and builds the repositories.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Backend {
	case config.BackendJSON:
		log.Debug().Str("path", cfg.DB.DSN).Msg("using json file preferences storage")
		return &Storages{PreferencesRepository: NewFilePreferencesStorage(cfg.DB.DSN, log)}, nil

	case config.BackendSQLite, config.BackendPostgres, "":
		connect := NewConnectSQLite
		if cfg.DB.Backend == config.BackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			return nil, err
		}

		return newSQLStorages(db, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.DB.Backend)
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		PreferencesRepository: NewPreferencesRepository(db, log),
		db:                    db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
