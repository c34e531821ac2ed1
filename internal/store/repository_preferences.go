// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	defaultRetryBase     = 50 * time.Millisecond
	defaultRetryAttempts = 3
)

// preferencesRepository is the SQL implementation of [PreferencesRepository].
// The blob lives in the app_store table keyed by name.
type preferencesRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
	// backoff returns a fresh retry policy per call.
	backoff func() retry.Backoff
}

// NewPreferencesRepository constructs a [PreferencesRepository] backed by db.
// Calls failing with a [Retryable] error are retried with exponential backoff.
func NewPreferencesRepository(db *DB, log *logger.Logger) PreferencesRepository {
	log.Debug().Msg("creating preferences repository")
	return &preferencesRepository{
		db:     db,
		logger: log,
		now:    time.Now,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(defaultRetryAttempts, retry.NewExponential(defaultRetryBase))
		},
	}
}

// Load reads and decodes the blob stored under name.
func (r *preferencesRepository) Load(ctx context.Context, name string) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPreferencesQuery(r.db.placeholder(), name)
	if err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Load").Msg("error building select query")
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob string
	err = retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&blob)
		return r.retryable(scanErr)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Preferences{}, ErrPreferencesNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Load").
			Str("pg_code", postgresError(err)).
			Msg("error reading preferences")
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodePreferences([]byte(blob))
}

// Save encodes prefs and upserts it under name.
func (r *preferencesRepository) Save(ctx context.Context, name string, prefs models.Preferences) error {
	log := logger.FromContext(ctx)

	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	query, args, err := buildUpsertPreferencesQuery(r.db.placeholder(), name, string(blob), r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Save").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return r.retryable(execErr)
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*preferencesRepository.Save").
			Str("pg_code", postgresError(err)).
			Msg("error saving preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPreferencesNotSaved
	}

	log.Debug().Str("func", "*preferencesRepository.Save").Str("name", name).Msg("preferences saved")
	return nil
}

func (r *preferencesRepository) retryable(err error) error {
	if err != nil && r.db.classify(err) == Retryable {
		return retry.RetryableError(err)
	}
	return err
}

func decodePreferences(blob []byte) (models.Preferences, error) {
	var prefs models.Preferences
	if err := json.Unmarshal(blob, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrCorruptPreferences, err)
	}
	if prefs.ActivityLog == nil {
		prefs.ActivityLog = []models.ActivityLogEntry{}
	}
	return prefs, nil
}
