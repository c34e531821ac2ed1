// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

// filePreferencesStorage keeps every named blob in one JSON document on disk.
// The whole document is rewritten on each Save.
type filePreferencesStorage struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFilePreferencesStorage returns a [PreferencesRepository] persisting to
// the JSON file at path. The file is created on the first Save.
func NewFilePreferencesStorage(path string, log *logger.Logger) PreferencesRepository {
	return &filePreferencesStorage{path: path, logger: log}
}

// Load implements [PreferencesRepository].
func (s *filePreferencesStorage) Load(ctx context.Context, name string) (models.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return models.Preferences{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blobs, err := s.read()
	if err != nil {
		return models.Preferences{}, err
	}

	blob, ok := blobs[name]
	if !ok {
		return models.Preferences{}, ErrPreferencesNotFound
	}

	return decodePreferences(blob)
}

// Save implements [PreferencesRepository].
func (s *filePreferencesStorage) Save(ctx context.Context, name string, prefs models.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blobs, err := s.read()
	if err != nil {
		// a corrupt document is replaced rather than blocking every write
		s.logger.Warn().Err(err).Str("func", "*filePreferencesStorage.Save").Msg("overwriting unreadable preferences file")
		blobs = make(map[string]json.RawMessage)
	}
	blobs[name] = blob

	return s.persist(blobs)
}

func (s *filePreferencesStorage) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("read preferences file: %w", err)
	}

	blobs := make(map[string]json.RawMessage)
	if len(data) == 0 {
		return blobs, nil
	}
	if err = json.Unmarshal(data, &blobs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPreferences, err)
	}
	return blobs, nil
}

func (s *filePreferencesStorage) persist(blobs map[string]json.RawMessage) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(blobs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preferences file: %w", err)
	}

	return nil
}
