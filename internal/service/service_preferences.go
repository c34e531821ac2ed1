// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

// Slice names a part of the preferences state that can be observed.
type Slice int

const (
	SliceDarkMode Slice = iota
	SliceLoggedInUser
	SliceActivityLog
)

func (s Slice) String() string {
	switch s {
	case SliceDarkMode:
		return "darkMode"
	case SliceLoggedInUser:
		return "loggedInUser"
	case SliceActivityLog:
		return "activityLog"
	default:
		return fmt.Sprintf("slice(%d)", int(s))
	}
}

var allSlices = []Slice{SliceDarkMode, SliceLoggedInUser, SliceActivityLog}

type preferencesService struct {
	repo     store.PreferencesRepository
	blobName string
	ids      *utils.UUIDGenerator
	now      func() time.Time

	// mu serialises changes so that saves reach the store in change order.
	mu    sync.Mutex
	state models.Preferences

	subsMu  sync.RWMutex
	subs    map[Slice]map[int]func(models.Preferences)
	nextSub int

	logger *logger.Logger
}

// NewPreferencesService builds a [PreferencesService] persisting the blob
// blobName through repo. The state starts with defaults until Load.
func NewPreferencesService(repo store.PreferencesRepository, blobName string, log *logger.Logger) PreferencesService {
	return &preferencesService{
		repo:     repo,
		blobName: blobName,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		state:    models.Preferences{ActivityLog: []models.ActivityLogEntry{}},
		subs:     make(map[Slice]map[int]func(models.Preferences)),
		logger:   log,
	}
}

func (s *preferencesService) Load(ctx context.Context) error {
	s.mu.Lock()
	loaded, err := s.repo.Load(ctx, s.blobName)
	switch {
	case errors.Is(err, store.ErrPreferencesNotFound):
		s.mu.Unlock()
		s.logger.Debug().Str("blob", s.blobName).Msg("no stored preferences, using defaults")
		return nil
	case err != nil:
		s.mu.Unlock()
		s.logger.Err(err).Str("func", "*preferencesService.Load").Msg("error loading preferences")
		return fmt.Errorf("load preferences: %w", err)
	}

	if loaded.ActivityLog == nil {
		loaded.ActivityLog = []models.ActivityLogEntry{}
	}
	s.state = loaded.Clone()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	for _, slice := range allSlices {
		s.notify(slice, snapshot)
	}
	return nil
}

func (s *preferencesService) Snapshot() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *preferencesService) ToggleDarkMode(ctx context.Context) (bool, error) {
	var enabled bool
	err := s.update(ctx, SliceDarkMode, func(p *models.Preferences) {
		p.DarkMode = !p.DarkMode
		enabled = p.DarkMode
	})
	return enabled, err
}

func (s *preferencesService) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.update(ctx, SliceDarkMode, func(p *models.Preferences) {
		p.DarkMode = enabled
	})
}

func (s *preferencesService) SetLoggedInUser(ctx context.Context, user *models.User) error {
	return s.update(ctx, SliceLoggedInUser, func(p *models.Preferences) {
		if user == nil {
			p.LoggedInUser = nil
			return
		}
		u := user.Clone()
		p.LoggedInUser = &u
	})
}

func (s *preferencesService) AddActivity(ctx context.Context, action models.ActionKind, userName string) (models.ActivityLogEntry, error) {
	entry := models.ActivityLogEntry{
		ID:        s.ids.Generate(),
		Timestamp: s.now(),
		Action:    action,
		UserName:  userName,
		Message:   models.ActivityMessage(action, userName),
	}

	err := s.update(ctx, SliceActivityLog, func(p *models.Preferences) {
		p.ActivityLog = append([]models.ActivityLogEntry{entry}, p.ActivityLog...)
	})
	return entry, err
}

func (s *preferencesService) ClearActivity(ctx context.Context) error {
	return s.update(ctx, SliceActivityLog, func(p *models.Preferences) {
		p.ActivityLog = []models.ActivityLogEntry{}
	})
}

// update applies fn to the state, persists the whole blob and notifies the
// subscribers of slice. The in-memory change is kept when saving fails.
func (s *preferencesService) update(ctx context.Context, slice Slice, fn func(p *models.Preferences)) error {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.Clone()
	err := s.repo.Save(ctx, s.blobName, snapshot)
	s.mu.Unlock()

	s.notify(slice, snapshot)

	if err != nil {
		s.logger.Err(err).Str("func", "*preferencesService.update").Stringer("slice", slice).Msg("error saving preferences")
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (s *preferencesService) Subscribe(slice Slice, fn func(models.Preferences)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	if s.subs[slice] == nil {
		s.subs[slice] = make(map[int]func(models.Preferences))
	}
	s.subs[slice][id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs[slice], id)
			s.subsMu.Unlock()
		})
	}
}

func (s *preferencesService) notify(slice Slice, snapshot models.Preferences) {
	s.subsMu.RLock()
	fns := make([]func(models.Preferences), 0, len(s.subs[slice]))
	for _, fn := range s.subs[slice] {
		fns = append(fns, fn)
	}
	s.subsMu.RUnlock()

	for _, fn := range fns {
		fn(snapshot.Clone())
	}
}
