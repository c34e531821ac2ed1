// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type sessionService struct {
	prefs         PreferencesService
	adapter       adapter.UserServiceAdapter
	defaultUserID int64

	logger *logger.Logger
}

// NewSessionService builds a [SessionService] that falls back to the user
// defaultUserID.
func NewSessionService(prefs PreferencesService, userAdapter adapter.UserServiceAdapter, defaultUserID int64, log *logger.Logger) SessionService {
	return &sessionService{
		prefs:         prefs,
		adapter:       userAdapter,
		defaultUserID: defaultUserID,
		logger:        log,
	}
}

func (s *sessionService) EnsureLoggedInUser(ctx context.Context) (*models.User, error) {
	if current := s.prefs.Snapshot().LoggedInUser; current != nil {
		return current, nil
	}
	if s.defaultUserID <= 0 {
		return nil, ErrNoDefaultUser
	}

	u, err := s.adapter.GetUser(ctx, s.defaultUserID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", s.defaultUserID).Msg("could not fetch default user")
		return nil, mapAdapterError("load", err)
	}

	if err = s.prefs.SetLoggedInUser(ctx, &u); err != nil {
		// the identity is still usable for this session
		s.logger.Warn().Err(err).Msg("default user was not persisted")
	}

	s.logger.Info().Int64("id", u.ID).Str("name", u.Name).Msg("logged-in user set")
	return &u, nil
}
