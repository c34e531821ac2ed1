// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-user-dashboard/internal/fakeapi"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

// Handler serves the users resource.
type Handler struct {
	users   fakeapi.UsersRepository
	version string

	logger *logger.Logger
}

// NewHandler returns a Handler backed by users. version is reported by
// GET /version.
func NewHandler(users fakeapi.UsersRepository, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		users:   users,
		version: version,
		logger:  logger,
	}
}
