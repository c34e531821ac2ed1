// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

const devVersion = "dev"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService builds an [AppInfoService]. An empty version reads as
// "dev".
func NewAppInfoService(cfg config.ClientApp, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = devVersion
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
