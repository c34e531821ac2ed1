// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/cache"
	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/models"
)

// Services bundles the client workflows together with the caches they
// share.
type Services struct {
	Queries     UserQueryService
	Mutations   MutationService
	Preferences PreferencesService
	Session     SessionService
	AppInfo     AppInfoService
	RefreshJob  RefreshJob

	Pages *cache.Cache[models.UsersPage]
	Users *cache.Cache[models.User]
}

// NewServices wires the workflows over userAdapter and the preferences
// repository.
func NewServices(cfg *config.ClientConfig, userAdapter adapter.UserServiceAdapter, repo store.PreferencesRepository, log *logger.Logger) *Services {
	pages := cache.New(models.UsersPage.Clone, cfg.Cache.StaleTime, log.GetChildLogger())
	users := cache.New(models.User.Clone, cfg.Cache.StaleTime, log.GetChildLogger())

	prefs := NewPreferencesService(repo, cfg.Storage.BlobName, log)
	queries := NewUserQueryService(userAdapter, pages, users, log)

	return &Services{
		Queries:     queries,
		Mutations:   NewMutationService(userAdapter, pages, users, prefs, log),
		Preferences: prefs,
		Session:     NewSessionService(prefs, userAdapter, cfg.App.DefaultUserID, log),
		AppInfo:     NewAppInfoService(cfg.App, log),
		RefreshJob:  NewRefreshJob(queries),
		Pages:       pages,
		Users:       users,
	}
}
