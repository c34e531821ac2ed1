// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-dashboard/internal/cache"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/mock"
	"github.com/MKhiriev/go-user-dashboard/models"
)

var testParams = models.PageParams{Page: 1, Limit: 3}

// fixture wires the services over gomock collaborators and real caches.
type fixture struct {
	adapter *mock.MockUserServiceAdapter
	repo    *mock.MockPreferencesRepository

	pages *cache.Cache[models.UsersPage]
	users *cache.Cache[models.User]

	prefs     *preferencesService
	queries   *userQueryService
	mutations *mutationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		adapter: mock.NewMockUserServiceAdapter(ctrl),
		repo:    mock.NewMockPreferencesRepository(ctrl),
		pages:   cache.New(models.UsersPage.Clone, time.Minute, logger.Nop()),
		users:   cache.New(models.User.Clone, time.Minute, logger.Nop()),
	}

	f.prefs = NewPreferencesService(f.repo, "app-store", logger.Nop()).(*preferencesService)
	f.queries = NewUserQueryService(f.adapter, f.pages, f.users, logger.Nop()).(*userQueryService)
	f.mutations = NewMutationService(f.adapter, f.pages, f.users, f.prefs, logger.Nop()).(*mutationService)
	return f
}

// allowSaves accepts every preferences save.
func (f *fixture) allowSaves() {
	f.repo.EXPECT().Save(gomock.Any(), "app-store", gomock.Any()).Return(nil).AnyTimes()
}

func user(id int64, name, email string) models.User {
	return models.User{ID: id, Name: name, Email: email, Company: &models.Company{Name: "Acme"}}
}

func page(total int, users ...models.User) models.UsersPage {
	return models.UsersPage{Items: users, Total: total}
}
