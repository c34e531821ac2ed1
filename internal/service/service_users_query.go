// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/cache"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type userQueryService struct {
	adapter adapter.UserServiceAdapter
	pages   *cache.Cache[models.UsersPage]
	users   *cache.Cache[models.User]

	group singleflight.Group

	logger *logger.Logger
}

// NewUserQueryService builds a [UserQueryService] reading through pages and
// users.
func NewUserQueryService(
	userAdapter adapter.UserServiceAdapter,
	pages *cache.Cache[models.UsersPage],
	users *cache.Cache[models.User],
	log *logger.Logger,
) UserQueryService {
	return &userQueryService{
		adapter: userAdapter,
		pages:   pages,
		users:   users,
		logger:  log,
	}
}

func (s *userQueryService) ListUsers(ctx context.Context, params models.PageParams) (models.UsersPage, error) {
	if params.Page < 1 || params.Limit < 1 {
		return models.UsersPage{}, ErrInvalidPageParams
	}

	key := UsersListKey(params)
	if page, ok := s.pages.GetFresh(key); ok {
		return page, nil
	}

	ch := s.group.DoChan(key, func() (any, error) {
		return s.fetchPage(context.WithoutCancel(ctx), key, params)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return models.UsersPage{}, res.Err
		}
		return res.Val.(models.UsersPage).Clone(), nil
	case <-ctx.Done():
		return models.UsersPage{}, ctx.Err()
	}
}

func (s *userQueryService) fetchPage(ctx context.Context, key string, params models.PageParams) (models.UsersPage, error) {
	generation := s.pages.BeginFetch(key)

	page, err := s.adapter.ListUsers(ctx, params)
	if err != nil {
		s.pages.FailFetch(key, generation, err)
		s.logger.Err(err).Str("func", "*userQueryService.fetchPage").Str("key", key).Msg("error fetching users page")
		return models.UsersPage{}, mapAdapterError("load", err)
	}

	if !s.pages.CompleteFetch(key, generation, page) {
		// a mutation began while the read was in flight; its value wins
		if current, ok := s.pages.Get(key); ok {
			return current, nil
		}
	}

	return page, nil
}

func (s *userQueryService) Peek(params models.PageParams) (models.UsersPage, bool, bool) {
	key := UsersListKey(params)

	page, ok := s.pages.Get(key)
	if !ok {
		return models.UsersPage{}, true, false
	}

	stale := true
	if state, found := s.pages.State(key); found {
		stale = state.Stale
	}
	return page, stale, true
}

func (s *userQueryService) GetUser(ctx context.Context, id int64) (models.User, error) {
	key := UserKey(id)
	if u, ok := s.users.GetFresh(key); ok {
		return u, nil
	}

	// temporary records exist only in cached pages until the server confirms them
	if id < 0 {
		if u, ok := s.findInPages(id); ok {
			return u, nil
		}
		return models.User{}, &Fault{Kind: FaultNotFound, Op: "load", Err: adapter.ErrNotFound}
	}

	ch := s.group.DoChan(key, func() (any, error) {
		return s.fetchUser(context.WithoutCancel(ctx), key, id)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return models.User{}, res.Err
		}
		return res.Val.(models.User).Clone(), nil
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	}
}

func (s *userQueryService) fetchUser(ctx context.Context, key string, id int64) (models.User, error) {
	generation := s.users.BeginFetch(key)

	u, err := s.adapter.GetUser(ctx, id)
	if err != nil {
		s.users.FailFetch(key, generation, err)
		s.logger.Err(err).Str("func", "*userQueryService.fetchUser").Int64("id", id).Msg("error fetching user")
		return models.User{}, mapAdapterError("load", err)
	}

	if !s.users.CompleteFetch(key, generation, u) {
		if current, ok := s.users.Get(key); ok {
			return current, nil
		}
	}

	return u, nil
}

func (s *userQueryService) findInPages(id int64) (models.User, bool) {
	for _, key := range s.pages.Keys() {
		if !strings.HasPrefix(key, UsersPrefix) {
			continue
		}
		page, ok := s.pages.Get(key)
		if !ok {
			continue
		}
		if u, found := page.Find(id); found {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *userQueryService) CancelPendingReads(params models.PageParams) {
	s.pages.CancelFetch(UsersListKey(params))
}

func (s *userQueryService) Refresh(ctx context.Context) {
	pages := s.pages.InvalidatePrefix(UsersPrefix)
	users := s.users.InvalidatePrefix(UserPrefix)

	s.logger.Debug().Str("func", "*userQueryService.Refresh").
		Int("pages", len(pages)).
		Int("users", len(users)).
		Msg("cached reads marked stale")
}
