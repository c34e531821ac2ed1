// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/cache"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type mutationService struct {
	adapter adapter.UserServiceAdapter
	pages   *cache.Cache[models.UsersPage]
	users   *cache.Cache[models.User]
	prefs   PreferencesService

	tempIDs  *utils.TempIDGenerator
	traceIDs *utils.UUIDGenerator

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewMutationService builds a [MutationService]. Successful mutations are
// recorded in the activity log of prefs.
func NewMutationService(
	userAdapter adapter.UserServiceAdapter,
	pages *cache.Cache[models.UsersPage],
	users *cache.Cache[models.User],
	prefs PreferencesService,
	log *logger.Logger,
) MutationService {
	return &mutationService{
		adapter:  userAdapter,
		pages:    pages,
		users:    users,
		prefs:    prefs,
		tempIDs:  utils.NewTempIDGenerator(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// finishFunc completes a workflow after its optimistic write was applied.
type finishFunc[T any] func() (T, error)

func (s *mutationService) Create(ctx context.Context, params models.PageParams, input models.UserInput) (models.User, error) {
	return s.startCreate(ctx, params, input)()
}

func (s *mutationService) Update(ctx context.Context, params models.PageParams, id int64, input models.UserInput) (models.User, error) {
	return s.startUpdate(ctx, params, id, input)()
}

func (s *mutationService) Delete(ctx context.Context, params models.PageParams, id int64) error {
	_, err := s.startDelete(ctx, params, id)()
	return err
}

func (s *mutationService) DispatchCreate(ctx context.Context, params models.PageParams, input models.UserInput) *Mutation[models.User] {
	return dispatch(s, s.startCreate(ctx, params, input))
}

func (s *mutationService) DispatchUpdate(ctx context.Context, params models.PageParams, id int64, input models.UserInput) *Mutation[models.User] {
	return dispatch(s, s.startUpdate(ctx, params, id, input))
}

func (s *mutationService) DispatchDelete(ctx context.Context, params models.PageParams, id int64) *Mutation[struct{}] {
	return dispatch(s, s.startDelete(ctx, params, id))
}

func (s *mutationService) Wait() {
	s.wg.Wait()
}

// dispatch runs finish in the background. The optimistic write has already
// been applied when dispatch is called.
func dispatch[T any](s *mutationService, finish finishFunc[T]) *Mutation[T] {
	m := newMutation[T]()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		m.finish(finish())
	}()

	return m
}

func (s *mutationService) startCreate(ctx context.Context, params models.PageParams, input models.UserInput) finishFunc[models.User] {
	ctx = s.remoteContext(ctx)
	log := s.workflowLogger(ctx, "create")
	key := UsersListKey(params)

	op := s.pages.Begin(key)

	var tempID int64
	applied, err := op.Apply(func(page models.UsersPage) models.UsersPage {
		tempID = s.tempIDs.Next(func(id int64) bool { return page.IndexOf(id) >= 0 })
		page.Items = append([]models.User{input.ToUser(tempID)}, page.Items...)
		page.Total++
		return page
	})
	if err != nil {
		log.Err(err).Msg("error applying optimistic create")
	}
	log.Debug().Bool("applied", applied).Int64("temp_id", tempID).Msg("optimistic create applied")

	return func() (models.User, error) {
		created, err := s.adapter.CreateUser(ctx, input)
		if err != nil {
			op.Rollback()
			op.Settle(UsersPrefix)
			log.Err(err).Msg("create failed, optimistic write rolled back")
			return models.User{}, mapAdapterError("create", err)
		}

		op.Settle(UsersPrefix)
		log.Info().Int64("id", created.ID).Msg("user created")

		s.recordActivity(ctx, models.ActionAdd, input.Name)
		return created, nil
	}
}

func (s *mutationService) startUpdate(ctx context.Context, params models.PageParams, id int64, input models.UserInput) finishFunc[models.User] {
	ctx = s.remoteContext(ctx)
	log := s.workflowLogger(ctx, "update").With().Int64("id", id).Logger()
	key := UsersListKey(params)

	op := s.pages.Begin(key)
	if _, err := op.Apply(func(page models.UsersPage) models.UsersPage {
		if i := page.IndexOf(id); i >= 0 {
			page.Items[i] = input.MergeInto(page.Items[i])
		}
		return page
	}); err != nil {
		log.Err(err).Msg("error applying optimistic update")
	}

	detail := s.users.Begin(UserKey(id))
	if _, err := detail.Apply(input.MergeInto); err != nil {
		log.Err(err).Msg("error applying optimistic update to user")
	}

	return func() (models.User, error) {
		updated, err := s.adapter.UpdateUser(ctx, id, input)
		if err != nil {
			op.Rollback()
			detail.Rollback()
			op.Settle(UsersPrefix)
			detail.Settle()
			log.Err(err).Msg("update failed, optimistic write rolled back")
			return models.User{}, mapAdapterError("update", err)
		}

		op.Settle(UsersPrefix)
		detail.Settle()
		log.Info().Msg("user updated")

		// the submitted name is recorded, not the one the server echoed
		s.recordActivity(ctx, models.ActionEdit, input.Name)
		return updated, nil
	}
}

func (s *mutationService) startDelete(ctx context.Context, params models.PageParams, id int64) finishFunc[struct{}] {
	ctx = s.remoteContext(ctx)
	log := s.workflowLogger(ctx, "delete").With().Int64("id", id).Logger()
	key := UsersListKey(params)

	name, known := s.cachedSubjectName(key, id)

	op := s.pages.Begin(key)
	if _, err := op.Apply(func(page models.UsersPage) models.UsersPage {
		if i := page.IndexOf(id); i >= 0 {
			page.Items = append(page.Items[:i:i], page.Items[i+1:]...)
			if page.Total > 0 {
				page.Total--
			}
		}
		return page
	}); err != nil {
		log.Err(err).Msg("error applying optimistic delete")
	}

	return func() (struct{}, error) {
		if !known {
			name = s.remoteSubjectName(ctx, id)
		}

		if err := s.adapter.DeleteUser(ctx, id); err != nil {
			op.Rollback()
			op.Settle(UsersPrefix)
			log.Err(err).Msg("delete failed, optimistic write rolled back")
			return struct{}{}, mapAdapterError("delete", err)
		}

		op.Settle(UsersPrefix)
		s.users.Remove(UserKey(id))
		log.Info().Msg("user deleted")

		s.recordActivity(ctx, models.ActionDelete, name)
		return struct{}{}, nil
	}
}

// cachedSubjectName resolves the name of user id before it is removed, from
// the cached page or the cached user.
func (s *mutationService) cachedSubjectName(key string, id int64) (string, bool) {
	if page, ok := s.pages.Get(key); ok {
		if u, found := page.Find(id); found {
			return u.Name, true
		}
	}
	if u, ok := s.users.Get(UserKey(id)); ok {
		return u.Name, true
	}
	return "", false
}

// remoteSubjectName asks the remote service for the name of user id. It runs
// before the delete call so the user still exists.
func (s *mutationService) remoteSubjectName(ctx context.Context, id int64) string {
	u, err := s.adapter.GetUser(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("could not resolve name of deleted user")
		return fmt.Sprintf("#%d", id)
	}
	return u.Name
}

func (s *mutationService) recordActivity(ctx context.Context, action models.ActionKind, userName string) {
	if s.prefs == nil {
		return
	}
	if _, err := s.prefs.AddActivity(ctx, action, userName); err != nil {
		s.logger.Err(err).Str("action", string(action)).Msg("error recording activity")
	}
}

// remoteContext detaches ctx from the caller's cancellation and tags it with
// a trace id. The transport timeout still bounds the remote call.
func (s *mutationService) remoteContext(ctx context.Context) context.Context {
	ctx = context.WithoutCancel(ctx)
	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, s.traceIDs.Generate())
	}
	return ctx
}

func (s *mutationService) workflowLogger(ctx context.Context, op string) *logger.Logger {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	return &logger.Logger{Logger: s.logger.With().Str("op", op).Str("trace_id", traceID).Logger()}
}
