// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/validators"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type memoryRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64

	validator validators.Validator
	logger    *logger.Logger
}

// NewMemoryRepository returns a repository holding copies of seed, ordered
// by id. New records get ids above the largest seeded one.
func NewMemoryRepository(seed []models.User, log *logger.Logger) UsersRepository {
	users := make([]models.User, 0, len(seed))
	var maxID int64
	for _, u := range seed {
		users = append(users, u.Clone())
		maxID = max(maxID, u.ID)
	}
	slices.SortFunc(users, func(a, b models.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return &memoryRepository{
		users:     users,
		nextID:    maxID + 1,
		validator: validators.NewUserValidator(),
		logger:    log,
	}
}

func (r *memoryRepository) List(ctx context.Context, params models.PageParams) ([]models.User, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if params.Page < 1 || params.Limit < 1 {
		return nil, 0, fmt.Errorf("%w: page=%d limit=%d", ErrInvalidPage, params.Page, params.Limit)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.users)
	start, end := pageWindow(params, total)

	page := make([]models.User, 0, end-start)
	for _, u := range r.users[start:end] {
		page = append(page, u.Clone())
	}
	return page, total, nil
}

// pageWindow returns the bounds of the requested page within total items.
// Page and Limit may be as large as an int holds.
func pageWindow(params models.PageParams, total int) (start, end int) {
	if params.Page-1 > total/params.Limit {
		return total, total
	}
	start = min((params.Page-1)*params.Limit, total)
	end = start + min(params.Limit, total-start)
	return start, end
}

func (r *memoryRepository) Get(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.indexOf(id)
	if !ok {
		return models.User{}, fmt.Errorf("%w: id=%d", ErrUserNotFound, id)
	}
	return r.users[i].Clone(), nil
}

func (r *memoryRepository) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if err := r.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user := input.ToUser(r.nextID)
	r.nextID++
	r.users = append(r.users, user)

	r.logger.Debug().Int64("id", user.ID).Msg("user created")
	return user.Clone(), nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if err := r.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return models.User{}, fmt.Errorf("%w: id=%d", ErrUserNotFound, id)
	}
	r.users[i] = input.MergeInto(r.users[i])

	r.logger.Debug().Int64("id", id).Msg("user updated")
	return r.users[i].Clone(), nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrUserNotFound, id)
	}
	r.users = slices.Delete(r.users, i, i+1)

	r.logger.Debug().Int64("id", id).Msg("user deleted")
	return nil
}

// indexOf must be called with mu held.
func (r *memoryRepository) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(r.users, id, func(u models.User, target int64) int {
		return cmp.Compare(u.ID, target)
	})
}
