// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

// UsersRepository is the users collection behind the HTTP handlers.
type UsersRepository interface {
	// List returns one page of users ordered by id and the collection size.
	List(ctx context.Context, params models.PageParams) ([]models.User, int, error)
	// Get returns the user with the given id or ErrUserNotFound.
	Get(ctx context.Context, id int64) (models.User, error)
	// Create stores a new user under the next free id.
	Create(ctx context.Context, input models.UserInput) (models.User, error)
	// Update overwrites the fields carried by input.
	Update(ctx context.Context, id int64, input models.UserInput) (models.User, error)
	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
}
