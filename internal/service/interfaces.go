// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the dashboard's business workflows: cached reads of
// the remote user collection, optimistic mutations reconciled against the
// remote service, and the preferences state container.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-dashboard/models"
)

// UserQueryService serves reads of the remote user collection through the
// client-side cache.
type UserQueryService interface {
	// ListUsers returns one page of users. A fresh cached page is returned
	// without touching the network; otherwise the page is fetched, with
	// concurrent fetches of the same page collapsed into one call.
	ListUsers(ctx context.Context, params models.PageParams) (models.UsersPage, error)

	// Peek returns the cached page without fetching. ok is false when nothing
	// is cached for params. stale reports whether a refetch is due.
	Peek(params models.PageParams) (page models.UsersPage, stale bool, ok bool)

	// GetUser returns a single user, cached under its own key.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CancelPendingReads makes reads of the page that are in flight unable
	// to store their result. Writes are never cancelled.
	CancelPendingReads(params models.PageParams)

	// Refresh marks every cached page and user stale.
	Refresh(ctx context.Context)
}

// MutationService runs create, update and delete as optimistic workflows
// against the cached page selected by params.
//
// The Dispatch methods return immediately with a [Mutation] handle; the
// remote call is detached from the caller's context and finishes even when
// the caller goes away. The plain methods run the same workflow inline.
type MutationService interface {
	Create(ctx context.Context, params models.PageParams, input models.UserInput) (models.User, error)
	Update(ctx context.Context, params models.PageParams, id int64, input models.UserInput) (models.User, error)
	Delete(ctx context.Context, params models.PageParams, id int64) error

	DispatchCreate(ctx context.Context, params models.PageParams, input models.UserInput) *Mutation[models.User]
	DispatchUpdate(ctx context.Context, params models.PageParams, id int64, input models.UserInput) *Mutation[models.User]
	DispatchDelete(ctx context.Context, params models.PageParams, id int64) *Mutation[struct{}]

	// Wait blocks until every dispatched mutation has finished.
	Wait()
}

// PreferencesService is the process-wide state container for dark mode, the
// logged-in user and the activity log. Every change is persisted and
// announced to the subscribers of the changed slice.
type PreferencesService interface {
	// Load reads the persisted state. A missing blob leaves the defaults.
	Load(ctx context.Context) error

	// Snapshot returns a copy of the current state.
	Snapshot() models.Preferences

	ToggleDarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
	SetLoggedInUser(ctx context.Context, user *models.User) error

	// AddActivity prepends an entry to the activity log and returns it.
	AddActivity(ctx context.Context, action models.ActionKind, userName string) (models.ActivityLogEntry, error)

	// ClearActivity empties the activity log.
	ClearActivity(ctx context.Context) error

	// Subscribe calls fn with a copy of the state after every change of
	// slice. The returned function removes the subscription.
	Subscribe(slice Slice, fn func(models.Preferences)) (unsubscribe func())
}

// SessionService picks the identity shown in the header.
type SessionService interface {
	// EnsureLoggedInUser fetches and persists the default user when no
	// logged-in user is stored yet.
	EnsureLoggedInUser(ctx context.Context) (*models.User, error)
}

// AppInfoService exposes build information to the presentation layer.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RefreshJob periodically marks cached reads stale so that the visible page
// is refetched.
type RefreshJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first. A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}
