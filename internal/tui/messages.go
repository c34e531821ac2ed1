// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-user-dashboard/models"
)

type pageLoadedMsg struct {
	params models.PageParams
	page   models.UsersPage
	err    error
}

type userLoadedMsg struct {
	id   int64
	user models.User
	err  error
}

// mutationDoneMsg reports the settlement of a dispatched mutation.
type mutationDoneMsg struct {
	action models.ActionKind
	id     int64
	name   string
	err    error
}

// pageChangedMsg is sent when a cached page changes outside the event loop.
type pageChangedMsg struct {
	key string
}

// preferencesChangedMsg signals a change. Update reads the current snapshot.
type preferencesChangedMsg struct{}

type preferencesSavedMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct {
	seq int
}

type tickMsg time.Time
