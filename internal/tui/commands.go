// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	statusTimeout = 3 * time.Second
	tickInterval  = 30 * time.Second
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func cmdListUsers(ctx context.Context, queries service.UserQueryService, params models.PageParams) tea.Cmd {
	return func() tea.Msg {
		page, err := queries.ListUsers(ctx, params)
		return pageLoadedMsg{params: params, page: page, err: err}
	}
}

func cmdGetUser(ctx context.Context, queries service.UserQueryService, id int64) tea.Cmd {
	return func() tea.Msg {
		user, err := queries.GetUser(ctx, id)
		return userLoadedMsg{id: id, user: user, err: err}
	}
}

// cmdAwaitMutation waits for a dispatched mutation. Leaving the program does
// not cancel the mutation itself.
func cmdAwaitMutation[T any](ctx context.Context, m *service.Mutation[T], action models.ActionKind, id int64, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.Wait(ctx)
		return mutationDoneMsg{action: action, id: id, name: name, err: err}
	}
}

func cmdToggleDarkMode(ctx context.Context, prefs service.PreferencesService) tea.Cmd {
	return func() tea.Msg {
		_, err := prefs.ToggleDarkMode(ctx)
		return preferencesSavedMsg{err: err}
	}
}

func cmdClearActivity(ctx context.Context, prefs service.PreferencesService) tea.Cmd {
	return func() tea.Msg {
		return preferencesSavedMsg{err: prefs.ClearActivity(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyToClipboard(text)}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func cmdTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
