// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the styles of one colour scheme.
type theme struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	overlay  lipgloss.Style
	selected lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
	status   lipgloss.Style
}

var (
	lightTheme = theme{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("#111827")),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
		help:     lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b91c1c")),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
		header:   lipgloss.NewStyle().Bold(true).Underline(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
	}

	darkTheme = theme{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("#f9fafb")).Background(lipgloss.Color("#111827")),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93c5fd")),
		help:     lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fca5a5")),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4b5563")).Padding(1, 2),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93c5fd")),
		header:   lipgloss.NewStyle().Bold(true).Underline(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6ee7b7")),
	}
)

func themeFor(dark bool) theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}
