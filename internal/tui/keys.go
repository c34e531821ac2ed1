// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	prevPage      key.Binding
	nextPage      key.Binding
	goToPage      key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	submit        key.Binding
	quit          key.Binding
	search        key.Binding
	company       key.Binding
	sort          key.Binding
	newItem       key.Binding
	edit          key.Binding
	delete        key.Binding
	copy          key.Binding
	darkMode      key.Binding
	activity      key.Binding
	clearActivity key.Binding
	refresh       key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	prevPage:      key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage:      key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	goToPage:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab", "down")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:        key.NewBinding(key.WithKeys("ctrl+s")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:        key.NewBinding(key.WithKeys("/")),
	company:       key.NewBinding(key.WithKeys("f")),
	sort:          key.NewBinding(key.WithKeys("s")),
	newItem:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	copy:          key.NewBinding(key.WithKeys("c")),
	darkMode:      key.NewBinding(key.WithKeys("t")),
	activity:      key.NewBinding(key.WithKeys("a")),
	clearActivity: key.NewBinding(key.WithKeys("x")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n")),
}
