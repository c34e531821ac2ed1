// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Preferences is the persisted per-installation state. It is stored as a
// single named blob and rewritten on every change.
type Preferences struct {
	// DarkMode toggles the dark colour scheme of the UI.
	DarkMode bool `json:"darkMode"`

	// LoggedInUser is the identity shown in the header. Nil until the first
	// start picks the default user.
	LoggedInUser *User `json:"loggedInUser"`

	// ActivityLog holds entries newest-first.
	ActivityLog []ActivityLogEntry `json:"activityLog"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (p Preferences) Clone() Preferences {
	c := Preferences{DarkMode: p.DarkMode}
	if p.LoggedInUser != nil {
		u := p.LoggedInUser.Clone()
		c.LoggedInUser = &u
	}
	c.ActivityLog = make([]ActivityLogEntry, len(p.ActivityLog))
	copy(c.ActivityLog, p.ActivityLog)
	return c
}
