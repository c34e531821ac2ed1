// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ActionKind names the mutation an activity entry describes.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Label returns the past-tense form shown next to an entry.
func (a ActionKind) Label() string {
	switch a {
	case ActionAdd:
		return "Added"
	case ActionEdit:
		return "Edited"
	case ActionDelete:
		return "Deleted"
	default:
		return string(a)
	}
}

// Verb returns the verb used in entry messages.
func (a ActionKind) Verb() string {
	switch a {
	case ActionAdd:
		return "added"
	case ActionEdit:
		return "updated"
	case ActionDelete:
		return "deleted"
	default:
		return string(a)
	}
}

// ActivityMessage formats the human-readable message of an entry.
func ActivityMessage(action ActionKind, userName string) string {
	return fmt.Sprintf("User %q %s", userName, action.Verb())
}

// ActivityLogEntry records one successful mutation. Entries are immutable
// once created and are removed only by clearing the whole log.
type ActivityLogEntry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Action    ActionKind `json:"action"`
	UserName  string     `json:"userName"`
	Message   string     `json:"message"`
}

// RelativeTime renders the entry age the way the activity panel shows it.
func (e ActivityLogEntry) RelativeTime(now time.Time) string {
	diff := now.Sub(e.Timestamp)
	minutes := int(diff / time.Minute)

	if minutes < 1 {
		return "just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}

	return e.Timestamp.Local().Format("2006-01-02")
}
