// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-dashboard/models"
)

// maxActivityRows bounds the panel height; the log itself is not truncated.
const maxActivityRows = 8

func activityView(t theme, entries []models.ActivityLogEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(t.header.Render("Recent activity"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(t.muted.Render("  No recent activity"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range entries {
		if i == maxActivityRows {
			fmt.Fprintf(&b, "  %s\n", t.muted.Render(fmt.Sprintf("... %d more", len(entries)-maxActivityRows)))
			break
		}
		fmt.Fprintf(&b, "  %-8s %s  %s\n", e.Action.Label(), e.Message, t.muted.Render(e.RelativeTime(now)))
	}
	b.WriteString(t.help.Render("  x clear"))
	b.WriteString("\n")
	return b.String()
}
