// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────────────────────────"

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to width runes and pads it, so table columns line up.
func fitText(v string, width int) string {
	r := []rune(v)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		if width <= 3 {
			return string(r[:width])
		}
		return string(r[:width-3]) + "..."
	}
	return v + strings.Repeat(" ", width-len(r))
}

func showingLine(from, to, total int) string {
	if to == 0 {
		return fmt.Sprintf("Showing 0 of %d", total)
	}
	return fmt.Sprintf("Showing %d to %d of %d", from, to, total)
}
