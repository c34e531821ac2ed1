// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(t theme) string {
	content := t.err.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return t.overlay.Render(content)
}
