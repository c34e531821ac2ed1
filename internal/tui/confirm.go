// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	id   int64
	name string
}

func (m confirmModel) View(t theme) string {
	content := "Delete user \"" + m.name + "\"?\n\n"
	content += "y yes    n no"
	return t.overlay.Render(content)
}
