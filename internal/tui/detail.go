// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/models"
)

type detailModel struct {
	id      int64
	user    models.User
	loading bool
	err     error
}

func (m detailModel) View(t theme) string {
	var b strings.Builder

	if m.loading && m.user.ID == 0 {
		b.WriteString("Loading user...\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(t.err.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(t.help.Render("esc back"))
		return b.String()
	}

	u := m.user
	fmt.Fprintf(&b, "%s  %s\n", t.selected.Render("["+u.Initials()+"]"), t.title.Render(u.Name))
	if u.Username != "" {
		b.WriteString(t.muted.Render("@" + u.Username))
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	b.WriteString(t.header.Render("Contact"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Email:    %s\n", valueOrDash(u.Email))
	fmt.Fprintf(&b, "  Phone:    %s\n", valueOrDash(u.Phone))
	fmt.Fprintf(&b, "  Website:  %s\n", valueOrDash(u.Website))

	b.WriteString("\n")
	b.WriteString(t.header.Render("Company"))
	b.WriteString("\n")
	if u.Company == nil {
		b.WriteString("  -\n")
	} else {
		fmt.Fprintf(&b, "  Name:     %s\n", valueOrDash(u.Company.Name))
		if u.Company.CatchPhrase != "" {
			fmt.Fprintf(&b, "  %s\n", t.muted.Render("\""+u.Company.CatchPhrase+"\""))
		}
		if u.Company.BS != "" {
			fmt.Fprintf(&b, "  %s\n", t.muted.Render(u.Company.BS))
		}
	}

	b.WriteString("\n")
	b.WriteString(t.header.Render("Address"))
	b.WriteString("\n")
	if u.Address == nil {
		b.WriteString("  -\n")
	} else {
		street := u.Address.Street
		if u.Address.Suite != "" {
			street += ", " + u.Address.Suite
		}
		fmt.Fprintf(&b, "  %s\n", valueOrDash(street))
		fmt.Fprintf(&b, "  %s %s\n", u.Address.City, u.Address.Zipcode)
	}

	b.WriteString("\n")
	b.WriteString(t.help.Render("e edit  d delete  c copy email  esc back"))
	return b.String()
}
