// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/internal/pipeline"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	colName    = 24
	colEmail   = 28
	colPhone   = 22
	colCompany = 20
)

func (m appModel) listView(t theme) string {
	var b strings.Builder

	b.WriteString(m.toolbarView(t))
	b.WriteString("\n\n")

	header := "  " + fitText("Name", colName) + " " + fitText("Email "+sortArrow(m.view.Order), colEmail) + " " +
		fitText("Phone", colPhone) + " " + fitText("Company", colCompany)
	b.WriteString(t.header.Render(header))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("  Loading...\n")
	case len(m.rows) == 0:
		b.WriteString(t.muted.Render("  No users found"))
		b.WriteString("\n")
	default:
		for i, u := range m.rows {
			b.WriteString(m.rowView(t, i, u))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	from, to := m.paginator.Range(len(m.page.Items))
	fmt.Fprintf(&b, "%s    Page %d of %d\n",
		showingLine(from, to, m.paginator.Total()), m.paginator.Page(), m.paginator.TotalPages())

	return b.String()
}

func (m appModel) rowView(t theme, i int, u models.User) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	name := u.Name
	if u.IsTemporary() {
		name += " (saving)"
	}

	line := cursor + fitText(name, colName) + " " + fitText(u.Email, colEmail) + " " +
		fitText(valueOrDash(u.Phone), colPhone) + " " + fitText(valueOrDash(u.CompanyName()), colCompany)
	if i == m.cursor {
		return t.selected.Render(line)
	}
	return line
}

func (m appModel) toolbarView(t theme) string {
	search := m.search.View()
	if !m.searching {
		search = "Search: " + valueOrDash(m.view.Search)
	}

	company := m.view.Company
	if company == "" || company == pipeline.AllCompanies {
		company = "All companies"
	}

	return fmt.Sprintf("%s    %s    %s",
		search,
		t.muted.Render("Company: ")+company,
		t.muted.Render("Sort: ")+"email "+string(m.view.Order))
}

func sortArrow(o pipeline.SortOrder) string {
	if o == pipeline.Desc {
		return "▼"
	}
	return "▲"
}
