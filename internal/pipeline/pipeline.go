// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline holds the pure view transformations of the users table:
// search, company filter and email sort over the loaded page, plus the
// pagination controller.
package pipeline

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-dashboard/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCompanies disables the company filter.
const AllCompanies = "all"

// SortOrder is the direction of the email sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Desc {
		return Asc
	}
	return Desc
}

// Params are the UI parameters of the pipeline.
type Params struct {
	Search  string
	Company string
	Order   SortOrder
}

// collator is not safe for concurrent use.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

func compareEmails(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Apply filters items by name search and company, then sorts them by email.
// The input slice is never modified. Equal emails keep their input order in
// both directions. An empty Company behaves like [AllCompanies]; an unknown
// Order sorts ascending.
func Apply(items []models.User, p Params) []models.User {
	search := strings.ToLower(p.Search)

	out := make([]models.User, 0, len(items))
	for _, u := range items {
		if !matchesSearch(u, search) || !matchesCompany(u, p.Company) {
			continue
		}
		out = append(out, u)
	}

	desc := p.Order == Desc
	slices.SortStableFunc(out, func(a, b models.User) int {
		c := compareEmails(a.Email, b.Email)
		if desc {
			return -c
		}
		return c
	})

	return out
}

func matchesSearch(u models.User, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), lowered)
}

// A user without a company never matches a concrete company filter.
func matchesCompany(u models.User, company string) bool {
	if company == "" || company == AllCompanies {
		return true
	}
	return u.Company != nil && u.Company.Name == company
}

// Companies returns the distinct non-empty company names of items in
// lexicographic order.
func Companies(items []models.User) []string {
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, u := range items {
		name := u.CompanyName()
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
