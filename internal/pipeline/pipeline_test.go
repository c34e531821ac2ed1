// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"testing"

	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(id int64, name, email, company string) models.User {
	u := models.User{ID: id, Name: name, Email: email}
	if company != "" {
		u.Company = &models.Company{Name: company}
	}
	return u
}

func ids(users []models.User) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

// ── search ───────────────────────────────────────────────────────────────────

func TestApply_SearchIsCaseInsensitiveSubstringOnName(t *testing.T) {
	items := []models.User{
		user(1, "Ann", "b@x.com", ""),
		user(2, "Bob", "a@x.com", ""),
	}

	got := Apply(items, Params{Search: "an", Company: AllCompanies, Order: Asc})

	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)

	got = Apply(items, Params{Search: "ANN", Company: AllCompanies, Order: Asc})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_SearchIgnoresEmail(t *testing.T) {
	items := []models.User{user(1, "Bob", "ann@x.com", "")}

	got := Apply(items, Params{Search: "ann", Company: AllCompanies})

	assert.Empty(t, got)
}

// ── company filter ───────────────────────────────────────────────────────────

func TestApply_CompanyFilter(t *testing.T) {
	items := []models.User{
		user(1, "Ann", "a@x.com", "Acme"),
		user(2, "Bob", "b@x.com", "Globex"),
		user(3, "Cid", "c@x.com", ""),
		user(4, "Dee", "d@x.com", "acme"),
	}

	assert.Equal(t, []int64{1}, ids(Apply(items, Params{Company: "Acme", Order: Asc})))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Apply(items, Params{Company: AllCompanies, Order: Asc})))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Apply(items, Params{Company: "", Order: Asc})))
	assert.Empty(t, Apply(items, Params{Company: "Initech", Order: Asc}))
}

func TestApply_PredicatesAreANDed(t *testing.T) {
	items := []models.User{
		user(1, "Ann Lee", "a@x.com", "Acme"),
		user(2, "Ann Ray", "b@x.com", "Globex"),
		user(3, "Bob", "c@x.com", "Acme"),
	}

	got := Apply(items, Params{Search: "ann", Company: "Acme", Order: Asc})

	assert.Equal(t, []int64{1}, ids(got))
}

// ── sort ─────────────────────────────────────────────────────────────────────

func TestApply_SortByEmail(t *testing.T) {
	items := []models.User{
		user(1, "A", "carol@x.com", ""),
		user(2, "B", "alice@x.com", ""),
		user(3, "C", "Bob@x.com", ""),
	}

	assert.Equal(t, []int64{2, 3, 1}, ids(Apply(items, Params{Order: Asc})))
	assert.Equal(t, []int64{1, 3, 2}, ids(Apply(items, Params{Order: Desc})))
}

func TestApply_UnknownOrderSortsAscending(t *testing.T) {
	items := []models.User{
		user(1, "A", "b@x.com", ""),
		user(2, "B", "a@x.com", ""),
	}

	assert.Equal(t, []int64{2, 1}, ids(Apply(items, Params{Order: "sideways"})))
}

func TestApply_SortIsStableInBothDirections(t *testing.T) {
	items := []models.User{
		user(1, "A", "same@x.com", ""),
		user(2, "B", "z@x.com", ""),
		user(3, "C", "same@x.com", ""),
		user(4, "D", "a@x.com", ""),
		user(5, "E", "same@x.com", ""),
	}

	assert.Equal(t, []int64{4, 1, 3, 5, 2}, ids(Apply(items, Params{Order: Asc})))
	assert.Equal(t, []int64{2, 1, 3, 5, 4}, ids(Apply(items, Params{Order: Desc})))
}

// ── purity ───────────────────────────────────────────────────────────────────

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []models.User{
		user(1, "A", "c@x.com", ""),
		user(2, "B", "a@x.com", ""),
		user(3, "C", "b@x.com", ""),
	}
	before := append([]models.User(nil), items...)

	_ = Apply(items, Params{Order: Asc})
	_ = Apply(items, Params{Order: Desc, Search: "a"})

	assert.Equal(t, before, items)
}

func TestApply_IsDeterministic(t *testing.T) {
	items := []models.User{
		user(1, "Ann", "c@x.com", "Acme"),
		user(2, "Andy", "a@x.com", "Acme"),
		user(3, "Dan", "a@x.com", "Globex"),
		user(4, "Anna", "b@x.com", ""),
	}
	params := []Params{
		{Search: "an", Company: AllCompanies, Order: Asc},
		{Search: "", Company: "Acme", Order: Desc},
		{Search: "AN", Company: "Globex", Order: Desc},
	}

	first := make([][]int64, len(params))
	for i, p := range params {
		first[i] = ids(Apply(items, p))
	}
	// call again in reverse order
	for i := len(params) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], ids(Apply(items, params[i])))
	}
}

func TestApply_EmptyAndNilInput(t *testing.T) {
	assert.Empty(t, Apply(nil, Params{Order: Asc}))
	assert.Empty(t, Apply([]models.User{}, Params{Search: "x"}))
}

// ── Companies ────────────────────────────────────────────────────────────────

func TestCompanies(t *testing.T) {
	items := []models.User{
		user(1, "A", "a@x.com", "Globex"),
		user(2, "B", "b@x.com", "Acme"),
		user(3, "C", "c@x.com", ""),
		user(4, "D", "d@x.com", "Globex"),
		{ID: 5, Company: &models.Company{}},
	}

	assert.Equal(t, []string{"Acme", "Globex"}, Companies(items))
	assert.Empty(t, Companies(nil))
}

// ── SortOrder ────────────────────────────────────────────────────────────────

func TestSortOrder_Toggle(t *testing.T) {
	assert.Equal(t, Desc, Asc.Toggle())
	assert.Equal(t, Asc, Desc.Toggle())
}
