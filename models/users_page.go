// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UsersPage is one window of the remote users collection together with the
// total count the server reported at fetch time. Total may lag behind
// concurrent mutations until the next fetch.
type UsersPage struct {
	Items []User `json:"items"`
	Total int    `json:"total"`
}

// PageParams selects a window of the users collection. Page is 1-indexed.
type PageParams struct {
	Page  int `json:"_page"`
	Limit int `json:"_limit"`
}

// Clone returns a copy whose Items slice and nested records are not shared
// with the receiver.
func (p UsersPage) Clone() UsersPage {
	c := UsersPage{Total: p.Total}
	if p.Items != nil {
		c.Items = make([]User, len(p.Items))
		for i, u := range p.Items {
			c.Items[i] = u.Clone()
		}
	}
	return c
}

// IndexOf returns the position of the user with the given id, or -1.
func (p UsersPage) IndexOf(id int64) int {
	for i, u := range p.Items {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the user with the given id.
func (p UsersPage) Find(id int64) (User, bool) {
	if i := p.IndexOf(id); i >= 0 {
		return p.Items[i], true
	}
	return User{}, false
}
