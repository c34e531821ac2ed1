// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	// UsersPrefix is shared by the keys of every cached page.
	UsersPrefix = "users/"
	// UserPrefix is shared by the keys of every cached single user.
	UserPrefix = "user/"
)

// UsersListKey is the cache key of one page of the user collection.
func UsersListKey(params models.PageParams) string {
	return fmt.Sprintf("%spage=%d/limit=%d", UsersPrefix, params.Page, params.Limit)
}

// UserKey is the cache key of a single user.
func UserKey(id int64) string {
	return fmt.Sprintf("%s%d", UserPrefix, id)
}
