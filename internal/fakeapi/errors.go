// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import "errors"

var (
	// ErrUserNotFound is returned when no record carries the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser is returned when a create or update payload misses a
	// required field.
	ErrInvalidUser = errors.New("invalid user")
	// ErrInvalidPage is returned for a non-positive page or limit.
	ErrInvalidPage = errors.New("invalid page")
)
