// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidQueryParam is returned when _page or _limit is not a
	// positive integer.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidBody is returned when the request body is not a user JSON
	// object.
	ErrInvalidBody = errors.New("invalid request body")
)
