// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPreferencesNotFound is returned by Load when no blob has been saved
	// under the requested name.
	ErrPreferencesNotFound = errors.New("preferences were not found")

	// ErrCorruptPreferences is returned when a stored blob cannot be decoded.
	ErrCorruptPreferences = errors.New("stored preferences are corrupt")

	// ErrPreferencesNotSaved is returned when an upsert completes without
	// touching any row.
	ErrPreferencesNotSaved = errors.New("preferences were not saved")

	// ErrUnsupportedBackend is returned by [NewStorages] for an unknown backend.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan preferences row")
)
