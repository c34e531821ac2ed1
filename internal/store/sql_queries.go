// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	appStoreTable = "app_store"

	columnName      = "name"
	columnBlob      = "blob"
	columnUpdatedAt = "updated_at"
)

// buildSelectPreferencesQuery selects the blob stored under name.
func buildSelectPreferencesQuery(format sq.PlaceholderFormat, name string) (string, []any, error) {
	return sq.Select(columnBlob).
		From(appStoreTable).
		Where(sq.Eq{columnName: name}).
		PlaceholderFormat(format).
		ToSql()
}

// buildUpsertPreferencesQuery inserts the blob or replaces the existing one.
// Both SQLite and PostgreSQL accept the ON CONFLICT form.
func buildUpsertPreferencesQuery(format sq.PlaceholderFormat, name, blob string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert(appStoreTable).
		Columns(columnName, columnBlob, columnUpdatedAt).
		Values(name, blob, updatedAt).
		Suffix("ON CONFLICT (" + columnName + ") DO UPDATE SET " +
			columnBlob + " = excluded." + columnBlob + ", " +
			columnUpdatedAt + " = excluded." + columnUpdatedAt).
		PlaceholderFormat(format).
		ToSql()
}
