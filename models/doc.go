// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by every layer of the
// dashboard: remote user records, pages of them, activity log entries and
// the persisted preferences blob.
package models
