// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dashboard process runtime.
//
// It restores the persisted preferences, picks the logged-in user, starts
// the refresh job and the cache sweepers, and runs the terminal UI until the
// user quits.
package client
