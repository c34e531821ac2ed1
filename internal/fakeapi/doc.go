// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeapi holds the in-memory users collection served by cmd/fakeapi.
//
// The collection mimics the subset of the JSONPlaceholder users resource the
// dashboard talks to: 1-based pages, a total count reported separately from
// the page, server-assigned ids and partial-record updates. Unlike the public
// service, writes are kept for the lifetime of the process.
package fakeapi
