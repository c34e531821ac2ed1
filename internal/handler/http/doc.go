// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the fake users service.
//
// It exposes the JSONPlaceholder-compatible /users resource on top of a
// [fakeapi.UsersRepository]. Cross-cutting concerns such as CORS, request
// tracing, access logging and response compression are handled here before
// requests reach the repository.
package http
