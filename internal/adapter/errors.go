// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [UserServiceAdapter] implementations.
var (
	// ErrNetwork covers transport failures: refused connections, DNS errors,
	// and requests that exceeded the timeout.
	ErrNetwork = errors.New("network failure")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("user not found")
	// ErrValidation is returned when the server rejects the payload
	// (400 or 422).
	ErrValidation = errors.New("payload rejected by server")
	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("remote server error")
	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrDecode is returned when a 2xx body cannot be decoded.
	ErrDecode = errors.New("malformed response body")
)
