// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote user service.
//
// The primary abstraction is [UserServiceAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUserServiceAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrNetwork] for timeouts).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_adapter_mock.go -package=mock

// UserServiceAdapter defines transport-agnostic communication with the
// remote user service. Implementations are responsible for serialisation,
// the request timeout, and mapping transport-level errors to the sentinel
// values defined in this package.
type UserServiceAdapter interface {
	// ListUsers fetches one page of users. The returned Total is the count the
	// server reported for the whole collection, or the number of returned
	// items when the server did not report one.
	ListUsers(ctx context.Context, params models.PageParams) (models.UsersPage, error)

	// GetUser fetches a single user. Returns [ErrNotFound] (wrapped) when the
	// server has no such record.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser sends a new user and returns the record as stored by the
	// server, including its server-assigned id.
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)

	// UpdateUser replaces the fields of user id and returns the updated
	// record as reported by the server.
	UpdateUser(ctx context.Context, id int64, input models.UserInput) (models.User, error)

	// DeleteUser removes user id. No response body is required.
	DeleteUser(ctx context.Context, id int64) error
}
