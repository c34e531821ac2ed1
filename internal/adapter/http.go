// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	usersPath = "/users"
	userPath  = "/users/{id}"

	totalCountHeader = "X-Total-Count"
)

type httpUserServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserServiceAdapter constructs an HTTP/REST implementation of
// [UserServiceAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPUserServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (UserServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, logger)

	return &httpUserServiceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers implements [UserServiceAdapter]. It issues
// GET /users?_page=P&_limit=L and reads the collection size from the
// X-Total-Count header, falling back to the number of returned items when
// the header is missing or not a number.
func (h *httpUserServiceAdapter) ListUsers(ctx context.Context, params models.PageParams) (models.UsersPage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("_page", strconv.Itoa(params.Page)).
		SetQueryParam("_limit", strconv.Itoa(params.Limit)).
		Get(usersPath)
	if err != nil {
		return models.UsersPage{}, mapTransportError("list users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsersPage{}, err
	}

	var items []models.User
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return models.UsersPage{}, fmt.Errorf("decode list users response: %w: %w", ErrDecode, err)
	}
	if items == nil {
		items = []models.User{}
	}

	total := len(items)
	if raw := resp.Header().Get(totalCountHeader); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 0 {
			total = n
		} else {
			h.logger.Warn().Str("header", raw).Msg("ignoring malformed total count header")
		}
	}

	return models.UsersPage{Items: items, Total: total}, nil
}

// GetUser implements [UserServiceAdapter] with GET /users/{id}.
func (h *httpUserServiceAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(userPath)
	if err != nil {
		return models.User{}, mapTransportError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser("get user", resp.Body())
}

// CreateUser implements [UserServiceAdapter] with POST /users.
func (h *httpUserServiceAdapter) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		Post(usersPath)
	if err != nil {
		return models.User{}, mapTransportError("create user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser("create user", resp.Body())
}

// UpdateUser implements [UserServiceAdapter] with PUT /users/{id}.
func (h *httpUserServiceAdapter) UpdateUser(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		Put(userPath)
	if err != nil {
		return models.User{}, mapTransportError("update user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser("update user", resp.Body())
}

// DeleteUser implements [UserServiceAdapter] with DELETE /users/{id}.
func (h *httpUserServiceAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(userPath)
	if err != nil {
		return mapTransportError("delete user", err)
	}

	return mapHTTPError(resp)
}

func decodeUser(op string, body []byte) (models.User, error) {
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w: %w", op, ErrDecode, err)
	}
	return user, nil
}
