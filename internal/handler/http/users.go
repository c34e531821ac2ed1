// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	totalCountHeader = "X-Total-Count"

	// defaultLimit applies when _page is given without _limit.
	defaultLimit = 10
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params, err := pageParamsFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	users, total, err := h.users.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set(totalCountHeader, strconv.Itoa(total))
	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users page")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if err := utils.ReadJSON(r, &input); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	user, err := h.users.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input models.UserInput
	if err = utils.ReadJSON(r, &input); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	user, err := h.users.Update(r.Context(), id, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.users.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	if _, err := utils.WriteJSON(w, user, status); err != nil {
		logger.FromRequest(r).Err(err).Int64("id", user.ID).Msg("error writing user")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteError(w, http.StatusText(status), status)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// pageParamsFromQuery reads _page and _limit. Without _page the whole
// collection is returned.
func pageParamsFromQuery(r *http.Request) (models.PageParams, error) {
	query := r.URL.Query()
	rawPage, rawLimit := query.Get("_page"), query.Get("_limit")

	params := models.PageParams{Page: 1, Limit: math.MaxInt32}
	if rawPage != "" {
		params.Limit = defaultLimit
	}

	var err error
	if rawPage != "" {
		if params.Page, err = positiveInt(rawPage); err != nil {
			return models.PageParams{}, fmt.Errorf("%w: _page: %w", ErrInvalidQueryParam, err)
		}
	}
	if rawLimit != "" {
		if params.Limit, err = positiveInt(rawLimit); err != nil {
			return models.PageParams{}, fmt.Errorf("%w: _limit: %w", ErrInvalidQueryParam, err)
		}
	}

	return params, nil
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}
