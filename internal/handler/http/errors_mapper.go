// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-dashboard/internal/fakeapi"
)

var errorStatusMap = map[error]int{
	ErrInvalidUserID:     http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidBody:       http.StatusBadRequest,

	fakeapi.ErrUserNotFound: http.StatusNotFound,
	fakeapi.ErrInvalidUser:  http.StatusUnprocessableEntity,
	fakeapi.ErrInvalidPage:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
