// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/models"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FaultKind
	}{
		{"network", fmt.Errorf("list request: %w", adapter.ErrNetwork), FaultNetwork},
		{"deadline", context.DeadlineExceeded, FaultNetwork},
		{"not found", adapter.ErrNotFound, FaultNotFound},
		{"validation", adapter.ErrValidation, FaultValidation},
		{"server", adapter.ErrServer, FaultServer},
		{"unexpected status", adapter.ErrUnexpectedStatus, FaultServer},
		{"decode", adapter.ErrDecode, FaultServer},
		{"other", errors.New("boom"), FaultUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapAdapterError("create", tt.err)

			var fault *Fault
			require.ErrorAs(t, err, &fault)
			assert.Equal(t, tt.want, fault.Kind)
			assert.Equal(t, "create", fault.Op)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMapAdapterError_NilAndFault(t *testing.T) {
	assert.NoError(t, mapAdapterError("create", nil))

	original := &Fault{Kind: FaultNotFound, Op: "load", Err: adapter.ErrNotFound}
	assert.Same(t, original, mapAdapterError("delete", original))
}

func TestFault_Message(t *testing.T) {
	tests := []struct {
		fault *Fault
		want  string
	}{
		{&Fault{Kind: FaultNetwork, Op: "create"}, "Failed to create user: the user service could not be reached, check the connection and try again."},
		{&Fault{Kind: FaultNotFound, Op: "delete"}, "Failed to delete user: the user no longer exists."},
		{&Fault{Kind: FaultValidation, Op: "update"}, "Failed to update user: the user service rejected the submitted data."},
		{&Fault{Kind: FaultServer, Op: "load"}, "Failed to load user: the user service failed to process the request."},
		{&Fault{Kind: FaultUnknown, Op: "load"}, "Failed to load user: an unexpected error occurred."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.fault.Message())
	}
}

func TestFaultMessage(t *testing.T) {
	assert.Empty(t, FaultMessage(nil))
	assert.Equal(t, "plain", FaultMessage(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", &Fault{Kind: FaultNotFound, Op: "delete", Err: adapter.ErrNotFound})
	assert.Equal(t, "Failed to delete user: the user no longer exists.", FaultMessage(wrapped))
}

func TestFault_Error(t *testing.T) {
	f := &Fault{Kind: FaultServer, Op: "update", Err: adapter.ErrServer}
	assert.Equal(t, "update user: server fault: remote server error", f.Error())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "users/page=2/limit=3", UsersListKey(models.PageParams{Page: 2, Limit: 3}))
	assert.Equal(t, "user/17", UserKey(17))
}
