// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
)

// mapAdapterError wraps an adapter error into a [Fault] of the workflow op.
func mapAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	var f *Fault
	if errors.As(err, &f) {
		return err
	}

	kind := FaultUnknown
	switch {
	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, context.DeadlineExceeded):
		kind = FaultNetwork
	case errors.Is(err, adapter.ErrNotFound):
		kind = FaultNotFound
	case errors.Is(err, adapter.ErrValidation):
		kind = FaultValidation
	case errors.Is(err, adapter.ErrServer),
		errors.Is(err, adapter.ErrUnexpectedStatus),
		errors.Is(err, adapter.ErrDecode):
		kind = FaultServer
	}

	return &Fault{Kind: kind, Op: op, Err: err}
}
