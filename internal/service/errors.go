// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageParams is returned for a page below 1 or a non-positive
	// limit.
	ErrInvalidPageParams = errors.New("invalid page params")

	// ErrNoDefaultUser is returned when the configured default user id is
	// not positive.
	ErrNoDefaultUser = errors.New("no default user configured")
)

// FaultKind classifies a failure of the remote user service.
type FaultKind int

const (
	FaultUnknown FaultKind = iota
	FaultNetwork
	FaultNotFound
	FaultValidation
	FaultServer
)

func (k FaultKind) String() string {
	switch k {
	case FaultNetwork:
		return "network"
	case FaultNotFound:
		return "not found"
	case FaultValidation:
		return "validation"
	case FaultServer:
		return "server"
	default:
		return "unknown"
	}
}

// Fault is a classified failure of a workflow, carrying a message that can
// be shown to the user as is. [errors.Is] sees the wrapped cause.
type Fault struct {
	Kind FaultKind
	// Op is the workflow that failed, e.g. "create" or "load".
	Op  string
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s user: %s fault: %v", f.Op, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Message returns a human-readable description of the fault.
func (f *Fault) Message() string {
	var reason string
	switch f.Kind {
	case FaultNetwork:
		reason = "the user service could not be reached, check the connection and try again"
	case FaultNotFound:
		reason = "the user no longer exists"
	case FaultValidation:
		reason = "the user service rejected the submitted data"
	case FaultServer:
		reason = "the user service failed to process the request"
	default:
		reason = "an unexpected error occurred"
	}
	return fmt.Sprintf("Failed to %s user: %s.", f.Op, reason)
}

// FaultMessage returns the user-facing message of err: the fault message
// when err carries a [Fault], err's text otherwise.
func FaultMessage(err error) string {
	if err == nil {
		return ""
	}
	var f *Fault
	if errors.As(err, &f) {
		return f.Message()
	}
	return err.Error()
}
