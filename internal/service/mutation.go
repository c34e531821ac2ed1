// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
)

// MutationState is the observable state of a dispatched mutation.
type MutationState int

const (
	MutationPending MutationState = iota
	MutationSuccess
	MutationFault
)

func (s MutationState) String() string {
	switch s {
	case MutationSuccess:
		return "success"
	case MutationFault:
		return "fault"
	default:
		return "pending"
	}
}

// Mutation is the handle of a dispatched mutation. It moves from pending to
// success or fault exactly once.
type Mutation[T any] struct {
	mu     sync.Mutex
	state  MutationState
	result T
	err    error
	done   chan struct{}
}

func newMutation[T any]() *Mutation[T] {
	return &Mutation[T]{done: make(chan struct{})}
}

func (m *Mutation[T]) finish(result T, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != MutationPending {
		return
	}
	if err != nil {
		m.state = MutationFault
		m.err = err
	} else {
		m.state = MutationSuccess
		m.result = result
	}
	close(m.done)
}

// State returns the current state.
func (m *Mutation[T]) State() MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Result returns the value the mutation produced. It is the zero value
// until the state is success.
func (m *Mutation[T]) Result() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Err returns the fault, or nil while pending or after success.
func (m *Mutation[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Done is closed when the mutation leaves the pending state.
func (m *Mutation[T]) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until the mutation finishes or ctx is done. Giving up on ctx
// does not cancel the mutation.
func (m *Mutation[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-m.done:
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.result, m.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
