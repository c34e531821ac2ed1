// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered UUIDv7 strings. It is used for
// activity log entry ids, which must never repeat.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TempIDGenerator issues temporary ids for records created optimistically.
// Ids are the negated current Unix time in nanoseconds, so they never meet a
// server id (always positive), and are strictly decreasing across calls.
type TempIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTempIDGenerator() *TempIDGenerator {
	return &TempIDGenerator{now: time.Now}
}

// Next returns a temporary id that is not contained in taken.
func (g *TempIDGenerator) Next(taken func(id int64) bool) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := -g.now().UnixNano()
	if id >= g.last && g.last != 0 {
		id = g.last - 1
	}
	for taken != nil && taken(id) {
		id--
	}

	g.last = id
	return id
}
