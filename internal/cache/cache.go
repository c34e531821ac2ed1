// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache implements the in-memory query cache of the dashboard.
//
// A [Cache] holds the last known good value of every query key together with
// its fetch status, a staleness flag and a generation counter. Reads that are
// in flight when a mutation begins are invalidated through the generation
// counter, so a late response can never overwrite an optimistic write.
//
// The optimistic write protocol lives in [Optimistic].
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

// Status is the fetch state of an entry.
type Status int

const (
	StatusIdle Status = iota
	StatusFetching
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusFetching:
		return "fetching"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// EntryState is a read-only view of an entry.
type EntryState struct {
	Status     Status
	HasValue   bool
	Stale      bool
	UpdatedAt  time.Time
	LastAccess time.Time
	Err        error
}

type entry[T any] struct {
	value    T
	hasValue bool

	status     Status
	stale      bool
	err        error
	updatedAt  time.Time
	lastAccess time.Time

	// generation is bumped whenever an in-flight fetch must be ignored.
	generation uint64
	// optimistic counts mutations that began and have not settled.
	optimistic int
}

// Cache is a keyed store of query results safe for concurrent use. Every
// single read or write is atomic; sequences of calls are not isolated.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]

	// generations is a cache-wide counter so that a removed and re-created
	// key never reuses a generation of an in-flight read.
	generations uint64

	clone     func(T) T
	staleTime time.Duration
	now       func() time.Time

	listenersMu sync.RWMutex
	listeners   map[int]func(key string)
	nextID      int

	logger *logger.Logger
}

// New creates an empty cache. clone must return a copy of a value that
// shares no mutable state with it; it is used for every value that enters or
// leaves the cache. A nil clone copies values by assignment. Entries older
// than staleTime are reported as not fresh; zero disables time-based
// staleness.
func New[T any](clone func(T) T, staleTime time.Duration, log *logger.Logger) *Cache[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Cache[T]{
		entries:   make(map[string]*entry[T]),
		clone:     clone,
		staleTime: staleTime,
		now:       time.Now,
		listeners: make(map[int]func(string)),
		logger:    log,
	}
}

// Get returns a copy of the value stored under key.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		var zero T
		return zero, false
	}
	e.lastAccess = c.now()
	return c.clone(e.value), true
}

// GetFresh returns the value under key only when it may be served without a
// refetch: it exists and either carries an unsettled optimistic write or was
// not invalidated and is younger than the stale time.
func (c *Cache[T]) GetFresh(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok || !e.hasValue || !c.isFresh(e) {
		return zero, false
	}
	e.lastAccess = c.now()
	return c.clone(e.value), true
}

func (c *Cache[T]) isFresh(e *entry[T]) bool {
	if e.optimistic > 0 {
		return true
	}
	if e.stale {
		return false
	}
	if c.staleTime > 0 && c.now().Sub(e.updatedAt) >= c.staleTime {
		return false
	}
	return true
}

// State reports the state of key. ok is false for unknown keys.
func (c *Cache[T]) State(key string) (EntryState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return EntryState{}, false
	}
	return EntryState{
		Status:     e.status,
		HasValue:   e.hasValue,
		Stale:      !c.isFresh(e),
		UpdatedAt:  e.updatedAt,
		LastAccess: e.lastAccess,
		Err:        e.err,
	}, true
}

// Set stores value under key as a settled, fresh result.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	e := c.entryLocked(key)
	c.storeLocked(e, value)
	c.mu.Unlock()

	c.notify(key)
}

// Remove deletes key.
func (c *Cache[T]) Remove(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if existed {
		c.notify(key)
	}
}

// Invalidate marks key stale so that the next read refetches it. The value
// is kept as last known good.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		e.stale = true
	}
	c.mu.Unlock()

	if ok {
		c.notify(key)
	}
}

// InvalidatePrefix marks every key starting with prefix stale and returns
// the affected keys.
func (c *Cache[T]) InvalidatePrefix(prefix string) []string {
	c.mu.Lock()
	keys := make([]string, 0)
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			e.stale = true
			keys = append(keys, key)
		}
	}
	c.mu.Unlock()

	for _, key := range keys {
		c.notify(key)
	}
	return keys
}

// BeginFetch records that a read of key started and returns the generation
// the result must be stored under.
func (c *Cache[T]) BeginFetch(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.status = StatusFetching
	e.err = nil
	return e.generation
}

// CompleteFetch stores the result of a read started with BeginFetch. It
// returns false and drops value when the read was cancelled in between or an
// optimistic write of key has not settled yet.
func (c *Cache[T]) CompleteFetch(key string, generation uint64, value T) bool {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.generation != generation || e.optimistic > 0 {
		c.mu.Unlock()
		c.logger.Debug().Str("key", key).Msg("discarding result of cancelled read")
		return false
	}
	c.storeLocked(e, value)
	c.mu.Unlock()

	c.notify(key)
	return true
}

// FailFetch records a failed read. The last known good value is kept.
func (c *Cache[T]) FailFetch(key string, generation uint64, err error) bool {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.generation != generation {
		c.mu.Unlock()
		return false
	}
	e.status = StatusError
	e.err = err
	c.mu.Unlock()

	c.notify(key)
	return true
}

// CancelFetch makes any read of key that is in flight unable to store its
// result. The entry keeps its current value.
func (c *Cache[T]) CancelFetch(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.cancelLocked(e)
	}
}

// Sweep removes entries that were not read for longer than maxIdle. Entries
// with a read in flight or an unsettled optimistic write are kept. It
// returns the number of removed entries.
func (c *Cache[T]) Sweep(maxIdle time.Duration) int {
	c.mu.Lock()
	now := c.now()
	removed := make([]string, 0)
	for key, e := range c.entries {
		if e.status == StatusFetching || e.optimistic > 0 {
			continue
		}
		last := e.lastAccess
		if e.updatedAt.After(last) {
			last = e.updatedAt
		}
		if now.Sub(last) > maxIdle {
			delete(c.entries, key)
			removed = append(removed, key)
		}
	}
	c.mu.Unlock()

	for _, key := range removed {
		c.notify(key)
	}
	return len(removed)
}

// Keys returns the keys currently held.
func (c *Cache[T]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the number of entries.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Subscribe registers fn to be called with the key of every entry whose
// value or state changed. fn runs on the goroutine that made the change and
// must not block. The returned function removes the subscription.
func (c *Cache[T]) Subscribe(fn func(key string)) (unsubscribe func()) {
	c.listenersMu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			delete(c.listeners, id)
			c.listenersMu.Unlock()
		})
	}
}

func (c *Cache[T]) notify(key string) {
	c.listenersMu.RLock()
	fns := make([]func(string), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.listenersMu.RUnlock()

	for _, fn := range fns {
		fn(key)
	}
}

func (c *Cache[T]) entryLocked(key string) *entry[T] {
	e, ok := c.entries[key]
	if !ok {
		c.generations++
		e = &entry[T]{status: StatusIdle, lastAccess: c.now(), generation: c.generations}
		c.entries[key] = e
	}
	return e
}

func (c *Cache[T]) storeLocked(e *entry[T], value T) {
	now := c.now()
	e.value = c.clone(value)
	e.hasValue = true
	e.status = StatusSuccess
	e.stale = false
	e.err = nil
	e.updatedAt = now
	e.lastAccess = now
}

func (c *Cache[T]) cancelLocked(e *entry[T]) {
	c.generations++
	e.generation = c.generations
	if e.status == StatusFetching {
		if e.hasValue {
			e.status = StatusSuccess
		} else {
			e.status = StatusIdle
		}
	}
}
