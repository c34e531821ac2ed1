// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"errors"
	"sync"
)

// ErrAlreadySettled is returned when a finished optimistic write is used
// again.
var ErrAlreadySettled = errors.New("optimistic write already settled")

// Optimistic is one speculative write against a single key. It is created by
// [Cache.Begin] and walks through
//
//	Begin (cancel reads, snapshot) -> Apply -> Rollback on fault -> Settle
//
// Settle must always be called once the remote call returns. Rollback
// restores the snapshot verbatim, including the absence of a value.
//
// Snapshots are not isolated: a second Begin on the same key captures what
// the first write already applied, and each Rollback restores only its own
// snapshot.
type Optimistic[T any] struct {
	cache *Cache[T]
	key   string

	mu          sync.Mutex
	previous    T
	hadPrevious bool
	counted     bool
	applied     bool
	rolledBack  bool
	settled     bool
}

// Begin starts an optimistic write under key: in-flight reads of key are
// cancelled so they cannot overwrite the speculative value, and the current
// value is captured for rollback.
func (c *Cache[T]) Begin(key string) *Optimistic[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := &Optimistic[T]{cache: c, key: key}

	e, ok := c.entries[key]
	if !ok {
		return o
	}

	c.cancelLocked(e)
	e.optimistic++
	o.counted = true
	if e.hasValue {
		o.previous = c.clone(e.value)
		o.hadPrevious = true
	}
	return o
}

// Key returns the key the write targets.
func (o *Optimistic[T]) Key() string {
	return o.key
}

// Previous returns a copy of the snapshot taken by Begin. ok is false when
// the key held no value.
func (o *Optimistic[T]) Previous() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cache.clone(o.previous), o.hadPrevious
}

// Apply rewrites the cached value with fn. fn receives a copy of the current
// value and returns the speculative one. Nothing is written when the key
// holds no value; the result reports whether fn was applied.
func (o *Optimistic[T]) Apply(fn func(current T) T) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.settled || o.rolledBack {
		return false, ErrAlreadySettled
	}

	c := o.cache
	c.mu.Lock()
	e, ok := c.entries[o.key]
	if !ok || !e.hasValue {
		c.mu.Unlock()
		return false, nil
	}
	next := fn(c.clone(e.value))
	e.value = c.clone(next)
	e.lastAccess = c.now()
	c.mu.Unlock()

	o.applied = true
	c.notify(o.key)
	return true, nil
}

// Rollback overwrites the key with the snapshot taken by Begin, or removes
// it when there was no value. It is a no-op after Settle or a previous
// Rollback.
func (o *Optimistic[T]) Rollback() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.settled || o.rolledBack {
		return
	}
	o.rolledBack = true

	c := o.cache
	c.mu.Lock()
	if o.hadPrevious {
		e := c.entryLocked(o.key)
		e.value = c.clone(o.previous)
		e.hasValue = true
	} else if e, ok := c.entries[o.key]; ok {
		if e.optimistic > 1 || (e.optimistic == 1 && !o.counted) {
			var zero T
			e.value = zero
			e.hasValue = false
		} else {
			delete(c.entries, o.key)
		}
	}
	c.mu.Unlock()

	c.notify(o.key)
}

// Settle ends the write: the key and every key under the given prefixes are
// marked stale so that the next read refetches them.
func (o *Optimistic[T]) Settle(prefixes ...string) {
	o.mu.Lock()
	if o.settled {
		o.mu.Unlock()
		return
	}
	o.settled = true
	counted := o.counted
	o.mu.Unlock()

	c := o.cache
	c.mu.Lock()
	if e, ok := c.entries[o.key]; ok {
		if counted && e.optimistic > 0 {
			e.optimistic--
		}
		e.stale = true
	}
	c.mu.Unlock()
	c.notify(o.key)

	for _, prefix := range prefixes {
		c.InvalidatePrefix(prefix)
	}
}

// Applied reports whether Apply wrote a speculative value.
func (o *Optimistic[T]) Applied() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applied
}
