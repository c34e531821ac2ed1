// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

// CacheSweeper drops cache entries nobody read for longer than maxIdle.
type CacheSweeper struct {
	name    string
	cache   Sweeper
	maxIdle time.Duration

	logger *logger.Logger
}

// NewCacheSweeper builds a sweeper of cache. name labels log entries.
func NewCacheSweeper(name string, cache Sweeper, maxIdle time.Duration, log *logger.Logger) *CacheSweeper {
	return &CacheSweeper{name: name, cache: cache, maxIdle: maxIdle, logger: log}
}

// Run implements [Worker].
func (w *CacheSweeper) Run(ctx context.Context) {
	removed := w.cache.Sweep(w.maxIdle)
	if removed > 0 {
		w.logger.Debug().Str("cache", w.name).Int("removed", removed).Msg("cache swept")
	}
}
