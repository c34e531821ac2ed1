// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs. A [Worker] is one unit
// of periodic work; [Scheduler] fires workers on cron specs and [Workers]
// runs a group of them in order.
package workers

import (
	"context"
	"time"
)

// Worker is implemented by every background job. Run performs one pass of
// the work and returns; scheduling is the caller's concern.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // do one pass
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper is a cache that can drop idle entries.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}
