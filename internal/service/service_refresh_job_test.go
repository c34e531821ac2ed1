// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRefresher counts Refresh calls.
type spyRefresher struct {
	calls atomic.Int64
}

func (s *spyRefresher) Refresh(context.Context) {
	s.calls.Add(1)
}

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{})
	require.NotNil(t, job)
}

func TestRefreshJob_Start_CallsRefresh(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh called %d times", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{})
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DefaultInterval(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestRefreshJob_Restart(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	before := spy.calls.Load()
	assert.Greater(t, before, int64(0))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), before)
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestRefreshJob_MarksCachedPagesStale(t *testing.T) {
	f := newFixture(t)
	f.pages.Set(UsersListKey(testParams), page(1, user(1, "A", "a")))

	job := NewRefreshJob(f.queries)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		_, stale, ok := f.queries.Peek(testParams)
		return ok && stale
	}, time.Second, 5*time.Millisecond)
}
