// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	New(w1, w2, w3).Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic without any registered workers.
	New().Run(context.Background())
}

// fakeResyncer counts resync calls behind a lock so the ticker goroutine and
// the test can race safely.
type fakeResyncer struct {
	mu            sync.Mutex
	authenticated bool
	resyncs       int
}

func (f *fakeResyncer) Snapshot() session.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return session.Snapshot{Authenticated: f.authenticated}
}

func (f *fakeResyncer) Resync(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resyncs++
}

func (f *fakeResyncer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resyncs
}

func TestSessionResync_TicksWhileAuthenticated(t *testing.T) {
	fake := &fakeResyncer{authenticated: true}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewSessionResync(fake, 5*time.Millisecond, logger.Nop()).Run(ctx)

	assert.Eventually(t, func() bool {
		return fake.count() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestSessionResync_SkipsTicksWhileSignedOut(t *testing.T) {
	fake := &fakeResyncer{authenticated: false}
	ctx, cancel := context.WithCancel(context.Background())

	NewSessionResync(fake, time.Millisecond, logger.Nop()).Run(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()

	assert.Zero(t, fake.count())
}

func TestSessionResync_StopsOnCancel(t *testing.T) {
	fake := &fakeResyncer{authenticated: true}
	ctx, cancel := context.WithCancel(context.Background())

	NewSessionResync(fake, time.Millisecond, logger.Nop()).Run(ctx)

	assert.Eventually(t, func() bool {
		return fake.count() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(5 * time.Millisecond)

	settled := fake.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, fake.count())
}

func TestNewSessionResync_DefaultsInterval(t *testing.T) {
	w := NewSessionResync(&fakeResyncer{}, 0, logger.Nop())
	assert.Equal(t, DefaultResyncInterval, w.interval)
}
