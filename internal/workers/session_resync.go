// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package workers

import (
	"context"
	"time"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
)

// DefaultResyncInterval is how often the cached profile is refreshed from the
// server while the client is running.
const DefaultResyncInterval = 5 * time.Minute

// sessionResyncer is the slice of [session.Store] the worker needs.
type sessionResyncer interface {
	Snapshot() session.Snapshot
	Resync(ctx context.Context)
}

// SessionResync periodically refreshes the cached user profile so points and
// competition membership earned elsewhere show up without a manual refresh.
// Ticks while signed out are skipped.
type SessionResync struct {
	session  sessionResyncer
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionResync(session sessionResyncer, interval time.Duration, logger *logger.Logger) *SessionResync {
	if interval <= 0 {
		interval = DefaultResyncInterval
	}
	return &SessionResync{session: session, interval: interval, logger: logger}
}

// Run implements [Worker].
func (w *SessionResync) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("session resync worker stopped")
				return
			case <-ticker.C:
				if !w.session.Snapshot().Authenticated {
					continue
				}
				w.session.Resync(ctx)
			}
		}
	}()
}
