// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package session holds the authenticated session for the lifetime of the
// process. The [Store] is the single owner of the bearer token and the cached
// user snapshot: it restores them from local storage at startup, pushes the
// token into the transport adapter, persists every change back, and notifies
// the UI through an OnChange callback. It is handed to consumers explicitly
// rather than living in a package-level variable.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/store"
	"github.com/pkazancev/gamideck/models"
)

// TokenCarrier receives the bearer token for outbound requests. Satisfied by
// [adapter.ServerAdapter].
type TokenCarrier interface {
	SetToken(token string)
}

// Snapshot is an immutable copy of the session state at one point in time.
type Snapshot struct {
	Token         string
	User          models.User
	Authenticated bool
}

// Store is the in-process session container. All methods are safe for
// concurrent use.
type Store struct {
	repo     store.SessionRepository
	carrier  TokenCarrier
	identity adapter.IdentityAPI
	logger   *logger.Logger

	mu            sync.RWMutex
	token         string
	user          models.User
	authenticated bool
	onChange      func(Snapshot)

	resyncMu     sync.Mutex
	resyncGen    uint64
	resyncCancel context.CancelFunc
	resyncToken  string
	wg           sync.WaitGroup
}

// NewStore constructs an empty, unauthenticated session store. Call [Store.Init]
// to restore a persisted session.
func NewStore(repo store.SessionRepository, carrier TokenCarrier, identity adapter.IdentityAPI, logger *logger.Logger) *Store {
	return &Store{
		repo:     repo,
		carrier:  carrier,
		identity: identity,
		logger:   logger,
	}
}

// SetOnChange registers the callback invoked after every state change. The
// callback receives a snapshot and runs outside the store's lock; it must not
// call back into mutating methods synchronously.
func (s *Store) SetOnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Token: s.token, User: s.user, Authenticated: s.authenticated}
}

// Init restores a persisted session. A stored token whose expiry claim has
// passed is discarded together with the user snapshot. A valid token is
// pushed into the transport adapter, the cached user becomes visible
// immediately, and a background resync refreshes it from the server.
//
// A missing session is not an error; the store simply stays unauthenticated.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.repo.LoadToken(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if claims, err := models.ParseTokenClaims(token); err != nil || claims.Expired(time.Now()) {
		s.logger.Info().Msg("discarding expired local session")
		return s.repo.Clear(ctx)
	}

	user, err := s.repo.LoadUser(ctx)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.authenticated = true
	s.mu.Unlock()

	s.carrier.SetToken(token)
	s.notify()
	s.Resync(ctx)

	return nil
}

// SetSession adopts a freshly issued token and user record, persists both,
// and pushes the token into the transport adapter. Adopting a token also
// kicks off a background resync so the cached user converges on the server
// record even when the sign-in response carried a partial one.
func (s *Store) SetSession(ctx context.Context, token string, user models.User) error {
	if err := s.repo.SaveToken(ctx, token); err != nil {
		return err
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.authenticated = true
	s.mu.Unlock()

	s.carrier.SetToken(token)
	s.notify()
	s.Resync(ctx)

	return nil
}

// UpdateUser shallow-merges patch into the cached user: non-zero fields of
// patch replace the stored values, zero fields are left untouched. The merged
// record is persisted and returned.
//
// Clearing a field to its zero value (e.g. withdrawing from a competition)
// cannot be expressed as a merge; use [Store.ReplaceUser] with the
// authoritative server record instead.
func (s *Store) UpdateUser(ctx context.Context, patch models.User) (models.User, error) {
	s.mu.Lock()
	merged := s.user
	if err := mergo.Merge(&merged, patch, mergo.WithOverride); err != nil {
		s.mu.Unlock()
		return models.User{}, err
	}
	s.user = merged
	s.mu.Unlock()

	if err := s.repo.SaveUser(ctx, merged); err != nil {
		return models.User{}, err
	}

	s.notify()
	return merged, nil
}

// ReplaceUser overwrites the cached user with the authoritative server
// record and persists it.
func (s *Store) ReplaceUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Logout drops the session everywhere: local storage, the transport adapter,
// and the in-memory state. Calling it while already signed out is a no-op.
// Any in-flight resync is cancelled.
func (s *Store) Logout(ctx context.Context) error {
	s.cancelResync()

	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.token = ""
	s.user = models.User{}
	s.authenticated = false
	s.mu.Unlock()

	s.carrier.SetToken("")

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}

	if wasAuthenticated {
		s.notify()
	}

	return nil
}

// Resync refreshes the cached user from the server in the background. At
// most one resync runs per token value: calling Resync again while a fetch
// for the same token is still in flight is a no-op, while a new token cancels
// the stale fetch and starts a fresh one.
//
// A 401 during resync means the token died server-side; the session is
// logged out so the UI can fall back to the sign-in page. Any other error is
// logged and the cached snapshot stays as-is.
func (s *Store) Resync(ctx context.Context) {
	snap := s.Snapshot()
	if !snap.Authenticated {
		return
	}

	s.resyncMu.Lock()
	if s.resyncCancel != nil && s.resyncToken == snap.Token {
		s.resyncMu.Unlock()
		return
	}
	if s.resyncCancel != nil {
		s.resyncCancel()
	}

	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.resyncGen++
	gen := s.resyncGen
	s.resyncCancel = cancel
	s.resyncToken = snap.Token
	s.wg.Add(1)
	s.resyncMu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()
		defer s.finishResync(gen)

		user, err := s.identity.Me(jobCtx)
		switch {
		case errors.Is(err, adapter.ErrSessionExpired):
			s.logger.Info().Msg("session rejected by server, logging out")
			// Logout cancels jobCtx via the resync slot, so detach first.
			_ = s.Logout(context.WithoutCancel(jobCtx))
		case err != nil:
			s.logger.Warn().Err(err).Msg("session resync failed, keeping cached user")
		default:
			if s.Snapshot().Token == snap.Token {
				_ = s.ReplaceUser(jobCtx, user)
			}
		}
	}()
}

// Wait blocks until any background resync has finished. Intended for
// shutdown and tests.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) cancelResync() {
	s.resyncMu.Lock()
	cancel := s.resyncCancel
	s.resyncCancel = nil
	s.resyncToken = ""
	s.resyncMu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// finishResync releases the in-flight slot, but only if it still belongs to
// this job (a newer resync may have replaced it already).
func (s *Store) finishResync(gen uint64) {
	s.resyncMu.Lock()
	if s.resyncGen == gen {
		s.resyncCancel = nil
		s.resyncToken = ""
	}
	s.resyncMu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	snap := Snapshot{Token: s.token, User: s.user, Authenticated: s.authenticated}
	s.mu.RUnlock()

	if fn != nil {
		fn(snap)
	}
}
