// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package store implements the client-side persistence layer: a small
// SQLite-backed key/value table holding the authenticated session and UI
// settings between runs.
package store

import (
	"context"

	"github.com/pkazancev/gamideck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the authenticated session across restarts.
type SessionRepository interface {
	// SaveToken stores the bearer token.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored bearer token. Returns [ErrKeyNotFound]
	// when no session has been saved.
	LoadToken(ctx context.Context) (string, error)

	// SaveUser stores the user snapshot alongside the token.
	SaveUser(ctx context.Context, user models.User) error

	// LoadUser returns the stored user snapshot. Returns [ErrKeyNotFound]
	// when none has been saved.
	LoadUser(ctx context.Context) (models.User, error)

	// Clear removes both the token and the user snapshot. Clearing an
	// already empty session is not an error.
	Clear(ctx context.Context) error
}

// SettingsRepository persists UI preferences.
type SettingsRepository interface {
	// SaveTheme stores the active colour theme.
	SaveTheme(ctx context.Context, theme models.Theme) error

	// LoadTheme returns the stored theme, falling back to the light theme
	// when none has been saved yet.
	LoadTheme(ctx context.Context) (models.Theme, error)
}
