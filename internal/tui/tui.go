// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package tui renders the terminal UI. The [RootModel] routes between page
// models; every page talks to the backend through the service layer and
// reports results back to the program as messages.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/internal/store"
)

// TUI owns the Bubble Tea program and its wiring to the services and the
// session store.
type TUI struct {
	services *service.ClientServices
	session  *session.Store
	settings store.SettingsRepository
	logger   *logger.Logger
}

func NewTUI(services *service.ClientServices, sessionStore *session.Store, settings store.SettingsRepository, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		session:  sessionStore,
		settings: settings,
		logger:   logger,
	}
}

// Run builds every page, starts the program in the alternate screen, and
// blocks until the user quits or ctx is cancelled. Session store changes are
// forwarded into the program as [SessionChanged] messages so the router reacts
// to logins, resyncs, and expiry from any goroutine.
func (t *TUI) Run(ctx context.Context) error {
	theme, err := t.settings.LoadTheme(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Msg("falling back to the default theme")
	}

	snap := t.session.Snapshot()

	pages := map[string]tea.Model{
		pageLogin:        NewLoginModel(ctx, t.services.AuthService, theme),
		pageRegister:     NewRegisterModel(ctx, t.services.AuthService, theme),
		pageHome:         NewHomeModel(ctx, t.services.TaskService, t.services.ChatService, snap, theme),
		pageProfile:      NewProfileModel(ctx, t.services.ProfileService, snap, theme),
		pageLeaderboards: NewLeaderboardsModel(ctx, t.services.CompetitionService, theme),
		pageManager:      NewManagerModel(ctx, t.services.CompetitionService, t.services.ChatService, theme),
		pageAdmin:        NewAdminModel(ctx, t.services.AdminService, t.services.CatalogService, t.services.CompetitionService, theme),
	}

	startPage := pageLogin
	if snap.Authenticated {
		startPage = pageHome
	}

	root := NewRootModel(ctx, pages, startPage, t.services.AuthService, t.settings, snap, theme)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.session.SetOnChange(func(snap session.Snapshot) {
		program.Send(SessionChanged{Snap: snap})
	})
	defer t.session.SetOnChange(nil)

	final, err := program.Run()
	if err != nil {
		return err
	}

	if root, ok := final.(RootModel); ok && root.quitByUser {
		t.logger.Info().Msg("closed by the user")
	}
	return nil
}
