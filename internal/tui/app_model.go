// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/internal/store"
	"github.com/pkazancev/gamideck/models"
)

// Page names used by [NavigateTo].
const (
	pageLogin        = "login"
	pageRegister     = "register"
	pageHome         = "home"
	pageProfile      = "profile"
	pageLeaderboards = "leaderboards"
	pageManager      = "manager"
	pageAdmin        = "admin"
)

// pagesForRole is the single place mapping a role to the pages it may open.
// Managers and admins share the manager dashboard; the admin panel is
// admin-only.
func pagesForRole(role models.Role) []string {
	pages := []string{pageHome, pageProfile, pageLeaderboards}
	if role.CanManage() {
		pages = append(pages, pageManager)
	}
	if role.CanAdminister() {
		pages = append(pages, pageAdmin)
	}
	return pages
}

// RootModel is the TUI router:
//  1. keeps the active page
//  2. handles global hotkeys (quit, logout, theme toggle)
//  3. gates NavigateTo messages through the role policy
//  4. forces navigation back to the sign-in page when the session dies
//  5. delegates everything else to the active page
type RootModel struct {
	ctx      context.Context
	pages    map[string]tea.Model
	current  tea.Model
	currName string

	auth     service.AuthService
	settings store.SettingsRepository

	snap       session.Snapshot
	theme      models.Theme
	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, auth service.AuthService, settings store.SettingsRepository, snap session.Snapshot, theme models.Theme) RootModel {
	return RootModel{
		ctx:      ctx,
		pages:    pages,
		current:  pages[startPage],
		currName: startPage,
		auth:     auth,
		settings: settings,
		snap:     snap,
		theme:    theme,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.logout):
			if r.snap.Authenticated {
				return r, r.cmdLogout()
			}
		case key.Matches(keyMsg, keys.theme):
			return r.toggleTheme()
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case SessionChanged:
		r.snap = msg.Snap
		// A dead session must never leave the user on a gated page.
		if !msg.Snap.Authenticated && r.currName != pageRegister {
			return r.navigate(NavigateTo{Page: pageLogin})
		}
		return r.broadcast(msg)

	case sessionExpiredMsg:
		// The backend rejected the token mid-action. Sign out; the resulting
		// SessionChanged forces navigation to the sign-in page.
		if r.snap.Authenticated {
			return r, r.cmdLogout()
		}
		return r, nil

	case AuthResult:
		if msg.Err == nil {
			// Adopt the snapshot before routing so the role gate sees the
			// fresh role.
			r.snap = session.Snapshot{User: msg.User, Authenticated: true}
			return r.navigate(NavigateTo{Page: pageHome})
		}

	case themeChangedMsg:
		r.theme = msg.theme
		return r.broadcast(msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("gamideck", "", "")
	}
	return r.current.View()
}

// navigate applies the role policy and switches pages. A request for a page
// the current role may not open is ignored.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	if !r.pageAllowed(nav.Page) {
		return r, nil
	}

	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.current = next
	r.currName = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
	}
	return r, r.current.Init()
}

func (r RootModel) pageAllowed(page string) bool {
	if !r.snap.Authenticated {
		return page == pageLogin || page == pageRegister
	}

	for _, allowed := range pagesForRole(r.snap.User.Role) {
		if page == allowed {
			return true
		}
	}
	return false
}

// broadcast hands msg to every page so each can refresh its cached state,
// then keeps the command of the active page only.
func (r RootModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var activeCmd tea.Cmd
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if name == r.currName {
			r.current = updated
			activeCmd = cmd
		}
	}
	return r, activeCmd
}

func (r RootModel) toggleTheme() (tea.Model, tea.Cmd) {
	next := r.theme.Toggle()
	ctx := r.ctx
	settings := r.settings
	return r, func() tea.Msg {
		_ = settings.SaveTheme(ctx, next)
		return themeChangedMsg{theme: next}
	}
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	return func() tea.Msg {
		// The session store notifies the program; SessionChanged drives the
		// navigation back to the sign-in page.
		_ = auth.Logout(ctx)
		return nil
	}
}
