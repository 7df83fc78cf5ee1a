// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

const statusClearAfter = 2 * time.Second

// ProfileModel shows the caller's account and lets them edit it, copy the
// email to the clipboard, or delete the account after a confirmation prompt.
type ProfileModel struct {
	ctx     context.Context
	profile service.ProfileService

	snap session.Snapshot

	editing    bool
	inputs     []textinput.Model
	focus      int
	saving     bool
	confirming bool

	status string
	errMsg string
	pal    palette
}

func NewProfileModel(ctx context.Context, profile service.ProfileService, snap session.Snapshot, theme models.Theme) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		profile: profile,
		snap:    snap,
		pal:     paletteFor(theme),
	}
}

// Init implements [tea.Model]. Refreshes the profile from the server so the
// page never shows a stale cached snapshot.
func (m *ProfileModel) Init() tea.Cmd {
	m.editing = false
	m.confirming = false
	m.errMsg = ""
	return m.cmdRefresh()
}

// Update implements [tea.Model].
func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		wasSaving := m.saving
		m.saving = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.errMsg = ""
		if wasSaving {
			m.editing = false
			m.status = "saved"
			return m, clearStatusAfter()
		}
		return m, nil

	case accountDeletedMsg:
		m.confirming = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		// On success the session store signs out and the router takes over.
		return m, nil

	case copiedMsg:
		m.status = "email copied"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case SessionChanged:
		m.snap = msg.Snap
		return m, nil

	case themeChangedMsg:
		m.pal = paletteFor(msg.theme)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			return m, m.cmdDeleteAccount()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirming = false
		}
		return m, nil
	}

	if m.editing {
		return m.updateEdit(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.startEdit()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyEmail()
	case key.Matches(keyMsg, keys.delete):
		m.confirming = true
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	}

	return m, nil
}

func (m *ProfileModel) startEdit() {
	labels := []string{"first name", "last name", "email", "new password"}
	values := []string{m.snap.User.FirstName, m.snap.User.LastName, m.snap.User.Email, ""}

	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 64
		in.Width = 40
		in.SetValue(values[i])
		if label == "new password" {
			in.CharLimit = 256
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.editing = true
	m.errMsg = ""
}

func (m *ProfileModel) updateEdit(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "tab", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "shift+tab", "up":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "enter":
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave(m.buildPatch())
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

// buildPatch translates the edit form into a partial update: only the fields
// that differ from the current snapshot are sent.
func (m *ProfileModel) buildPatch() models.UserPatch {
	var patch models.UserPatch

	if v := strings.TrimSpace(m.inputs[0].Value()); v != m.snap.User.FirstName {
		patch.FirstName = &v
	}
	if v := strings.TrimSpace(m.inputs[1].Value()); v != m.snap.User.LastName {
		patch.LastName = &v
	}
	if v := strings.TrimSpace(m.inputs[2].Value()); v != m.snap.User.Email {
		patch.Email = &v
	}
	if v := m.inputs[3].Value(); v != "" {
		patch.Password = &v
	}

	return patch
}

// View implements [tea.Model].
func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.editing {
		labels := []string{"First name ", "Last name  ", "Email      ", "Password   "}
		for i, in := range m.inputs {
			b.WriteString(labels[i])
			b.WriteString("│ [")
			b.WriteString(in.View())
			b.WriteString("]\n")
		}
		if m.saving {
			b.WriteString("\n[Saving...]\n")
		} else {
			b.WriteString("\n[Save]\n")
		}
	} else {
		u := m.snap.User
		b.WriteString(fmt.Sprintf("Name   │ %s\n", u.FullName()))
		b.WriteString(fmt.Sprintf("Email  │ %s\n", u.Email))
		b.WriteString(fmt.Sprintf("Role   │ %s\n", u.Role))
		b.WriteString(fmt.Sprintf("Points │ %s\n", m.pal.badge.Render(fmt.Sprintf("%d", u.TotalPoints))))
		if u.CurrentCompetition != nil {
			b.WriteString(fmt.Sprintf("Competition │ %s\n", u.CurrentCompetition))
		} else {
			b.WriteString("Competition │ -\n")
		}
	}

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(m.pal.errText.Render("Delete this account permanently? (y/n)"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.pal.accent.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.pal.errText.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "e: edit │ c: copy email │ d: delete account │ r: refresh │ esc: home"
	if m.editing {
		hotKeys = "enter: save │ tab: next field │ esc: cancel"
	}

	return renderPage(m.pal.title.Render("PROFILE"), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		user, err := profile.Refresh(ctx)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdSave(patch models.UserPatch) tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		user, err := profile.Update(ctx, patch)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		return accountDeletedMsg{err: profile.DeleteAccount(ctx)}
	}
}

func (m *ProfileModel) cmdCopyEmail() tea.Cmd {
	email := m.snap.User.Email

	return func() tea.Msg {
		if err := clipboard.WriteAll(email); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
