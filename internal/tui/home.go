// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

// HomeModel is the signed-in landing page. It shows the points balance, the
// task calendar grouped by due day, and an inline input for the chat task
// assistant.
type HomeModel struct {
	ctx   context.Context
	tasks service.TaskService
	chat  service.ChatService

	snap        session.Snapshot
	calendar    models.Calendar
	unscheduled []models.Task
	loading     bool

	chatInput  textinput.Model
	chatActive bool
	chatBusy   bool
	chatReply  string

	errMsg string
	pal    palette
}

func NewHomeModel(ctx context.Context, tasks service.TaskService, chat service.ChatService, snap session.Snapshot, theme models.Theme) *HomeModel {
	chatInput := textinput.New()
	chatInput.Placeholder = "create a task 'review PR' for tomorrow"
	chatInput.CharLimit = 256
	chatInput.Width = 48

	return &HomeModel{
		ctx:       ctx,
		tasks:     tasks,
		chat:      chat,
		snap:      snap,
		chatInput: chatInput,
		pal:       paletteFor(theme),
	}
}

// Init implements [tea.Model]. Every visit reloads the calendar from the
// server; there is no local task cache to serve stale entries from.
func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadCalendar()
}

// Update implements [tea.Model].
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		m.loading = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.calendar = msg.calendar
		m.unscheduled = msg.unscheduled
		m.errMsg = ""
		return m, nil

	case chatReplyMsg:
		m.chatBusy = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.chatReply = msg.reply.Reply
		m.errMsg = ""
		if msg.reply.TaskCreated != nil {
			// The assistant just created a task; refresh the calendar so it
			// shows up immediately.
			m.loading = true
			return m, m.cmdLoadCalendar()
		}
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

	if m.chatActive {
		return m.updateChat(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadCalendar()
	case key.Matches(keyMsg, keys.chat):
		m.chatActive = true
		m.chatReply = ""
		return m, m.chatInput.Focus()
	}

	switch keyMsg.String() {
	case "p":
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case "b":
		return m, func() tea.Msg { return NavigateTo{Page: pageLeaderboards} }
	case "m":
		return m, func() tea.Msg { return NavigateTo{Page: pageManager} }
	case "a":
		return m, func() tea.Msg { return NavigateTo{Page: pageAdmin} }
	}

	return m, nil
}

func (m *HomeModel) updateChat(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.chatActive = false
		m.chatInput.Blur()
		m.chatInput.SetValue("")
		return m, nil
	case "enter":
		if m.chatBusy {
			return m, nil
		}
		message := strings.TrimSpace(m.chatInput.Value())
		if message == "" {
			return m, nil
		}
		m.chatBusy = true
		m.chatActive = false
		m.chatInput.Blur()
		m.chatInput.SetValue("")
		return m, m.cmdSendChat(message)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(keyMsg)
	return m, cmd
}

// View implements [tea.Model].
func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s · %s · %s\n",
		m.snap.User.FullName(),
		m.snap.User.Role,
		m.pal.badge.Render(fmt.Sprintf("%d pts", m.snap.User.TotalPoints))))
	if m.snap.User.CurrentCompetition == nil {
		b.WriteString(m.pal.dimmed.Render("not enrolled in a competition"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading tasks...\n")
	case len(m.calendar) == 0 && len(m.unscheduled) == 0:
		b.WriteString(m.pal.dimmed.Render("No tasks yet. Press i and ask the assistant to create one."))
		b.WriteString("\n")
	default:
		for _, day := range m.calendar.Days() {
			b.WriteString(m.pal.accent.Render(day))
			b.WriteString("\n")
			for _, t := range m.calendar[day] {
				b.WriteString(m.renderTask(t))
			}
		}
		if len(m.unscheduled) > 0 {
			b.WriteString(m.pal.accent.Render("unscheduled"))
			b.WriteString("\n")
			for _, t := range m.unscheduled {
				b.WriteString(m.renderTask(t))
			}
		}
	}

	if m.chatActive {
		b.WriteString("\nAssistant │ [")
		b.WriteString(m.chatInput.View())
		b.WriteString("]\n")
	} else if m.chatBusy {
		b.WriteString("\nAssistant is thinking...\n")
	}
	if m.chatReply != "" {
		b.WriteString("\n")
		b.WriteString(m.pal.accent.Render("Assistant: "))
		b.WriteString(m.chatReply)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.pal.errText.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "i: assistant │ r: refresh │ p: profile │ b: leaderboards"
	if m.snap.User.Role.CanManage() {
		hotKeys += " │ m: manager"
	}
	if m.snap.User.Role.CanAdminister() {
		hotKeys += " │ a: admin"
	}
	hotKeys += " │ ctrl+l: sign out"

	return renderPage(m.pal.title.Render("GAMIDECK"), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) renderTask(t models.Task) string {
	mark := "[ ]"
	if t.Done() {
		mark = "[x]"
	}
	line := fmt.Sprintf("  %s %s (%d pts)\n", mark, fitText(t.Title, 44), t.EstimatedPoints)
	if t.Done() {
		return m.pal.dimmed.Render(strings.TrimRight(line, "\n")) + "\n"
	}
	return line
}

func (m *HomeModel) cmdLoadCalendar() tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks

	return func() tea.Msg {
		calendar, unscheduled, err := tasks.Calendar(ctx)
		return calendarLoadedMsg{calendar: calendar, unscheduled: unscheduled, err: err}
	}
}

func (m *HomeModel) cmdSendChat(message string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		reply, err := chat.Send(ctx, message, nil)
		return chatReplyMsg{reply: reply, err: err}
	}
}
