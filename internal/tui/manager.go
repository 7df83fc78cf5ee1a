// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/models"
)

const competitionDateLayout = "2006-01-02"

// managerMode is the sub-screen the manager dashboard is showing.
type managerMode int

const (
	managerList managerMode = iota
	managerForm
	managerAssign
	managerConfirmDelete
)

// ManagerModel is the manager dashboard: competition CRUD and moving users in
// and out of competitions. Reachable by managers and admins.
type ManagerModel struct {
	ctx          context.Context
	competitions service.CompetitionService
	chat         service.ChatService

	mode    managerMode
	list    []models.Competition
	cursor  int
	loading bool

	// form state; editID distinguishes edit from create.
	inputs  []textinput.Model
	focus   int
	editing *models.Competition
	saving  bool

	// assign state.
	users      []models.User
	userCursor int

	// task box: the assistant command fanned out to every participant of the
	// selected competition.
	taskInput  textinput.Model
	taskActive bool
	taskBusy   bool

	// inline standings for the selected competition.
	standings    []models.LeaderboardEntry
	standingsFor uuid.UUID

	status string
	errMsg string
	pal    palette
}

func NewManagerModel(ctx context.Context, competitions service.CompetitionService, chat service.ChatService, theme models.Theme) *ManagerModel {
	taskInput := textinput.New()
	taskInput.Placeholder = "create a task 'prepare demo' for friday"
	taskInput.CharLimit = 256
	taskInput.Width = 48

	return &ManagerModel{
		ctx:          ctx,
		competitions: competitions,
		chat:         chat,
		taskInput:    taskInput,
		pal:          paletteFor(theme),
	}
}

// Init implements [tea.Model].
func (m *ManagerModel) Init() tea.Cmd {
	m.mode = managerList
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadCompetitions()
}

// Update implements [tea.Model].
func (m *ManagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case competitionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.list = msg.competitions
		m.errMsg = ""
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case competitionSavedMsg:
		m.saving = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.mode = managerList
		m.errMsg = ""
		m.status = "saved"
		m.loading = true
		return m, tea.Batch(m.cmdLoadCompetitions(), clearStatusAfter())

	case competitionDeletedMsg:
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.mode = managerList
		m.errMsg = ""
		m.status = "deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoadCompetitions(), clearStatusAfter())

	case usersLoadedMsg:
		if msg.err != nil {
			m.mode = managerList
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.users = msg.users
		m.userCursor = 0
		m.errMsg = ""
		return m, nil

	case userSavedMsg:
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		for i, u := range m.users {
			if u.ID == msg.user.ID {
				m.users[i] = msg.user
			}
		}
		m.errMsg = ""
		return m, nil

	case leaderboardLoadedMsg:
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		if selected, ok := m.selected(); ok && selected.ID == msg.competitionID {
			m.standings = msg.entries
			m.standingsFor = msg.competitionID
		}
		return m, nil

	case chatReplyMsg:
		m.taskBusy = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.errMsg = ""
		m.status = msg.reply.Reply
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case themeChangedMsg:
		m.pal = paletteFor(msg.theme)
		return m, nil

	case SessionChanged:
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case managerForm:
		return m.updateForm(keyMsg)
	case managerAssign:
		return m.updateAssign(keyMsg)
	case managerConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m *ManagerModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
			m.standings = nil
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.list)-1 {
			m.cursor++
			m.standings = nil
		}
	case keyMsg.String() == "s":
		if selected, ok := m.selected(); ok {
			return m, m.cmdLoadStandings(selected)
		}
	case key.Matches(keyMsg, keys.newItem):
		m.startForm(nil)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if selected, ok := m.selected(); ok {
			m.startForm(&selected)
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = managerConfirmDelete
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.selected(); ok {
			m.mode = managerAssign
			m.users = nil
			return m, m.cmdLoadUsers()
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadCompetitions()
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	}
	return m, nil
}

func (m *ManagerModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if selected, ok := m.selected(); ok {
			return m, m.cmdDelete(selected)
		}
		m.mode = managerList
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = managerList
	}
	return m, nil
}

func (m *ManagerModel) updateAssign(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.taskActive {
		return m.updateTaskBox(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.chat):
		m.taskActive = true
		return m, m.taskInput.Focus()
	case key.Matches(keyMsg, keys.up):
		if m.userCursor > 0 {
			m.userCursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.userCursor < len(m.users)-1 {
			m.userCursor++
		}
	case key.Matches(keyMsg, keys.enter):
		selected, ok := m.selected()
		if !ok || m.userCursor >= len(m.users) {
			return m, nil
		}
		user := m.users[m.userCursor]
		if user.CurrentCompetition != nil && *user.CurrentCompetition == selected.ID {
			// Already enrolled here; enter withdraws.
			return m, m.cmdAssign(user, nil)
		}
		id := selected.ID
		return m, m.cmdAssign(user, &id)
	case key.Matches(keyMsg, keys.esc):
		m.mode = managerList
	}
	return m, nil
}

func (m *ManagerModel) updateTaskBox(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.taskActive = false
		m.taskInput.Blur()
		m.taskInput.SetValue("")
		return m, nil
	case "enter":
		if m.taskBusy {
			return m, nil
		}
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		message := strings.TrimSpace(m.taskInput.Value())
		if message == "" {
			return m, nil
		}
		targets := m.participantIDs(selected)
		if len(targets) == 0 {
			m.errMsg = "no participants enrolled in this competition"
			return m, nil
		}
		m.taskBusy = true
		m.taskActive = false
		m.taskInput.Blur()
		m.taskInput.SetValue("")
		m.errMsg = ""
		return m, m.cmdSendTask(message, targets)
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(keyMsg)
	return m, cmd
}

// participantIDs collects the users currently enrolled in c; the assistant
// command fans out to exactly these accounts.
func (m *ManagerModel) participantIDs(c models.Competition) []uuid.UUID {
	var ids []uuid.UUID
	for _, u := range m.users {
		if u.CurrentCompetition != nil && *u.CurrentCompetition == c.ID {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func (m *ManagerModel) startForm(c *models.Competition) {
	labels := []string{"name", "description", "start (2006-01-02)", "end (2006-01-02)"}
	values := []string{"", "", "", ""}
	if c != nil {
		values = []string{
			c.Name,
			c.Description,
			c.StartDate.Format(competitionDateLayout),
			c.EndDate.Format(competitionDateLayout),
		}
	}

	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 128
		in.Width = 40
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.editing = c
	m.mode = managerForm
	m.errMsg = ""
}

func (m *ManagerModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = managerList
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
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *ManagerModel) submitForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	description := strings.TrimSpace(m.inputs[1].Value())

	start, err := time.Parse(competitionDateLayout, strings.TrimSpace(m.inputs[2].Value()))
	if err != nil {
		m.errMsg = "start date must look like 2006-01-02"
		return m, nil
	}
	end, err := time.Parse(competitionDateLayout, strings.TrimSpace(m.inputs[3].Value()))
	if err != nil {
		m.errMsg = "end date must look like 2006-01-02"
		return m, nil
	}

	m.errMsg = ""
	m.saving = true

	if m.editing == nil {
		return m, m.cmdCreate(models.CompetitionSpec{
			Name:        name,
			Description: description,
			StartDate:   start,
			EndDate:     end,
		})
	}

	patch := models.CompetitionPatch{
		Name:        &name,
		Description: &description,
		StartDate:   &start,
		EndDate:     &end,
	}
	return m, m.cmdUpdate(*m.editing, patch)
}

func (m *ManagerModel) selected() (models.Competition, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return models.Competition{}, false
	}
	return m.list[m.cursor], true
}

// View implements [tea.Model].
func (m *ManagerModel) View() string {
	switch m.mode {
	case managerForm:
		return m.viewForm()
	case managerAssign:
		return m.viewAssign()
	default:
		return m.viewList()
	}
}

func (m *ManagerModel) viewList() string {
	var b strings.Builder
	now := time.Now()

	switch {
	case m.loading:
		b.WriteString("Loading competitions...\n")
	case len(m.list) == 0:
		b.WriteString(m.pal.dimmed.Render("No competitions yet. Press n to create one."))
		b.WriteString("\n")
	default:
		for i, c := range m.list {
			marker := "  "
			line := fmt.Sprintf("%-36s %s · %s → %s",
				fitText(c.Name, 36),
				c.StatusAt(now),
				c.StartDate.Format(competitionDateLayout),
				c.EndDate.Format(competitionDateLayout))
			if i == m.cursor {
				marker = "> "
				line = m.pal.selected.Render(line)
			}
			b.WriteString(marker)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if selected, ok := m.selected(); ok && len(m.standings) > 0 && m.standingsFor == selected.ID {
		b.WriteString("\n")
		b.WriteString(m.pal.accent.Render("standings"))
		b.WriteString("\n")
		for i, e := range m.standings {
			name := strings.TrimSpace(e.FirstName + " " + e.LastName)
			b.WriteString(fmt.Sprintf("%2d. %-30s %5d\n", i+1, fitText(name, 30), e.Score))
		}
	}

	if m.mode == managerConfirmDelete {
		if selected, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(m.pal.errText.Render(fmt.Sprintf("Delete %q? (y/n)", selected.Name)))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.statusAndError())

	return renderPage(m.pal.title.Render("MANAGER · COMPETITIONS"), strings.TrimRight(b.String(), "\n"),
		"enter: participants │ s: standings │ n: new │ e: edit │ d: delete │ r: refresh │ esc: home")
}

func (m *ManagerModel) viewForm() string {
	labels := []string{"Name        ", "Description ", "Start       ", "End         "}

	var b strings.Builder
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

	b.WriteString(m.statusAndError())

	title := "MANAGER · NEW COMPETITION"
	if m.editing != nil {
		title = "MANAGER · EDIT COMPETITION"
	}
	return renderPage(m.pal.title.Render(title), strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ esc: cancel")
}

func (m *ManagerModel) viewAssign() string {
	selected, _ := m.selected()

	var b strings.Builder
	b.WriteString(m.pal.accent.Render(selected.Name))
	b.WriteString("\n\n")

	if len(m.users) == 0 {
		b.WriteString(m.pal.dimmed.Render("no assignable users"))
		b.WriteString("\n")
	}
	for i, u := range m.users {
		marker := "  "
		enrolled := " "
		if u.CurrentCompetition != nil && *u.CurrentCompetition == selected.ID {
			enrolled = "x"
		}
		line := fmt.Sprintf("[%s] %-30s %d pts", enrolled, fitText(u.FullName(), 30), u.TotalPoints)
		if i == m.userCursor {
			marker = "> "
			line = m.pal.selected.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.taskActive {
		b.WriteString("\nTask for participants │ [")
		b.WriteString(m.taskInput.View())
		b.WriteString("]\n")
	} else if m.taskBusy {
		b.WriteString("\nSending task to participants...\n")
	}

	b.WriteString(m.statusAndError())

	return renderPage(m.pal.title.Render("MANAGER · PARTICIPANTS"), strings.TrimRight(b.String(), "\n"),
		"enter: assign/withdraw │ i: task for participants │ ↑/↓: select │ esc: back")
}

func (m *ManagerModel) statusAndError() string {
	var b strings.Builder
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
	return b.String()
}

func (m *ManagerModel) cmdLoadCompetitions() tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		list, err := competitions.List(ctx)
		return competitionsLoadedMsg{competitions: list, err: err}
	}
}

func (m *ManagerModel) cmdLoadStandings(target models.Competition) tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		entries, err := competitions.Leaderboard(ctx, target.ID)
		return leaderboardLoadedMsg{competitionID: target.ID, entries: entries, err: err}
	}
}

func (m *ManagerModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		users, err := competitions.PlainUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m *ManagerModel) cmdCreate(spec models.CompetitionSpec) tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		c, err := competitions.Create(ctx, spec)
		return competitionSavedMsg{competition: c, err: err}
	}
}

func (m *ManagerModel) cmdUpdate(target models.Competition, patch models.CompetitionPatch) tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		c, err := competitions.Update(ctx, target.ID, patch)
		return competitionSavedMsg{competition: c, err: err}
	}
}

func (m *ManagerModel) cmdDelete(target models.Competition) tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		return competitionDeletedMsg{id: target.ID, err: competitions.Delete(ctx, target.ID)}
	}
}

func (m *ManagerModel) cmdSendTask(message string, targets []uuid.UUID) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		reply, err := chat.Send(ctx, message, targets)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *ManagerModel) cmdAssign(user models.User, competitionID *uuid.UUID) tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		updated, err := competitions.Assign(ctx, user.ID, competitionID)
		return userSavedMsg{user: updated, err: err}
	}
}
