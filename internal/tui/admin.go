// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/models"
)

// adminTab is one of the admin panel's sub-lists.
type adminTab int

const (
	tabUsers adminTab = iota
	tabRewardTypes
	tabTags
	tabStatuses
)

var adminTabTitles = [...]string{"users", "reward types", "tags", "statuses"}

// catalogItem is the common shape the three reference-data catalogs are
// rendered and edited through. Tags have no code.
type catalogItem struct {
	id   uuid.UUID
	code string
	name string
}

// adminMode is the interaction state within the current tab.
type adminMode int

const (
	adminList adminMode = iota
	adminForm
	adminGrant
	adminConfirmDelete
)

// AdminModel is the admin-only panel: account management (role changes,
// deletion), the reference-data catalogs, and manual reward grants.
type AdminModel struct {
	ctx          context.Context
	admin        service.AdminService
	catalog      service.CatalogService
	competitions service.CompetitionService

	tab     adminTab
	mode    adminMode
	loading bool

	users      []models.User
	userCursor int

	items      []catalogItem
	itemCursor int

	// shared form state for catalog edits and reward grants.
	inputs  []textinput.Model
	focus   int
	editing *catalogItem
	saving  bool

	status string
	errMsg string
	pal    palette
}

func NewAdminModel(ctx context.Context, admin service.AdminService, catalog service.CatalogService, competitions service.CompetitionService, theme models.Theme) *AdminModel {
	return &AdminModel{
		ctx:          ctx,
		admin:        admin,
		catalog:      catalog,
		competitions: competitions,
		pal:          paletteFor(theme),
	}
}

// Init implements [tea.Model].
func (m *AdminModel) Init() tea.Cmd {
	m.mode = adminList
	m.errMsg = ""
	return m.reloadTab()
}

// Update implements [tea.Model].
func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.users = msg.users
		m.errMsg = ""
		if m.userCursor >= len(m.users) {
			m.userCursor = 0
		}
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

	case userDeletedMsg:
		m.mode = adminList
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.errMsg = ""
		m.status = "user deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoadUsers(), clearStatusAfter())

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.items = msg.items
		m.errMsg = ""
		if m.itemCursor >= len(m.items) {
			m.itemCursor = 0
		}
		return m, nil

	case catalogSavedMsg:
		m.saving = false
		m.mode = adminList
		if msg.err != nil {
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.errMsg = ""
		m.status = "saved"
		return m, tea.Batch(m.reloadTab(), clearStatusAfter())

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
	case adminForm, adminGrant:
		return m.updateForm(keyMsg)
	case adminConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m *AdminModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.tab):
		m.tab = (m.tab + 1) % adminTab(len(adminTabTitles))
		return m, m.reloadTab()
	case key.Matches(keyMsg, keys.backtab):
		m.tab = (m.tab + adminTab(len(adminTabTitles)) - 1) % adminTab(len(adminTabTitles))
		return m, m.reloadTab()
	case key.Matches(keyMsg, keys.up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.moveCursor(1)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reloadTab()
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(keyMsg, keys.edit):
		if m.tab == tabUsers {
			if user, ok := m.selectedUser(); ok {
				// Cycle the role; the closed set makes this a three-step wheel.
				return m, m.cmdChangeRole(user, nextRole(user.Role))
			}
			return m, nil
		}
		if item, ok := m.selectedItem(); ok {
			m.startCatalogForm(&item)
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.newItem):
		if m.tab == tabUsers {
			return m, nil
		}
		m.startCatalogForm(nil)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if m.tab == tabUsers {
			if _, ok := m.selectedUser(); ok {
				m.mode = adminConfirmDelete
			}
			return m, nil
		}
		if _, ok := m.selectedItem(); ok {
			m.mode = adminConfirmDelete
		}
	case keyMsg.String() == "g":
		if m.tab == tabUsers {
			if _, ok := m.selectedUser(); ok {
				m.startGrantForm()
				return m, textinput.Blink
			}
		}
	}
	return m, nil
}

func (m *AdminModel) moveCursor(delta int) {
	if m.tab == tabUsers {
		next := m.userCursor + delta
		if next >= 0 && next < len(m.users) {
			m.userCursor = next
		}
		return
	}
	next := m.itemCursor + delta
	if next >= 0 && next < len(m.items) {
		m.itemCursor = next
	}
}

func (m *AdminModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.tab == tabUsers {
			if user, ok := m.selectedUser(); ok {
				return m, m.cmdDeleteUser(user)
			}
		} else if item, ok := m.selectedItem(); ok {
			return m, m.cmdDeleteItem(item)
		}
		m.mode = adminList
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = adminList
	}
	return m, nil
}

func (m *AdminModel) startCatalogForm(item *catalogItem) {
	labels := []string{"code", "name"}
	values := []string{"", ""}
	if m.tab == tabTags {
		labels = []string{"name"}
		values = []string{""}
	}
	if item != nil {
		if m.tab == tabTags {
			values = []string{item.name}
		} else {
			values = []string{item.code, item.name}
		}
	}

	m.buildInputs(labels, values)
	m.editing = item
	m.mode = adminForm
	m.errMsg = ""
}

func (m *AdminModel) startGrantForm() {
	m.buildInputs([]string{"reward type code", "points", "reason"}, []string{"", "", ""})
	m.editing = nil
	m.mode = adminGrant
	m.errMsg = ""
}

func (m *AdminModel) buildInputs(labels, values []string) {
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
}

func (m *AdminModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = adminList
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
		if m.mode == adminGrant {
			return m.submitGrant()
		}
		return m.submitCatalogForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *AdminModel) submitCatalogForm() (tea.Model, tea.Cmd) {
	var code, name string
	if m.tab == tabTags {
		name = strings.TrimSpace(m.inputs[0].Value())
	} else {
		code = strings.TrimSpace(m.inputs[0].Value())
		name = strings.TrimSpace(m.inputs[1].Value())
	}

	if name == "" {
		m.errMsg = "name is required"
		return m, nil
	}

	m.errMsg = ""
	m.saving = true
	return m, m.cmdSaveItem(m.editing, code, name)
}

func (m *AdminModel) submitGrant() (tea.Model, tea.Cmd) {
	user, ok := m.selectedUser()
	if !ok {
		m.mode = adminList
		return m, nil
	}

	code := strings.TrimSpace(m.inputs[0].Value())
	points, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil || points <= 0 {
		m.errMsg = "points must be a positive number"
		return m, nil
	}
	reason := strings.TrimSpace(m.inputs[2].Value())

	m.errMsg = ""
	m.saving = true
	return m, m.cmdGrantReward(user, code, points, reason)
}

func (m *AdminModel) selectedUser() (models.User, bool) {
	if m.userCursor < 0 || m.userCursor >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.userCursor], true
}

func (m *AdminModel) selectedItem() (catalogItem, bool) {
	if m.itemCursor < 0 || m.itemCursor >= len(m.items) {
		return catalogItem{}, false
	}
	return m.items[m.itemCursor], true
}

// nextRole cycles user -> manager -> admin -> user.
func nextRole(r models.Role) models.Role {
	switch r {
	case models.RoleUser:
		return models.RoleManager
	case models.RoleManager:
		return models.RoleAdmin
	default:
		return models.RoleUser
	}
}

// View implements [tea.Model].
func (m *AdminModel) View() string {
	if m.mode == adminForm || m.mode == adminGrant {
		return m.viewForm()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.tab == tabUsers:
		b.WriteString(m.renderUsers())
	default:
		b.WriteString(m.renderItems())
	}

	if m.mode == adminConfirmDelete {
		b.WriteString("\n")
		b.WriteString(m.pal.errText.Render("Delete? (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusAndError())

	hotKeys := "tab: next list │ e: edit │ n: new │ d: delete │ r: refresh │ esc: home"
	if m.tab == tabUsers {
		hotKeys = "tab: next list │ e: cycle role │ g: grant reward │ d: delete │ r: refresh │ esc: home"
	}
	return renderPage(m.pal.title.Render("ADMIN"), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AdminModel) renderTabs() string {
	parts := make([]string, 0, len(adminTabTitles))
	for i, title := range adminTabTitles {
		if adminTab(i) == m.tab {
			parts = append(parts, m.pal.selected.Render("["+title+"]"))
		} else {
			parts = append(parts, m.pal.dimmed.Render(title))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *AdminModel) renderUsers() string {
	if len(m.users) == 0 {
		return m.pal.dimmed.Render("no users") + "\n"
	}

	var b strings.Builder
	for i, u := range m.users {
		marker := "  "
		line := fmt.Sprintf("%-28s %-24s %-8s %5d pts",
			fitText(u.FullName(), 28), fitText(u.Email, 24), u.Role, u.TotalPoints)
		if i == m.userCursor {
			marker = "> "
			line = m.pal.selected.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *AdminModel) renderItems() string {
	if len(m.items) == 0 {
		return m.pal.dimmed.Render("empty, press n to add") + "\n"
	}

	var b strings.Builder
	for i, item := range m.items {
		marker := "  "
		line := item.name
		if item.code != "" {
			line = fmt.Sprintf("%-16s %s", item.code, item.name)
		}
		if i == m.itemCursor {
			marker = "> "
			line = m.pal.selected.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *AdminModel) viewForm() string {
	var b strings.Builder
	for _, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-18s", in.Placeholder))
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

	title := "ADMIN · " + strings.ToUpper(adminTabTitles[m.tab])
	if m.mode == adminGrant {
		if user, ok := m.selectedUser(); ok {
			title = "ADMIN · GRANT REWARD TO " + strings.ToUpper(user.FullName())
		}
	}
	return renderPage(m.pal.title.Render(title), strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ esc: cancel")
}

func (m *AdminModel) statusAndError() string {
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

func (m *AdminModel) reloadTab() tea.Cmd {
	m.loading = true
	if m.tab == tabUsers {
		return m.cmdLoadUsers()
	}
	return m.cmdLoadItems()
}

func (m *AdminModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		users, err := competitions.Users(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m *AdminModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	tab := m.tab

	return func() tea.Msg {
		switch tab {
		case tabRewardTypes:
			types, err := catalog.RewardTypes(ctx)
			items := make([]catalogItem, 0, len(types))
			for _, t := range types {
				items = append(items, catalogItem{id: t.ID, code: t.Code, name: t.Name})
			}
			return catalogLoadedMsg{items: items, err: err}
		case tabTags:
			tags, err := catalog.Tags(ctx)
			items := make([]catalogItem, 0, len(tags))
			for _, t := range tags {
				items = append(items, catalogItem{id: t.ID, name: t.Name})
			}
			return catalogLoadedMsg{items: items, err: err}
		default:
			statuses, err := catalog.TaskStatuses(ctx)
			items := make([]catalogItem, 0, len(statuses))
			for _, s := range statuses {
				items = append(items, catalogItem{id: s.ID, code: s.Code, name: s.Name})
			}
			return catalogLoadedMsg{items: items, err: err}
		}
	}
}

func (m *AdminModel) cmdSaveItem(editing *catalogItem, code, name string) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	tab := m.tab

	return func() tea.Msg {
		var err error
		switch tab {
		case tabRewardTypes:
			spec := models.RewardTypeSpec{Code: code, Name: name}
			if editing == nil {
				_, err = catalog.CreateRewardType(ctx, spec)
			} else {
				_, err = catalog.UpdateRewardType(ctx, editing.id, spec)
			}
		case tabTags:
			spec := models.TagSpec{Name: name}
			if editing == nil {
				_, err = catalog.CreateTag(ctx, spec)
			} else {
				_, err = catalog.UpdateTag(ctx, editing.id, spec)
			}
		default:
			spec := models.TaskStatusSpec{Code: code, Name: name}
			if editing == nil {
				_, err = catalog.CreateTaskStatus(ctx, spec)
			} else {
				_, err = catalog.UpdateTaskStatus(ctx, editing.id, spec)
			}
		}
		return catalogSavedMsg{err: err}
	}
}

func (m *AdminModel) cmdDeleteItem(item catalogItem) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	tab := m.tab

	return func() tea.Msg {
		var err error
		switch tab {
		case tabRewardTypes:
			err = catalog.DeleteRewardType(ctx, item.id)
		case tabTags:
			err = catalog.DeleteTag(ctx, item.id)
		default:
			err = catalog.DeleteTaskStatus(ctx, item.id)
		}
		return catalogSavedMsg{err: err}
	}
}

func (m *AdminModel) cmdChangeRole(user models.User, role models.Role) tea.Cmd {
	ctx := m.ctx
	admin := m.admin

	return func() tea.Msg {
		updated, err := admin.ChangeRole(ctx, user.ID, role)
		return userSavedMsg{user: updated, err: err}
	}
}

func (m *AdminModel) cmdDeleteUser(user models.User) tea.Cmd {
	ctx := m.ctx
	admin := m.admin

	return func() tea.Msg {
		return userDeletedMsg{id: user.ID, err: admin.DeleteUser(ctx, user.ID)}
	}
}

// cmdGrantReward resolves the reward type by code and issues the grant in one
// command so the form does not need a second lookup step.
func (m *AdminModel) cmdGrantReward(user models.User, typeCode string, points int, reason string) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog

	return func() tea.Msg {
		types, err := catalog.RewardTypes(ctx)
		if err != nil {
			return catalogSavedMsg{err: err}
		}

		var typeID uuid.UUID
		found := false
		for _, t := range types {
			if strings.EqualFold(t.Code, typeCode) {
				typeID = t.ID
				found = true
				break
			}
		}
		if !found {
			return catalogSavedMsg{err: fmt.Errorf("unknown reward type %q", typeCode)}
		}

		grant := models.RewardGrant{UserID: user.ID, TypeID: typeID, PointsAmount: points}
		if reason != "" {
			grant.Reason = &reason
		}
		_, err = catalog.GrantReward(ctx, grant)
		return catalogSavedMsg{err: err}
	}
}
