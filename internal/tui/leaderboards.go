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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/models"
)

// LeaderboardsModel lists competitions and shows the standings of the selected
// one. Moving the selection cancels the in-flight standings request and every
// response is keyed by competition and sequence number, so a slow reply for a
// previously selected competition can never overwrite the current view.
type LeaderboardsModel struct {
	ctx          context.Context
	competitions service.CompetitionService

	list     []models.Competition
	cursor   int
	loading  bool
	fetching bool

	entries     []models.LeaderboardEntry
	fetchSeq    uint64
	fetchCancel context.CancelFunc

	status string
	errMsg string
	pal    palette
}

func NewLeaderboardsModel(ctx context.Context, competitions service.CompetitionService, theme models.Theme) *LeaderboardsModel {
	return &LeaderboardsModel{
		ctx:          ctx,
		competitions: competitions,
		pal:          paletteFor(theme),
	}
}

// Init implements [tea.Model].
func (m *LeaderboardsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadCompetitions()
}

// Update implements [tea.Model].
func (m *LeaderboardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if len(m.list) > 0 {
			return m, m.selectCompetition()
		}
		m.entries = nil
		return m, nil

	case leaderboardLoadedMsg:
		if m.stale(msg) {
			return m, nil
		}
		m.fetching = false
		if msg.err != nil {
			// A cancelled fetch is the expected outcome of moving the
			// selection, not an error worth surfacing.
			if msg.err == context.Canceled {
				return m, nil
			}
			var cmd tea.Cmd
			m.errMsg, cmd = surfaceError(msg.err)
			return m, cmd
		}
		m.entries = msg.entries
		m.errMsg = ""
		return m, nil

	case copiedMsg:
		m.status = "standings copied"
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

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
			return m, m.selectCompetition()
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.list)-1 {
			m.cursor++
			return m, m.selectCompetition()
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyStandings()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadCompetitions()
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	}

	return m, nil
}

// stale reports whether a standings response belongs to an older selection.
func (m *LeaderboardsModel) stale(msg leaderboardLoadedMsg) bool {
	if msg.seq != m.fetchSeq {
		return true
	}
	selected, ok := m.selected()
	return !ok || selected.ID != msg.competitionID
}

func (m *LeaderboardsModel) selected() (models.Competition, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return models.Competition{}, false
	}
	return m.list[m.cursor], true
}

// selectCompetition cancels any in-flight standings request and starts a new
// one for the competition under the cursor.
func (m *LeaderboardsModel) selectCompetition() tea.Cmd {
	selected, ok := m.selected()
	if !ok {
		return nil
	}

	if m.fetchCancel != nil {
		m.fetchCancel()
	}

	fetchCtx, cancel := context.WithCancel(m.ctx)
	m.fetchCancel = cancel
	m.fetchSeq++
	m.fetching = true
	m.entries = nil

	return m.cmdLoadLeaderboard(fetchCtx, selected.ID, m.fetchSeq)
}

// View implements [tea.Model].
func (m *LeaderboardsModel) View() string {
	var b strings.Builder
	now := time.Now()

	switch {
	case m.loading:
		b.WriteString("Loading competitions...\n")
	case len(m.list) == 0:
		b.WriteString(m.pal.dimmed.Render("No competitions yet."))
		b.WriteString("\n")
	default:
		for i, c := range m.list {
			marker := "  "
			line := fmt.Sprintf("%s (%s)", fitText(c.Name, 36), c.StatusAt(now))
			if i == m.cursor {
				marker = "> "
				line = m.pal.selected.Render(line)
			}
			b.WriteString(marker)
			b.WriteString(line)
			b.WriteString("\n")
		}

		if selected, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(m.renderStandings(selected, now))
		}
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

	return renderPage(m.pal.title.Render("LEADERBOARDS"), strings.TrimRight(b.String(), "\n"),
		"↑/↓: select competition │ c: copy standings │ r: refresh │ esc: home")
}

func (m *LeaderboardsModel) renderStandings(c models.Competition, now time.Time) string {
	var b strings.Builder

	b.WriteString(m.pal.accent.Render(c.Name))
	b.WriteString("\n")
	if remaining := c.TimeRemainingAt(now); remaining > 0 {
		verb := "ends"
		if c.StatusAt(now) == models.CompetitionUpcoming {
			verb = "starts"
		}
		b.WriteString(m.pal.dimmed.Render(fmt.Sprintf("%s in %s", verb, remaining.Round(time.Minute))))
		b.WriteString("\n")
	}

	switch {
	case m.fetching:
		b.WriteString("Loading standings...\n")
	case len(m.entries) == 0:
		b.WriteString(m.pal.dimmed.Render("no participants yet"))
		b.WriteString("\n")
	default:
		for i, e := range m.entries {
			name := strings.TrimSpace(e.FirstName + " " + e.LastName)
			b.WriteString(fmt.Sprintf("%2d. %-30s %5d\n", i+1, fitText(name, 30), e.Score))
		}
	}

	return b.String()
}

// cmdCopyStandings puts the selected competition's standings on the clipboard
// as plain text.
func (m *LeaderboardsModel) cmdCopyStandings() tea.Cmd {
	selected, ok := m.selected()
	if !ok || len(m.entries) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(selected.Name)
	b.WriteString("\n")
	for i, e := range m.entries {
		name := strings.TrimSpace(e.FirstName + " " + e.LastName)
		b.WriteString(fmt.Sprintf("%d. %s: %d\n", i+1, name, e.Score))
	}
	text := b.String()

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m *LeaderboardsModel) cmdLoadCompetitions() tea.Cmd {
	ctx := m.ctx
	competitions := m.competitions

	return func() tea.Msg {
		list, err := competitions.List(ctx)
		return competitionsLoadedMsg{competitions: list, err: err}
	}
}

func (m *LeaderboardsModel) cmdLoadLeaderboard(ctx context.Context, id uuid.UUID, seq uint64) tea.Cmd {
	competitions := m.competitions

	return func() tea.Msg {
		entries, err := competitions.Leaderboard(ctx, id)
		return leaderboardLoadedMsg{competitionID: id, seq: seq, entries: entries, err: err}
	}
}
