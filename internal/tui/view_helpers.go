package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/adapter"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: quit")

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}
	r := []rune(v)
	if len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// surfaceError turns err into the page's inline message. A rejected token
// additionally signs the session out: the returned command feeds the router,
// which drops the user back on the sign-in page instead of leaving a dead
// session on a gated view.
func surfaceError(err error) (string, tea.Cmd) {
	if errors.Is(err, adapter.ErrSessionExpired) {
		return err.Error(), func() tea.Msg { return sessionExpiredMsg{} }
	}
	return humanizeTransportError(err), nil
}

func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrNoConnection) || errors.Is(err, context.DeadlineExceeded) {
		return adapter.ErrNoConnection.Error()
	}
	return err.Error()
}
