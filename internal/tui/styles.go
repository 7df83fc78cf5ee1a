package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkazancev/gamideck/models"
)

// palette is the theme-dependent style set. Pages render through the active
// palette so a theme toggle repaints everything on the next frame.
type palette struct {
	app       lipgloss.Style
	title     lipgloss.Style
	help      lipgloss.Style
	errText   lipgloss.Style
	accent    lipgloss.Style
	selected  lipgloss.Style
	dimmed    lipgloss.Style
	statusBar lipgloss.Style
	badge     lipgloss.Style
}

func paletteFor(theme models.Theme) palette {
	accent := lipgloss.Color("63")
	if theme == models.ThemeDark {
		accent = lipgloss.Color("212")
	}

	return palette{
		app:       lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:      lipgloss.NewStyle().Faint(true),
		errText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		accent:    lipgloss.NewStyle().Foreground(accent),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		dimmed:    lipgloss.NewStyle().Faint(true),
		statusBar: lipgloss.NewStyle().Faint(true),
		badge:     lipgloss.NewStyle().Bold(true),
	}
}
