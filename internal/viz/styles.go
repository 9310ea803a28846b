package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas   lipgloss.Style
	stats    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	failure  lipgloss.Style
	rocket   lipgloss.Style
	platform lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas:   lipgloss.NewStyle().Padding(1, 2),
		stats:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(40),
		header:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		graph:    lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2),
		success:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		failure:  lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		rocket:   lipgloss.NewStyle().Foreground(t.Rocket),
		platform: lipgloss.NewStyle().Foreground(t.Platform),
	}
}

// gauge renders a fill bar, colored by how much is left.
func (s styles) gauge(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.5 {
		return s.success.Render(bar)
	} else if percent > 0.2 {
		return s.warning.Render(bar)
	}
	return s.failure.Render(bar)
}
