package tui

import (
	"strings"

	"logdash"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorService = lipgloss.Color("#06B6D4")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F8FAFC")
	colorDim     = lipgloss.Color("#64748B")
	colorBanner  = lipgloss.Color("#FDE2E1")

	colorDebug = lipgloss.Color("#94A3B8")
	colorInfo  = lipgloss.Color("#3B82F6")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorError = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	statStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	filterActiveStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorBanner).
			Padding(0, 1)

	serviceStyle = lipgloss.NewStyle().
			Foreground(colorService).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	dataStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(4)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDim)
)

var levelColors = map[string]lipgloss.Color{
	logdash.LevelDebug:   colorDebug,
	logdash.LevelInfo:    colorInfo,
	logdash.LevelWarning: colorWarn,
	logdash.LevelError:   colorError,
}

// levelBadge renders a fixed-width upper-case level; unknown levels are muted.
func levelBadge(level string) string {
	c, ok := levelColors[level]
	if !ok {
		c = colorMuted
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Width(7).Render(strings.ToUpper(level))
}

func keyHint(key, desc string) string {
	return keyStyle.Render(key) + " " + mutedStyle.Render(desc)
}
