package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pageza/recipe-ai/internal/app"
)

type palette struct {
	text, muted, accent, onAccent, border lipgloss.Color
	success, info, warning, danger        lipgloss.Color
}

var (
	lightPalette = palette{
		text:     lipgloss.Color("#1a1a1a"),
		muted:    lipgloss.Color("#626262"),
		accent:   lipgloss.Color("#2f7d32"),
		onAccent: lipgloss.Color("#ffffff"),
		border:   lipgloss.Color("#2f7d32"),
		success:  lipgloss.Color("#2f7d32"),
		info:     lipgloss.Color("#005577"),
		warning:  lipgloss.Color("#b58900"),
		danger:   lipgloss.Color("#dc322f"),
	}
	darkPalette = palette{
		text:     lipgloss.Color("#dddddd"),
		muted:    lipgloss.Color("#a8a8a8"),
		accent:   lipgloss.Color("#50fa7b"),
		onAccent: lipgloss.Color("#000000"),
		border:   lipgloss.Color("#50fa7b"),
		success:  lipgloss.Color("#50fa7b"),
		info:     lipgloss.Color("#8be9fd"),
		warning:  lipgloss.Color("#f1fa8c"),
		danger:   lipgloss.Color("#ff5555"),
	}
)

// Styles is the rendered look of one theme
type Styles struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Nav       lipgloss.Style
	NavActive lipgloss.Style
	Item      lipgloss.Style
	Cursor    lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
	Box       lipgloss.Style
	Stat      lipgloss.Style

	severity map[app.Severity]lipgloss.Style
}

// NewStyles builds the styles for theme
func NewStyles(theme app.Theme) Styles {
	p := lightPalette
	if theme == app.ThemeDark {
		p = darkPalette
	}

	item := lipgloss.NewStyle().Foreground(p.text)
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(p.accent).Bold(true).Margin(0, 0, 1, 0),
		Heading:   lipgloss.NewStyle().Foreground(p.text).Bold(true).Underline(true),
		Nav:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(p.onAccent).Background(p.accent).Bold(true).Padding(0, 1),
		Item:      item,
		Cursor:    item.Foreground(p.accent).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(p.muted),
		Label:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(p.muted).Margin(1, 0, 0, 0),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Stat: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Width(6).Align(lipgloss.Right),
		severity: map[app.Severity]lipgloss.Style{
			app.SeveritySuccess: lipgloss.NewStyle().Foreground(p.success).Bold(true),
			app.SeverityInfo:    lipgloss.NewStyle().Foreground(p.info),
			app.SeverityWarning: lipgloss.NewStyle().Foreground(p.warning).Bold(true),
			app.SeverityError:   lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		},
	}
}

// Severity returns the style for a notification severity
func (s Styles) Severity(sev app.Severity) lipgloss.Style {
	if st, ok := s.severity[sev]; ok {
		return st
	}
	return s.Item
}

var severityIcons = map[app.Severity]string{
	app.SeveritySuccess: "✓",
	app.SeverityInfo:    "i",
	app.SeverityWarning: "!",
	app.SeverityError:   "✗",
}

// Notification renders one notification line
func (s Styles) Notification(n app.Notification) string {
	return s.Severity(n.Severity).Render(severityIcons[n.Severity] + " " + n.Message)
}
