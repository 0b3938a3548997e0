package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors.
const (
	ColorAccent    = "86"  // titles, price
	ColorHighlight = "205" // focused selector, borders
	ColorDanger    = "196" // errors
	ColorMuted     = "241" // hints, labels
	ColorText      = "252"
	ColorWarning   = "208" // unmatched location note
)

var Styles = struct {
	Title   lipgloss.Style
	Box     lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Value   lipgloss.Style
	Price   lipgloss.Style
	Card    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Width(14),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Price: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2).
		MarginTop(1),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
