package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette, muted enough for printed handouts pasted from a terminal.
var (
	Primary = lipgloss.Color("#2563EB") // Blue
	Accent  = lipgloss.Color("#D97706") // Amber
	Success = lipgloss.Color("#16A34A") // Green
	Error   = lipgloss.Color("#DC2626") // Red
	TextDim = lipgloss.Color("#64748B") // Slate
	Border  = lipgloss.Color("#CBD5E1") // Light slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(Border)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(11)
)

// States
var (
	Ok = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Heading renders an uppercased section heading.
func Heading(title string) string {
	return Section.Render(strings.ToUpper(title))
}

// Field renders a "label  value" line with an aligned label column.
func Field(label, value string) string {
	return Label.Render(label+":") + " " + value
}

// Status renders a check mark or a cross.
func Status(ok bool) string {
	if ok {
		return Ok.Render("✓")
	}
	return Failed.Render("✗")
}
