// Package theme holds the colors and text styles of the form UI.
package theme

import "charm.land/lipgloss/v2"

// Chalkboard palette.
var (
	Primary   = lipgloss.Color("#7DD3FC") // chalk blue
	Secondary = lipgloss.Color("#A7F3D0") // chalk green
	Accent    = lipgloss.Color("#FDE68A") // chalk yellow
	Success   = lipgloss.Color("#4ADE80")
	Warning   = lipgloss.Color("#FBBF24")
	Error     = lipgloss.Color("#F87171")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#9CA3AF")
	BgCard    = lipgloss.Color("#1F3A2E") // board green
	Border    = lipgloss.Color("#3F5F4F")
)

var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subheader = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Label     = lipgloss.NewStyle().Foreground(Text)
	Hint      = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Dim       = lipgloss.NewStyle().Foreground(TextDim)

	// WarningText is used for client-side input checks.
	WarningText = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	// ErrorText is used for failed tutor calls.
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgCard).
			Bold(true).
			Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
