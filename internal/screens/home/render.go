package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/ui/components"
	"github.com/abhisek/mathplanner/internal/ui/theme"
)

const titleFull = `╔╦╗╔═╗╔╦╗╦ ╦  ╔═╗╦  ╔═╗╔╗╔╔╗╔╔═╗╦═╗
║║║╠═╣ ║ ╠═╣  ╠═╝║  ╠═╣║║║║║║║╣ ╠╦╝
╩ ╩╩ ╩ ╩ ╩ ╩  ╩  ╩═╝╩ ╩╝╚╝╝╚╝╚═╝╩╚═`

const titleCompact = "M A T H   P L A N N E R"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		title = titleCompact
	}
	subtitle := theme.Hint.Render("Your personal math tutor")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n\n" + subtitle)
}

// renderMenu centers the menu block within the content width.
func renderMenu(menu components.Menu, cw int) string {
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(menu.View())

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderUnavailableBanner warns that no completion credential is configured.
func renderUnavailableBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No API key configured. Requests will fail until one is set (see SETUP).")
}

// renderFrame wraps content in a double-border frame, centered within the
// given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
