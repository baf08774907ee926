package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a rounded border of the given content width,
// centered within width x height.
func Panel(content string, cw, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Padding(0, 2).
		Render(content)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Render(box)
}
