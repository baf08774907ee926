// Package layout draws the frame around every screen: a header with the
// screen title and model status, and a footer with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// Smallest terminal the forms fit in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// AppName is shown at the left of the header.
const AppName = "Math Planner"

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the right-hand side of the header.
type Status struct {
	Model     string
	Available bool
}

func (s Status) render() string {
	if !s.Available {
		return lipgloss.NewStyle().Foreground(theme.Error).Render("● AI unavailable")
	}
	return lipgloss.NewStyle().Foreground(theme.Success).Render("● ") +
		theme.Dim.Render(s.Model)
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the app name on the left, the title centered and the
// model status on the right.
func RenderHeader(title string, status Status, width int) string {
	left := theme.Title.Render("  " + AppName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := status.render()

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + theme.Dim.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
