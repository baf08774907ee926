package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/ui/components"
	"github.com/abhisek/mathplanner/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.phase == phaseDone {
		return s.renderResult(cw, width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.def.Heading))
	b.WriteString("\n\n")

	for _, f := range s.def.Fields {
		if f.Choice != nil {
			b.WriteString(f.Choice.View())
		} else {
			f.Input.Model.SetWidth(cw - 6)
			b.WriteString(f.Input.View())
		}
		b.WriteString("\n\n")
	}

	if s.phase == phaseLoading {
		b.WriteString(s.spinner.View() + " " + theme.Hint.Render("Asking the tutor..."))
	} else {
		b.WriteString(s.button.View())
	}

	if s.warning != "" {
		b.WriteString("\n\n" + theme.WarningText.Render(s.warning))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(cw-4).Render(theme.ErrorText.Render(s.errMsg)))
	}

	return components.Panel(b.String(), cw, width, height)
}

func (s *Screen) renderResult(cw, width, height int) string {
	header := theme.Subheader.Render(s.def.Subheader)

	// border (2) + subheader (1) + gap (1)
	vh := height - 4
	if vh < 3 {
		vh = 3
	}
	s.view.SetWidth(cw - 4)
	s.view.SetHeight(vh)

	return components.Panel(header+"\n"+s.view.View(), cw, width, height)
}
