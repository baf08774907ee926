package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// Select is a single-line option picker cycled with left and right.
type Select struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewSelect creates a selector with the first option chosen.
func NewSelect(label string, options []string) Select {
	return Select{Label: label, Options: options}
}

// Focus focuses the selector.
func (s *Select) Focus() {
	s.focused = true
}

// Blur removes focus from the selector.
func (s *Select) Blur() {
	s.focused = false
}

// Update handles left/right navigation.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.Options) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l", "space":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		} else if kmsg.String() == "space" {
			s.Selected = 0
		}
	}
	return s, nil
}

// Value returns the chosen option.
func (s Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the label and every option, highlighting the chosen one.
func (s Select) View() string {
	parts := make([]string, len(s.Options))
	for i, opt := range s.Options {
		switch {
		case i == s.Selected && s.focused:
			parts[i] = theme.Selected.Render("‹ " + opt + " ›")
		case i == s.Selected:
			parts[i] = theme.Unselected.Render("[" + opt + "]")
		default:
			parts[i] = theme.Dim.Render(" " + opt + " ")
		}
	}
	return theme.Label.Render(s.Label) + "\n" + strings.Join(parts, "  ")
}
