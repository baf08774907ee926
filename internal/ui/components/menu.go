package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action runs when the entry is chosen.
type MenuItem struct {
	Label       string
	Description string
	Action      func() tea.Cmd
}

// Menu is a vertical list of entries. Entries can be chosen with the
// arrow keys and enter, or directly by their number.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

// NewMenu creates a menu with the cursor on the first entry.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		m.Cursor = max(m.Cursor-1, 0)
	case "down", "j":
		m.Cursor = min(m.Cursor+1, len(m.Items)-1)
	case "enter":
		return m, m.choose()
	default:
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(m.Items) {
			m.Cursor = int(s[0] - '1')
			return m, m.choose()
		}
	}
	return m, nil
}

func (m Menu) choose() tea.Cmd {
	if action := m.Items[m.Cursor].Action; action != nil {
		return action()
	}
	return nil
}

// View renders the entries, numbered, with the description of the entry
// under the cursor below them.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := fmt.Sprintf("%d  %s", i+1, item.Label)
		if i == m.Cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.Items) > 0 && m.Items[m.Cursor].Description != "" {
		b.WriteString("\n" + theme.Hint.Render(m.Items[m.Cursor].Description))
	}
	return b.String()
}
