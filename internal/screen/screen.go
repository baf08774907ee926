package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/ui/layout"
)

// Screen is one page of the form UI. The router owns a stack of them and
// only the top one receives messages.
type Screen interface {
	// Init runs once when the screen is opened.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the area between header and footer.
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider is implemented by screens whose footer hints depend on
// their state.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
