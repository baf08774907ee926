// Package router keeps the stack of form UI screens. The bottom screen is
// the menu and is never left.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/ui/layout"
)

// OpenMsg puts Screen on top of the stack.
type OpenMsg struct {
	Screen screen.Screen
}

// BackMsg leaves the top screen.
type BackMsg struct{}

// Open returns a command that opens s.
func Open(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return OpenMsg{Screen: s} }
}

// Back is a command that leaves the top screen.
func Back() tea.Msg {
	return BackMsg{}
}

// Router owns the screen stack and forwards messages to the top screen.
type Router struct {
	screens []screen.Screen
}

// New creates a Router whose bottom screen is home.
func New(home screen.Screen) *Router {
	return &Router{screens: []screen.Screen{home}}
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.screens[len(r.screens)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.screens)
}

// AtHome reports whether only the bottom screen is left.
func (r *Router) AtHome() bool {
	return len(r.screens) == 1
}

// KeyHints returns the active screen's own footer hints, if it has any.
func (r *Router) KeyHints() ([]layout.KeyHint, bool) {
	p, ok := r.Active().(screen.KeyHintProvider)
	if !ok {
		return nil, false
	}
	hints := p.KeyHints()
	return hints, len(hints) > 0
}

// Update applies navigation messages and hands every other message to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OpenMsg:
		r.screens = append(r.screens, msg.Screen)
		return msg.Screen.Init()
	case BackMsg:
		if !r.AtHome() {
			r.screens = r.screens[:len(r.screens)-1]
		}
		return nil
	}

	top := len(r.screens) - 1
	next, cmd := r.screens[top].Update(msg)
	r.screens[top] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
