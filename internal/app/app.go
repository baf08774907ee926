package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/router"
	"github.com/abhisek/mathplanner/internal/screens/home"
	"github.com/abhisek/mathplanner/internal/tutor"
	"github.com/abhisek/mathplanner/internal/ui/layout"
)

// Options carries the dependencies of the form UI.
type Options struct {
	Tutor tutor.Tutor
	// Model is shown in the header.
	Model string
	// Unavailable is the reason completions will fail, nil when the
	// provider is configured.
	Unavailable error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status layout.Status
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Options{
		Tutor:       opts.Tutor,
		Unavailable: opts.Unavailable,
	})
	return AppModel{
		router: router.New(homeScreen),
		status: layout.Status{Model: opts.Model, Available: opts.Unavailable == nil},
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.router.AtHome() {
				return m, router.Back
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame, or nothing until the size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Active().Title(), m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if hints, ok := m.router.KeyHints(); ok {
		return hints
	}
	if !m.router.AtHome() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Tutor == nil {
		return fmt.Errorf("app: tutor is required")
	}
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run form UI: %w", err)
	}
	return nil
}
