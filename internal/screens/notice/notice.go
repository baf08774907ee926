package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// NoticeScreen shows a fixed block of text.
type NoticeScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, body string) *NoticeScreen {
	return &NoticeScreen{title: title, body: body}
}

// NewSetup explains how to configure a completion credential.
func NewSetup(reason string) *NoticeScreen {
	body := theme.ErrorText.Render(reason) + "\n\n" +
		"Set OPENAI_API_KEY in your environment or in a .env file\n" +
		"in the working directory, then restart mathplanner.\n\n" +
		theme.Hint.Render("Other providers: MATHPLANNER_LLM_PROVIDER=anthropic|gemini|openrouter\n"+
			"with ANTHROPIC_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY.")
	return New("Setup", body)
}

func (p *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (p *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.body)
}

func (p *NoticeScreen) Title() string {
	return p.title
}
