package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/router"
	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/screens/form"
	"github.com/abhisek/mathplanner/internal/screens/notice"
	"github.com/abhisek/mathplanner/internal/tutor"
	"github.com/abhisek/mathplanner/internal/ui/components"
)

// Options configures the home screen.
type Options struct {
	Tutor tutor.Tutor
	// Unavailable explains why completions will fail, when they will.
	Unavailable error
}

// HomeScreen lists the four use cases.
type HomeScreen struct {
	menu        components.Menu
	unavailable bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	t := opts.Tutor

	items := []components.MenuItem{
		{
			Label:       "STUDY PLAN",
			Description: "A 7-day plan for your grade, weak topics and daily hours.",
			Action:      func() tea.Cmd { return router.Open(form.NewStudyPlan(t)) },
		},
		{
			Label:       "PRACTICE QUESTIONS",
			Description: "Five problems on a topic at the difficulty you pick.",
			Action:      func() tea.Cmd { return router.Open(form.NewQuestions(t)) },
		},
		{
			Label:       "EXPLAIN A CONCEPT",
			Description: "A plain explanation with examples and common mistakes.",
			Action:      func() tea.Cmd { return router.Open(form.NewExplanation(t)) },
		},
		{
			Label:       "MORE RESOURCES",
			Description: "Videos and exercises once a topic keeps tripping you up.",
			Action:      func() tea.Cmd { return router.Open(form.NewResources(t)) },
		},
	}
	if opts.Unavailable != nil {
		reason := opts.Unavailable.Error()
		items = append(items, components.MenuItem{
			Label:       "SETUP",
			Description: "How to connect the tutor to a completion service.",
			Action:      func() tea.Cmd { return router.Open(notice.NewSetup(reason)) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		menu:        components.NewMenu(items),
		unavailable: opts.Unavailable != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 24

	sections := []string{renderTitle(cw, compact)}
	if h.unavailable {
		sections = append(sections, renderUnavailableBanner(cw))
	}
	sections = append(sections, renderMenu(h.menu, cw))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
