// Package form implements the input screens for the four tutor use cases.
package form

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/tutor"
	"github.com/abhisek/mathplanner/internal/ui/components"
	"github.com/abhisek/mathplanner/internal/ui/layout"
	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// MsgFillAllFields is the warning shown when a required input is empty.
const MsgFillAllFields = "Please fill in all fields."

// Field is one form input. Exactly one of Input and Choice is set.
type Field struct {
	Key    string
	Input  *components.TextInput
	Choice *components.Select
}

// value returns the field as entered. Only numbers are trimmed.
func (f Field) value() string {
	switch {
	case f.Choice != nil:
		return f.Choice.Value()
	case f.Input.NumericOnly:
		return strings.TrimSpace(f.Input.Value())
	default:
		return f.Input.Value()
	}
}

// SubmitFunc runs the use case for the collected field values.
type SubmitFunc func(ctx context.Context, values map[string]string) tutor.Result

// Definition describes one form.
type Definition struct {
	Title     string
	Heading   string
	Subheader string
	Button    string
	Warning   string
	Fields    []Field
	Submit    SubmitFunc
}

type phase int

const (
	phaseEditing phase = iota
	phaseLoading
	phaseDone
)

// resultMsg carries a finished use case back to the screen that started it.
type resultMsg struct {
	formID int64
	result tutor.Result
}

var nextFormID atomic.Int64

// Screen is a form followed by the generated text.
type Screen struct {
	id      int64
	def     Definition
	button  components.Button
	focus   int // index into def.Fields; len(def.Fields) is the button
	phase   phase
	warning string
	errMsg  string
	result  string
	spinner spinner.Model
	view    viewport.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a form screen from def with the first field focused.
func New(def Definition) *Screen {
	vp := viewport.New()
	vp.SoftWrap = true

	s := &Screen{
		id:      nextFormID.Add(1),
		def:     def,
		button:  components.NewButton(def.Button),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
		view:    vp,
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.setFocus(0)
}

func (s *Screen) Title() string {
	return s.def.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Edit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.formID != s.id {
			return s, nil
		}
		return s.handleResult(msg.result)

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseLoading:
		return s, nil

	case phaseDone:
		if msg.String() == "enter" {
			s.phase = phaseEditing
			return s, s.setFocus(len(s.def.Fields))
		}
		var cmd tea.Cmd
		s.view, cmd = s.view.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % (len(s.def.Fields) + 1))
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + len(s.def.Fields)) % (len(s.def.Fields) + 1))
	case "enter":
		if s.focus < len(s.def.Fields) {
			return s, s.setFocus(s.focus + 1)
		}
		return s, s.submit()
	}
	return s, s.forward(msg)
}

// forward passes msg to the focused field.
func (s *Screen) forward(msg tea.Msg) tea.Cmd {
	if s.phase != phaseEditing || s.focus >= len(s.def.Fields) {
		return nil
	}
	f := s.def.Fields[s.focus]
	var cmd tea.Cmd
	if f.Choice != nil {
		*f.Choice, cmd = f.Choice.Update(msg)
	} else {
		*f.Input, cmd = f.Input.Update(msg)
	}
	return cmd
}

func (s *Screen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.button.Focused = i == len(s.def.Fields)

	var cmd tea.Cmd
	for j, f := range s.def.Fields {
		switch {
		case f.Choice != nil && j == i:
			f.Choice.Focus()
		case f.Choice != nil:
			f.Choice.Blur()
		case j == i:
			cmd = f.Input.Focus()
		default:
			f.Input.Blur()
		}
	}
	return cmd
}

// validate returns the warning to show, or "" when the form can be sent.
func (s *Screen) validate() string {
	for i := range s.def.Fields {
		if in := s.def.Fields[i].Input; in != nil {
			in.MarkInvalid(false)
		}
	}

	warning := ""
	for _, f := range s.def.Fields {
		if f.Input == nil || !f.Input.Empty() {
			continue
		}
		f.Input.MarkInvalid(true)
		switch {
		case !f.Input.NumericOnly:
			warning = s.def.Warning
		case warning == "":
			warning = MsgFillAllFields
		}
	}
	if warning != "" {
		return warning
	}

	for _, f := range s.def.Fields {
		if f.Input != nil && f.Input.BelowMin() {
			f.Input.MarkInvalid(true)
			return fmt.Sprintf("%s must be at least %d.", strings.TrimSuffix(f.Input.Label, ":"), f.Input.Min)
		}
	}
	return ""
}

func (s *Screen) submit() tea.Cmd {
	s.errMsg = ""
	if w := s.validate(); w != "" {
		s.warning = w
		return nil
	}
	s.warning = ""
	s.phase = phaseLoading
	s.button.Focused = false

	values := make(map[string]string, len(s.def.Fields))
	for _, f := range s.def.Fields {
		values[f.Key] = f.value()
	}

	id, run := s.id, s.def.Submit
	return tea.Batch(
		s.spinner.Tick,
		func() tea.Msg {
			return resultMsg{formID: id, result: run(context.Background(), values)}
		},
	)
}

func (s *Screen) handleResult(res tutor.Result) (screen.Screen, tea.Cmd) {
	if res.Failed() {
		s.phase = phaseEditing
		s.errMsg = describeFailure(res)
		return s, s.setFocus(len(s.def.Fields))
	}
	s.phase = phaseDone
	s.result = res.Text
	s.view.SetContent(res.Text)
	s.view.GotoTop()
	return s, nil
}

func describeFailure(res tutor.Result) string {
	cause := "unknown error"
	if res.Cause != nil {
		cause = res.Cause.Error()
	}
	if res.Kind == tutor.KindAuth {
		return "Authentication error: " + cause
	}
	return "An error occurred: " + cause
}
