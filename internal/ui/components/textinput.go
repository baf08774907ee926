package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/ui/theme"
)

// TextInput is a labelled bubbles/textinput. Numeric inputs only accept
// digits and carry a minimum value.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	Min         int
	invalid     bool
}

// NewTextInput creates a blurred text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti}
}

// NewNumberInput creates a digits-only input prefilled with min.
func NewNumberInput(label string, min int) TextInput {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.SetValue(strconv.Itoa(min))
	return TextInput{Label: label, Model: ti, NumericOnly: true, Min: min}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label above the input.
func (t TextInput) View() string {
	label := theme.Label.Render(t.Label)
	if t.invalid {
		label += " " + theme.ErrorText.Render("✗")
	}
	return label + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Empty reports whether the input holds only whitespace.
func (t TextInput) Empty() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Model.Value()))
}

// BelowMin reports whether a numeric input is empty or under its minimum.
func (t TextInput) BelowMin() bool {
	if !t.NumericOnly {
		return false
	}
	n, err := t.NumericValue()
	return err != nil || n < t.Min
}

// MarkInvalid flags the input in its label.
func (t *TextInput) MarkInvalid(invalid bool) {
	t.invalid = invalid
}
