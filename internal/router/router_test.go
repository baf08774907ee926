package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/ui/layout"
)

type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

type hintedScreen struct{ stubScreen }

func (h *hintedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
}

func TestOpen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	form := &stubScreen{title: "form"}

	r.Update(Open(form)())

	if r.Depth() != 2 || r.AtHome() {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "form" {
		t.Errorf("expected active 'form', got %q", r.Active().Title())
	}
	if !form.initRan {
		t.Error("expected Init to run on the opened screen")
	}
}

func TestBack(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(OpenMsg{Screen: &stubScreen{title: "form"}})

	r.Update(Back())

	if !r.AtHome() || r.Active().Title() != "home" {
		t.Errorf("expected home, got depth %d active %q", r.Depth(), r.Active().Title())
	}
}

func TestBackKeepsHome(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(BackMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &stubScreen{title: "home"}
	form := &stubScreen{title: "form"}
	r := New(home)
	r.Update(OpenMsg{Screen: form})

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if home.updates != 0 || form.updates != 1 {
		t.Errorf("expected only the active screen to update, got %d and %d", home.updates, form.updates)
	}
	if got := r.View(10, 10); got != "form" {
		t.Errorf("unexpected view %q", got)
	}
}

func TestKeyHints(t *testing.T) {
	r := New(&stubScreen{title: "plain"})
	if _, ok := r.KeyHints(); ok {
		t.Error("plain screen should not provide hints")
	}

	r.Update(OpenMsg{Screen: &hintedScreen{stubScreen{title: "hinted"}}})
	hints, ok := r.KeyHints()
	if !ok || len(hints) != 1 || hints[0].Key != "Tab" {
		t.Errorf("unexpected hints %v (ok=%v)", hints, ok)
	}
}
