package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/router"
	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/tutor"
)

type nopTutor struct{}

func (nopTutor) BuildStudyPlan(context.Context, tutor.StudyPlanRequest) tutor.Result {
	return tutor.Result{}
}
func (nopTutor) BuildQuestions(context.Context, tutor.QuestionRequest) tutor.Result {
	return tutor.Result{}
}
func (nopTutor) BuildExplanation(context.Context, tutor.ConceptRequest) tutor.Result {
	return tutor.Result{}
}
func (nopTutor) BuildResources(context.Context, tutor.ResourceRequest) tutor.Result {
	return tutor.Result{}
}

func selectItem(t *testing.T, h *HomeScreen, downs int) screen.Screen {
	t.Helper()
	var s screen.Screen = h
	for i := 0; i < downs; i++ {
		s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	open, ok := cmd().(router.OpenMsg)
	if !ok {
		t.Fatal("expected a screen to open")
	}
	return open.Screen
}

func TestMenuPushesForms(t *testing.T) {
	titles := []string{"Study Plan", "Practice Questions", "Concept Explanation", "Resources"}
	for i, want := range titles {
		got := selectItem(t, New(Options{Tutor: nopTutor{}}), i)
		if got.Title() != want {
			t.Errorf("item %d: got %q, want %q", i, got.Title(), want)
		}
	}
}

func TestSetupOnlyWhenUnavailable(t *testing.T) {
	h := New(Options{Tutor: nopTutor{}})
	if strings.Contains(h.View(100, 34), "SETUP") {
		t.Error("setup entry should be hidden when the provider is configured")
	}

	h = New(Options{Tutor: nopTutor{}, Unavailable: errors.New("OPENAI_API_KEY is required for the openai provider")})
	view := h.View(100, 34)
	if !strings.Contains(view, "SETUP") || !strings.Contains(view, "No API key configured") {
		t.Error("expected setup entry and banner")
	}

	s := selectItem(t, h, 4)
	if s.Title() != "Setup" {
		t.Fatalf("expected setup notice, got %q", s.Title())
	}
	if !strings.Contains(s.View(100, 30), "OPENAI_API_KEY") {
		t.Error("expected the reason on the setup screen")
	}
}

func TestQuit(t *testing.T) {
	h := New(Options{Tutor: nopTutor{}})
	var s screen.Screen = h
	for i := 0; i < 4; i++ {
		s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit")
	}
}

func TestNumberKeyOpensForm(t *testing.T) {
	h := New(Options{Tutor: nopTutor{}})
	_, cmd := h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	open, ok := cmd().(router.OpenMsg)
	if !ok || open.Screen.Title() != "Concept Explanation" {
		t.Fatalf("expected the explanation form, got %#v", cmd())
	}
}
