package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplanner/internal/llm"
	"github.com/abhisek/mathplanner/internal/logging"
	"github.com/abhisek/mathplanner/internal/screen"
	"github.com/abhisek/mathplanner/internal/tutor"
)

// fakeTutor records requests and returns a fixed Result.
type fakeTutor struct {
	result    tutor.Result
	plans     []tutor.StudyPlanRequest
	questions []tutor.QuestionRequest
	concepts  []tutor.ConceptRequest
	resources []tutor.ResourceRequest
}

func (f *fakeTutor) BuildStudyPlan(_ context.Context, req tutor.StudyPlanRequest) tutor.Result {
	f.plans = append(f.plans, req)
	return f.result
}

func (f *fakeTutor) BuildQuestions(_ context.Context, req tutor.QuestionRequest) tutor.Result {
	f.questions = append(f.questions, req)
	return f.result
}

func (f *fakeTutor) BuildExplanation(_ context.Context, req tutor.ConceptRequest) tutor.Result {
	f.concepts = append(f.concepts, req)
	return f.result
}

func (f *fakeTutor) BuildResources(_ context.Context, req tutor.ResourceRequest) tutor.Result {
	f.resources = append(f.resources, req)
	return f.result
}

func (f *fakeTutor) calls() int {
	return len(f.plans) + len(f.questions) + len(f.concepts) + len(f.resources)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

// runCmd executes cmd and returns every message it produces, expanding
// batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliverResult runs cmd and feeds its resultMsg back into s.
func deliverResult(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if rm, ok := msg.(resultMsg); ok {
			s, _ = s.Update(rm)
			return s
		}
	}
	t.Fatal("command produced no result")
	return s
}

// focusButton tabs from the first field to the submit button.
func focusButton(s screen.Screen, fields int) screen.Screen {
	for i := 0; i < fields; i++ {
		s, _ = s.Update(specialKey(tea.KeyTab))
	}
	return s
}

func TestQuestions_EmptyFieldsWarn(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("unused")}
	f := NewQuestions(ft)
	f.Init()

	var s screen.Screen = focusButton(f, 3)
	s, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Fatal("expected no command when fields are empty")
	}
	if ft.calls() != 0 {
		t.Fatalf("expected no tutor calls, got %d", ft.calls())
	}
	if !strings.Contains(s.View(100, 40), MsgFillAllFields) {
		t.Error("expected fill-in warning in view")
	}
}

func TestQuestions_SubmitAndShowResult(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("1. What is 2/4 simplified?")}
	f := NewQuestions(ft)
	f.Init()

	var s screen.Screen = f
	s = typeText(s, "ratios")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s, _ = s.Update(specialKey(tea.KeyRight))
	s, _ = s.Update(specialKey(tea.KeyTab))
	s = typeText(s, "sign errors")
	s, _ = s.Update(specialKey(tea.KeyTab))

	s, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if !strings.Contains(s.View(100, 40), "Asking the tutor") {
		t.Error("expected loading indicator while waiting")
	}

	s = deliverResult(t, s, cmd)

	if len(ft.questions) != 1 {
		t.Fatalf("expected 1 questions call, got %d", len(ft.questions))
	}
	got := ft.questions[0]
	want := tutor.QuestionRequest{Topic: "ratios", Difficulty: tutor.DifficultyMedium, PreviousMistakes: "sign errors"}
	if got != want {
		t.Fatalf("request = %+v, want %+v", got, want)
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "Practice Questions:") {
		t.Error("expected subheader in result view")
	}
	if !strings.Contains(view, "What is 2/4 simplified?") {
		t.Error("expected generated text in result view")
	}

	// Enter returns to the form with values kept.
	s, _ = s.Update(specialKey(tea.KeyEnter))
	if !strings.Contains(s.View(100, 40), "ratios") {
		t.Error("expected previous input after returning to the form")
	}
}

func TestExplanation_TextSentAsTyped(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("ok")}
	f := NewExplanation(ft)
	f.Init()

	var s screen.Screen = f
	s = typeText(s, " long division ")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s = typeText(s, "remainders ")
	s, _ = s.Update(specialKey(tea.KeyTab))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	deliverResult(t, s, cmd)

	want := tutor.ConceptRequest{Topic: " long division ", StudentMistakes: "remainders "}
	if len(ft.concepts) != 1 || ft.concepts[0] != want {
		t.Fatalf("requests = %+v, want %+v", ft.concepts, want)
	}
}

func TestStudyPlan_NumericFields(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("Day 1")}
	f := NewStudyPlan(ft)
	f.Init()

	var s screen.Screen = f
	// Letters are ignored by number inputs; the field starts at its minimum.
	s = typeText(s, "x7")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s = typeText(s, "fractions")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s, _ = s.Update(specialKey(tea.KeyTab))

	s, cmd := s.Update(specialKey(tea.KeyEnter))
	deliverResult(t, s, cmd)

	if len(ft.plans) != 1 {
		t.Fatalf("expected 1 plan call, got %d", len(ft.plans))
	}
	got := ft.plans[0]
	if got.GradeLevel != "17" || got.WeakTopics != "fractions" || got.AvailableHours != "1" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestStudyPlan_BelowMinimum(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("unused")}
	f := NewStudyPlan(ft)
	f.Init()
	f.def.Fields[0].Input.SetValue("0")
	f.def.Fields[1].Input.SetValue("fractions")

	var s screen.Screen = focusButton(f, 3)
	s, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil || ft.calls() != 0 {
		t.Fatal("expected no call for a grade below the minimum")
	}
	if !strings.Contains(s.View(100, 40), "must be at least 1") {
		t.Error("expected minimum warning")
	}
}

func TestResources_TopicWarning(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("unused")}
	f := NewResources(ft)
	f.Init()

	var s screen.Screen = focusButton(f, 2)
	s, _ = s.Update(specialKey(tea.KeyEnter))

	if !strings.Contains(s.View(100, 40), "Please enter a topic.") {
		t.Error("expected topic warning")
	}
	if ft.calls() != 0 {
		t.Fatalf("expected no calls, got %d", ft.calls())
	}
}

func TestResources_UsesService(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := tutor.NewService(mock, tutor.DefaultConfig(), logging.Discard())
	f := NewResources(svc)
	f.Init()

	var s screen.Screen = typeText(f, "fractions")
	s = focusButton(s, 2)
	s, cmd := s.Update(specialKey(tea.KeyEnter))
	s = deliverResult(t, s, cmd)

	if mock.CallCount() != 0 {
		t.Fatalf("expected no completion calls, got %d", mock.CallCount())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Resources:") || !strings.Contains(view, "Keep practicing!") {
		t.Errorf("expected fixed encouragement under the subheader, got:\n%s", view)
	}
}

func TestExplanation_FailureShownInline(t *testing.T) {
	ft := &fakeTutor{result: tutor.Failure(tutor.KindAuth, errors.New("invalid api key"))}
	f := NewExplanation(ft)
	f.Init()

	var s screen.Screen = typeText(f, "slope")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s = typeText(s, "swapping rise and run")
	s, _ = s.Update(specialKey(tea.KeyTab))
	s, cmd := s.Update(specialKey(tea.KeyEnter))
	s = deliverResult(t, s, cmd)

	view := s.View(100, 40)
	if !strings.Contains(view, "Authentication error") {
		t.Errorf("expected inline auth error, got:\n%s", view)
	}
	if strings.Contains(view, "Concept Explanation:") {
		t.Error("did not expect the result subheader on failure")
	}
}

func TestStaleResultIgnored(t *testing.T) {
	ft := &fakeTutor{result: tutor.Success("text")}
	a := NewExplanation(ft)
	b := NewExplanation(ft)

	s, _ := b.Update(resultMsg{formID: a.id, result: tutor.Success("for a")})
	if strings.Contains(s.View(100, 40), "for a") {
		t.Error("screen rendered a result started by another screen")
	}
}
