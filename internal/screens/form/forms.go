package form

import (
	"context"

	"github.com/abhisek/mathplanner/internal/tutor"
	"github.com/abhisek/mathplanner/internal/ui/components"
)

// Field keys.
const (
	keyGradeLevel       = "grade_level"
	keyWeakTopics       = "weak_topics"
	keyAvailableHours   = "available_hours"
	keyTopic            = "topic"
	keyDifficulty       = "difficulty"
	keyPreviousMistakes = "previous_mistakes"
	keyStudentMistakes  = "student_mistakes"
	keyMistakeCount     = "mistake_count"
)

func textField(key, label, placeholder string) Field {
	in := components.NewTextInput(label, placeholder, 200)
	return Field{Key: key, Input: &in}
}

func numberField(key, label string, min int) Field {
	in := components.NewNumberInput(label, min)
	return Field{Key: key, Input: &in}
}

func difficultyField() Field {
	opts := make([]string, len(tutor.Difficulties))
	for i, d := range tutor.Difficulties {
		opts[i] = string(d)
	}
	sel := components.NewSelect("Select difficulty level:", opts)
	return Field{Key: keyDifficulty, Choice: &sel}
}

// NewStudyPlan returns the study plan form.
func NewStudyPlan(t tutor.Tutor) *Screen {
	return New(Definition{
		Title:     "Study Plan",
		Heading:   "Generate Study Plan",
		Subheader: "Study Plan:",
		Button:    "Generate Study Plan",
		Warning:   MsgFillAllFields,
		Fields: []Field{
			numberField(keyGradeLevel, "Enter your grade level (e.g., 6, 7, 8):", 1),
			textField(keyWeakTopics, "Enter weak math topics (comma-separated):", "fractions, decimals"),
			numberField(keyAvailableHours, "Enter available study hours per day:", 1),
		},
		Submit: func(ctx context.Context, v map[string]string) tutor.Result {
			return t.BuildStudyPlan(ctx, tutor.StudyPlanRequest{
				GradeLevel:     tutor.Number(v[keyGradeLevel]),
				WeakTopics:     v[keyWeakTopics],
				AvailableHours: tutor.Number(v[keyAvailableHours]),
			})
		},
	})
}

// NewQuestions returns the practice questions form.
func NewQuestions(t tutor.Tutor) *Screen {
	return New(Definition{
		Title:     "Practice Questions",
		Heading:   "Adaptive Practice Questions",
		Subheader: "Practice Questions:",
		Button:    "Generate Questions",
		Warning:   MsgFillAllFields,
		Fields: []Field{
			textField(keyTopic, "Enter a math topic for practice questions:", "ratios"),
			difficultyField(),
			textField(keyPreviousMistakes, "List common mistakes you've made (comma-separated):", "sign errors"),
		},
		Submit: func(ctx context.Context, v map[string]string) tutor.Result {
			return t.BuildQuestions(ctx, tutor.QuestionRequest{
				Topic:            v[keyTopic],
				Difficulty:       tutor.Difficulty(v[keyDifficulty]),
				PreviousMistakes: v[keyPreviousMistakes],
			})
		},
	})
}

// NewExplanation returns the concept explanation form.
func NewExplanation(t tutor.Tutor) *Screen {
	return New(Definition{
		Title:     "Concept Explanation",
		Heading:   "Concept Explanation",
		Subheader: "Concept Explanation:",
		Button:    "Explain Concept",
		Warning:   MsgFillAllFields,
		Fields: []Field{
			textField(keyTopic, "Enter a math topic for explanation:", "slope"),
			textField(keyStudentMistakes, "List common mistakes (comma-separated):", "rise over run swapped"),
		},
		Submit: func(ctx context.Context, v map[string]string) tutor.Result {
			return t.BuildExplanation(ctx, tutor.ConceptRequest{
				Topic:           v[keyTopic],
				StudentMistakes: v[keyStudentMistakes],
			})
		},
	})
}

// NewResources returns the additional resources form.
func NewResources(t tutor.Tutor) *Screen {
	return New(Definition{
		Title:     "Resources",
		Heading:   "Additional Learning Resources",
		Subheader: "Resources:",
		Button:    "Get Resources",
		Warning:   "Please enter a topic.",
		Fields: []Field{
			textField(keyTopic, "Enter a math topic:", "percentages"),
			numberField(keyMistakeCount, "How many times have you struggled with this topic?", 0),
		},
		Submit: func(ctx context.Context, v map[string]string) tutor.Result {
			return t.BuildResources(ctx, tutor.ResourceRequest{
				Topic:        v[keyTopic],
				MistakeCount: tutor.Number(v[keyMistakeCount]),
			})
		},
	})
}
