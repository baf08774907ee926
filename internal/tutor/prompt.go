package tutor

import "fmt"

// System roles, one per use case.
const (
	studyPlanRole   = "You are an expert math tutor."
	questionsRole   = "You are a helpful math tutor."
	explanationRole = "You are a knowledgeable math tutor."
	resourcesRole   = "You are an expert math tutor providing engaging resources."
)

// KeepPracticing is returned by the resources use case below the mistake
// threshold, without contacting the completion service.
const KeepPracticing = "Keep practicing! If you struggle again, I will suggest additional resources."

// Values are inserted verbatim: no escaping, no trimming, no length limits.

// StudyPlanPrompt builds the study plan prompt.
func StudyPlanPrompt(req StudyPlanRequest) string {
	return fmt.Sprintf("Create a personalized 7-day math study plan for a student. "+
		"Grade Level: %s. Weak Topics: %s. Available Study Hours per Day: %s. "+
		"Focus on step-by-step explanations and adaptive practice.",
		req.GradeLevel, req.WeakTopics, req.AvailableHours)
}

// QuestionsPrompt builds the practice questions prompt.
func QuestionsPrompt(req QuestionRequest) string {
	return fmt.Sprintf("Generate 5 %s-level math problems on %s. "+
		"Consider previous mistakes: %s. Provide hints if needed.",
		req.Difficulty, req.Topic, req.PreviousMistakes)
}

// ExplanationPrompt builds the concept explanation prompt.
func ExplanationPrompt(req ConceptRequest) string {
	return fmt.Sprintf("Explain %s in simple terms with examples. "+
		"Address these common mistakes: %s. Provide real-world applications.",
		req.Topic, req.StudentMistakes)
}

// ResourcesPrompt builds the reinforcement resources prompt. Only the topic
// is part of the prompt; the mistake count decides whether it is sent at all.
func ResourcesPrompt(req ResourceRequest) string {
	return fmt.Sprintf("Suggest interactive videos, real-world applications, and gamified exercises "+
		"to help a student understand %s better.", req.Topic)
}
