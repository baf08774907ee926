package tutor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathplanner/internal/llm"
)

// Tutor is the set of student-facing use cases. Every front end depends on
// this interface only.
type Tutor interface {
	BuildStudyPlan(ctx context.Context, req StudyPlanRequest) Result
	BuildQuestions(ctx context.Context, req QuestionRequest) Result
	BuildExplanation(ctx context.Context, req ConceptRequest) Result
	BuildResources(ctx context.Context, req ResourceRequest) Result
}

// Use case labels attached to each completion call.
const (
	UseCaseStudyPlan   = "study-plan"
	UseCaseQuestions   = "questions"
	UseCaseExplanation = "explanation"
	UseCaseResources   = "resources"
)

// Service composes the prompt builders with a Client.
type Service struct {
	client *Client
	cfg    Config
	log    logrus.FieldLogger
}

var _ Tutor = (*Service)(nil)

// NewService creates a Service whose calls go to provider.
func NewService(provider llm.Provider, cfg Config, log logrus.FieldLogger) *Service {
	return &Service{
		client: NewClient(provider, cfg.Timeout),
		cfg:    cfg,
		log:    log,
	}
}

// BuildStudyPlan generates a personalized 7-day study plan.
func (s *Service) BuildStudyPlan(ctx context.Context, req StudyPlanRequest) Result {
	log := s.log.WithFields(logrus.Fields{
		"grade_level":     req.GradeLevel.String(),
		"weak_topics":     req.WeakTopics,
		"available_hours": req.AvailableHours.String(),
	})
	log.Info("generating study plan")

	return s.complete(ctx, log, UseCaseStudyPlan, "study plan", studyPlanRole, StudyPlanPrompt(req))
}

// BuildQuestions generates five practice problems.
func (s *Service) BuildQuestions(ctx context.Context, req QuestionRequest) Result {
	log := s.log.WithFields(logrus.Fields{
		"topic":             req.Topic,
		"difficulty":        string(req.Difficulty),
		"previous_mistakes": req.PreviousMistakes,
	})
	log.Info("generating questions")

	return s.complete(ctx, log, UseCaseQuestions, "questions", questionsRole, QuestionsPrompt(req))
}

// BuildExplanation explains a concept and addresses common mistakes.
func (s *Service) BuildExplanation(ctx context.Context, req ConceptRequest) Result {
	log := s.log.WithFields(logrus.Fields{
		"topic":            req.Topic,
		"student_mistakes": req.StudentMistakes,
	})
	log.Info("explaining concept")

	return s.complete(ctx, log, UseCaseExplanation, "explanation", explanationRole, ExplanationPrompt(req))
}

// BuildResources suggests reinforcement resources once the mistake count
// exceeds the threshold. At or below it the fixed KeepPracticing text is
// returned and nothing is sent.
func (s *Service) BuildResources(ctx context.Context, req ResourceRequest) Result {
	log := s.log.WithFields(logrus.Fields{
		"topic":         req.Topic,
		"mistake_count": req.MistakeCount.String(),
	})

	count, err := req.MistakeCount.Int()
	if err != nil {
		log.WithError(err).Error("error reinforcing resources")
		return Failure(KindInvalidInput, err)
	}
	if count <= s.cfg.ResourceThreshold {
		log.Debug("below resource threshold, not calling the tutor")
		return Success(KeepPracticing)
	}

	log.Info("reinforcing resources")
	return s.complete(ctx, log, UseCaseResources, "resources", resourcesRole, ResourcesPrompt(req))
}

func (s *Service) complete(ctx context.Context, log logrus.FieldLogger, useCase, what, role, prompt string) Result {
	res := s.client.Complete(llm.WithUseCase(ctx, useCase), role, prompt)
	if res.Failed() {
		log.WithError(res.Cause).WithField("kind", res.Kind.String()).Errorf("error generating %s", what)
	}
	return res
}
