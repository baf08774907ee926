// Package httpapi exposes the tutor use cases as a JSON HTTP API and serves
// the landing page that drives it.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathplanner/internal/tutor"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// Options configures NewRouter.
type Options struct {
	Tutor tutor.Tutor
	Log   logrus.FieldLogger
}

// Handler serves the tutor endpoints.
type Handler struct {
	tutor   tutor.Tutor
	log     logrus.FieldLogger
	schemas map[string]*jsonschema.Schema
}

// NewHandler compiles the request schemas and returns a Handler.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Tutor == nil {
		return nil, fmt.Errorf("httpapi: tutor is required")
	}
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{tutor: opts.Tutor, log: log, schemas: schemas}, nil
}

// NewRouter builds the full route table.
func NewRouter(opts Options) (http.Handler, error) {
	h, err := NewHandler(opts)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/", serveIndex)
	r.Get("/script.js", serveScript)
	r.Get("/js/script.js", serveScript)
	r.Get("/healthcheck", healthcheck)

	r.Post("/generate_study_plan", h.GenerateStudyPlan)
	r.Post("/generate_questions", h.GenerateQuestions)
	r.Post("/explain_concept", h.ExplainConcept)
	r.Post("/reinforce_resources", h.ReinforceResources)
	r.Post("/test_data", h.TestData)

	return r, nil
}
