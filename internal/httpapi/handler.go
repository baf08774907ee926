package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathplanner/internal/logging"
	"github.com/abhisek/mathplanner/internal/tutor"
)

// GenerateStudyPlan handles POST /generate_study_plan.
func (h *Handler) GenerateStudyPlan(w http.ResponseWriter, r *http.Request) {
	serveUseCase(h, w, r, schemaStudyPlan, "Failed to generate study plan", h.tutor.BuildStudyPlan)
}

// GenerateQuestions handles POST /generate_questions.
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	serveUseCase(h, w, r, schemaQuestions, "Failed to generate questions", h.tutor.BuildQuestions)
}

// ExplainConcept handles POST /explain_concept.
func (h *Handler) ExplainConcept(w http.ResponseWriter, r *http.Request) {
	serveUseCase(h, w, r, schemaExplanation, "Failed to explain concept", h.tutor.BuildExplanation)
}

// ReinforceResources handles POST /reinforce_resources.
func (h *Handler) ReinforceResources(w http.ResponseWriter, r *http.Request) {
	serveUseCase(h, w, r, schemaResources, "Failed to reinforce resources", h.tutor.BuildResources)
}

// TestData echoes a well-formed JSON body back unchanged.
func (h *Handler) TestData(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	body, ok := readBody(w, r)
	if !ok {
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	log.WithField("body", string(body)).Debug("test data received")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// serveUseCase validates the body against the named schema, decodes it into
// Req and renders the use case Result.
func serveUseCase[Req any](h *Handler, w http.ResponseWriter, r *http.Request, schema, failure string,
	run func(context.Context, Req) tutor.Result) {
	log := logging.FromContext(r.Context()).WithField("endpoint", schema)

	body, ok := readBody(w, r)
	if !ok {
		return
	}
	log.WithField("body", string(body)).Debug("request received")

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("rejecting malformed JSON")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.schemas[schema].Validate(doc); err != nil {
		msg := describeValidation(err)
		log.WithField("reason", msg).Warn("rejecting invalid request")
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var req Req
	if err := json.Unmarshal(body, &req); err != nil {
		log.WithError(err).Warn("rejecting undecodable request")
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res := run(r.Context(), req)
	switch {
	case res.Kind == tutor.KindInvalidInput:
		writeError(w, http.StatusBadRequest, "Invalid request: "+res.Cause.Error())
	case res.Failed():
		writeError(w, http.StatusInternalServerError, failure)
	default:
		writeJSON(w, http.StatusOK, resultBody{Result: res.Text})
	}
}

// readBody reads at most maxBodyBytes and writes the error reply itself
// when it cannot.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil {
		return body, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return nil, false
	}
	writeError(w, http.StatusBadRequest, "Could not read request body")
	return nil, false
}
