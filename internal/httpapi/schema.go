package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// Schema names, one per endpoint.
const (
	schemaStudyPlan   = "study_plan"
	schemaQuestions   = "questions"
	schemaExplanation = "explanation"
	schemaResources   = "resources"
)

// countField accepts a JSON integer at or above min, or a string of digits
// holding such a value. The web page posts numbers as strings. min is 0 or 1.
func countField(min int) map[string]any {
	return map[string]any{
		"oneOf": []any{
			map[string]any{"type": "integer", "minimum": min},
			map[string]any{"type": "string", "pattern": digitsPattern(min)},
		},
	}
}

func digitsPattern(min int) string {
	if min >= 1 {
		return `^\s*0*[1-9][0-9]*\s*$`
	}
	return `^\s*[0-9]+\s*$`
}

var textField = map[string]any{"type": "string"}

func objectSchema(props map[string]any) map[string]any {
	required := make([]any, 0, len(props))
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		required = append(required, k)
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// requestSchemas returns the request body schemas keyed by name.
func requestSchemas() map[string]map[string]any {
	return map[string]map[string]any{
		schemaStudyPlan: objectSchema(map[string]any{
			"grade_level":     countField(1),
			"weak_topics":     textField,
			"available_hours": countField(1),
		}),
		schemaQuestions: objectSchema(map[string]any{
			"topic":             textField,
			"difficulty":        textField,
			"previous_mistakes": textField,
		}),
		schemaExplanation: objectSchema(map[string]any{
			"topic":            textField,
			"student_mistakes": textField,
		}),
		schemaResources: objectSchema(map[string]any{
			"topic":         textField,
			"mistake_count": countField(0),
		}),
	}
}

// compileSchemas compiles every request schema once.
func compileSchemas() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	defs := requestSchemas()
	for name, def := range defs {
		// The compiler wants a decoded JSON document, not Go literals.
		raw, err := json.Marshal(def)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := c.AddResource(schemaURL(name), doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	compiled := make(map[string]*jsonschema.Schema, len(defs))
	for name := range defs {
		sch, err := c.Compile(schemaURL(name))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		compiled[name] = sch
	}
	return compiled, nil
}

func schemaURL(name string) string {
	return fmt.Sprintf("schema://mathplanner/%s.json", name)
}

// msgMissingFields is reported when the body is not an object or lacks a
// required key.
const msgMissingFields = "Missing required fields"

// describeValidation turns a schema failure into a short client message.
func describeValidation(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return "Invalid request: " + err.Error()
	}
	if hasMissing(verr) {
		return msgMissingFields
	}

	fields := invalidFields(verr, map[string]bool{})
	if len(fields) == 0 {
		return msgMissingFields
	}
	sort.Strings(fields)
	return "Invalid value for " + strings.Join(fields, ", ")
}
func hasMissing(e *jsonschema.ValidationError) bool {
	switch e.ErrorKind.(type) {
	case *kind.Required:
		return true
	case *kind.Type:
		// The body itself is not an object.
		if len(e.InstanceLocation) == 0 {
			return true
		}
	}
	for _, c := range e.Causes {
		if hasMissing(c) {
			return true
		}
	}
	return false
}

func invalidFields(e *jsonschema.ValidationError, seen map[string]bool) []string {
	var out []string
	if len(e.InstanceLocation) > 0 {
		name := e.InstanceLocation[0]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, c := range e.Causes {
		out = append(out, invalidFields(c, seen)...)
	}
	return out
}
