package tutor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Difficulty is the level of generated practice questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the selectable difficulty levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Number is a non-negative count as entered by a student. It keeps the text
// it was given so prompts repeat the value exactly as typed, and accepts
// either a JSON number or a JSON string of digits.
type Number string

// NumberOf returns the Number for n.
func NumberOf(n int) Number {
	return Number(strconv.Itoa(n))
}

// numberSyntax is a JSON number: sign, integer part, optional fraction and
// exponent.
var numberSyntax = regexp.MustCompile(`^(-?)([0-9]+)(?:\.([0-9]+))?(?:[eE]([+-]?[0-9]+))?$`)

// maxDigits is the length beyond which a decimal integer cannot fit an
// int64.
const maxDigits = 19

// Int parses the number. Integer-valued forms such as 3.0 and 1e1 are
// accepted. Values too large for an int saturate at math.MaxInt (or
// math.MinInt when negative), which keeps every comparison against a small
// threshold correct.
func (n Number) Int() (int, error) {
	m := numberSyntax.FindStringSubmatch(strings.TrimSpace(string(n)))
	if m == nil {
		return 0, fmt.Errorf("parse number %q: not a number", string(n))
	}
	negative, digits, frac := m[1] == "-", m[2]+m[3], m[3]

	exp := 0
	if m[4] != "" {
		e, err := strconv.Atoi(m[4])
		if errors.Is(err, strconv.ErrRange) {
			e = math.MaxInt32
			if strings.HasPrefix(m[4], "-") {
				e = math.MinInt32
			}
		} else if err != nil {
			return 0, fmt.Errorf("parse number %q: %w", string(n), err)
		}
		exp = max(min(e, math.MaxInt32), math.MinInt32)
	}
	exp -= len(frac)

	digits = strings.TrimLeft(digits, "0")
	for strings.HasSuffix(digits, "0") {
		digits = digits[:len(digits)-1]
		exp++
	}
	if digits == "" {
		return 0, nil
	}
	if exp < 0 {
		return 0, fmt.Errorf("parse number %q: not a whole number", string(n))
	}

	saturated := math.MaxInt
	if negative {
		saturated = math.MinInt
	}
	if len(digits)+exp > maxDigits {
		return saturated, nil
	}
	v, err := strconv.ParseInt(digits+strings.Repeat("0", exp), 10, 64)
	if err != nil || v > math.MaxInt {
		return saturated, nil
	}
	if negative {
		v = -v
	}
	return int(v), nil
}

func (n Number) String() string {
	return string(n)
}

// UnmarshalJSON accepts 7 as well as "7".
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("number must be an integer or a string: %w", err)
	}
	*n = Number(num.String())
	return nil
}

// StudyPlanRequest asks for a personalized 7-day study plan.
type StudyPlanRequest struct {
	GradeLevel     Number `json:"grade_level"`
	WeakTopics     string `json:"weak_topics"`
	AvailableHours Number `json:"available_hours"`
}

// QuestionRequest asks for five practice problems.
type QuestionRequest struct {
	Topic            string     `json:"topic"`
	Difficulty       Difficulty `json:"difficulty"`
	PreviousMistakes string     `json:"previous_mistakes"`
}

// ConceptRequest asks for a plain-language explanation of a topic.
type ConceptRequest struct {
	Topic           string `json:"topic"`
	StudentMistakes string `json:"student_mistakes"`
}

// ResourceRequest asks for reinforcement resources once a student has
// struggled with a topic often enough.
type ResourceRequest struct {
	Topic        string `json:"topic"`
	MistakeCount Number `json:"mistake_count"`
}

// ErrorKind tags a failed Result.
type ErrorKind int

const (
	// KindNone marks a successful result.
	KindNone ErrorKind = iota
	// KindAuth means the configured credential is missing or was rejected.
	KindAuth
	// KindService covers every other transport or response failure.
	KindService
	// KindInvalidInput means a request field could not be interpreted.
	// No call is made.
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuth:
		return "auth"
	case KindService:
		return "service"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Result is the outcome of one use case: either complete text or a complete
// failure, never both.
type Result struct {
	Text  string
	Kind  ErrorKind
	Cause error
}

// Success wraps completion text.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure wraps a failure of the given kind.
func Failure(kind ErrorKind, cause error) Result {
	return Result{Kind: kind, Cause: cause}
}

// Failed reports whether the result carries no text.
func (r Result) Failed() bool {
	return r.Kind != KindNone
}
