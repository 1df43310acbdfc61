package quiz

import (
	"errors"

	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/engine"
)

// Phase represents where a session is in the quiz flow.
type Phase int

const (
	PhaseIdle             Phase = iota // No industry chosen
	PhaseIndustrySelected              // Industry chosen, questions loaded
	PhaseAnswering                     // Collecting answers
	PhaseSubmitted                     // Recommendation computed
)

// String returns a short name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseIndustrySelected:
		return "industry-selected"
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	ErrNoIndustry      = errors.New("no industry selected")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrWrongKind       = errors.New("answer kind does not match question")
	ErrUnknownOption   = errors.New("unknown option")
	ErrIncomplete      = errors.New("not all questions answered")
)

// AdvisoryNote accompanies every recommendation.
const AdvisoryNote = "This tool is advisory. For complex setups, book a session."

// UrgencyQuestion is the informational choice question shown with a result.
const UrgencyQuestion = "urgency"

// ChoiceAnswer echoes an informational choice answer on the result.
type ChoiceAnswer struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Value      string `json:"value"`
	Label      string `json:"label"`
}

// Result is what a submitted session yields.
type Result struct {
	SessionID      string                `json:"session_id"`
	Industry       catalog.Industry      `json:"industry"`
	Score          int                   `json:"score"`
	MaxScore       int                   `json:"max_score"`
	Recommendation engine.Recommendation `json:"recommendation"`
	Choices        []ChoiceAnswer        `json:"choices,omitempty"`
}

// Choice returns the echoed choice answer for a question id.
func (r Result) Choice(questionID string) (ChoiceAnswer, bool) {
	for _, c := range r.Choices {
		if c.QuestionID == questionID {
			return c, true
		}
	}
	return ChoiceAnswer{}, false
}
