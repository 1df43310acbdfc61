package engine

import "github.com/brainit/fastpath/internal/catalog"

// Answer is the recorded response to one question: a yes/no for boolean
// questions or an option value for choice questions.
type Answer struct {
	Kind   catalog.Kind
	Yes    bool
	Choice string
}

// Bool returns a boolean answer.
func Bool(v bool) Answer {
	return Answer{Kind: catalog.KindBoolean, Yes: v}
}

// Choice returns a choice answer.
func Choice(value string) Answer {
	return Answer{Kind: catalog.KindChoice, Choice: value}
}

// IsYes reports whether the answer is exactly boolean true.
func (a Answer) IsYes() bool {
	return a.Kind == catalog.KindBoolean && a.Yes
}

// Answers maps question ids to answers for a single quiz session.
type Answers map[string]Answer

// Clone returns a copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Answered reports whether q has an answer of the matching kind.
func (a Answers) Answered(q catalog.Question) bool {
	ans, ok := a[q.ID]
	if !ok {
		return false
	}
	if q.IsChoice() {
		if ans.Kind != catalog.KindChoice {
			return false
		}
		_, valid := q.Option(ans.Choice)
		return valid
	}
	return ans.Kind == catalog.KindBoolean
}

// Complete reports whether every question has an answer.
func Complete(questions []catalog.Question, answers Answers) bool {
	return len(Missing(questions, answers)) == 0
}

// Missing returns the ids of unanswered questions in catalog order.
func Missing(questions []catalog.Question, answers Answers) []string {
	var ids []string
	for _, q := range questions {
		if !answers.Answered(q) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
