package catalog

// Kind is the answer type of a question.
type Kind string

const (
	KindBoolean Kind = "boolean"
	KindChoice  Kind = "choice"
)

// HighImpactWeight is the weight at which a question is flagged as high impact.
const HighImpactWeight = 2

// Option is one selectable value of a choice question.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Question is a single quiz item.
type Question struct {
	ID          string   `json:"id" yaml:"id"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        Kind     `json:"kind" yaml:"kind"`
	Weight      int      `json:"weight,omitempty" yaml:"weight,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// IsChoice reports whether the question takes one of its options as answer.
// An empty Kind means boolean.
func (q Question) IsChoice() bool {
	return q.Kind == KindChoice
}

// EffectiveWeight returns the points the question is worth when answered yes.
// Choice questions are worth nothing.
func (q Question) EffectiveWeight() int {
	if q.IsChoice() {
		return 0
	}
	if q.Weight == 0 {
		return 1
	}
	return q.Weight
}

// HighImpact reports whether the question carries extra weight.
func (q Question) HighImpact() bool {
	return !q.IsChoice() && q.EffectiveWeight() >= HighImpactWeight
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of value in Options, or -1.
func (q Question) OptionIndex(value string) int {
	for i, o := range q.Options {
		if o.Value == value {
			return i
		}
	}
	return -1
}
