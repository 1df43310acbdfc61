package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/engine"
)

// Session tracks the transient state of one quiz visit. It is owned by a
// single caller and passed by pointer; nothing in it is shared.
type Session struct {
	// ID is regenerated every time an industry is selected.
	ID string

	// Industry is the selected industry ("" while idle).
	Industry catalog.Industry

	// Questions is the catalog slice for Industry.
	Questions []catalog.Question

	// Answers holds the responses recorded so far.
	Answers engine.Answers

	// Phase is the current flow phase.
	Phase Phase

	catalog     *catalog.Catalog
	recommender *engine.Recommender
	logger      *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCatalog overrides the question catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// WithRecommender overrides the score-to-recommendation mapping. A nil
// recommender keeps the default.
func WithRecommender(r *engine.Recommender) Option {
	return func(s *Session) {
		if r != nil {
			s.recommender = r
		}
	}
}

// WithLogger attaches a logger for phase transitions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		Answers:     engine.Answers{},
		Phase:       PhaseIdle,
		catalog:     catalog.Default(),
		recommender: engine.DefaultRecommender(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog questions are loaded from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Recommender returns the recommender used on submit.
func (s *Session) Recommender() *engine.Recommender {
	return s.recommender
}

// SelectIndustry loads the industry's questions and starts answering with an
// empty answer set. It is valid from any phase.
func (s *Session) SelectIndustry(ind catalog.Industry) {
	s.Industry = ind
	s.Questions = s.catalog.QuestionsFor(ind)
	s.Answers = engine.Answers{}
	s.ID = uuid.New().String()
	s.setPhase(PhaseIndustrySelected)
	s.setPhase(PhaseAnswering)

	s.logger.Info("industry selected",
		zap.String("session", s.ID),
		zap.String("industry", string(ind)),
		zap.Int("questions", len(s.Questions)))
}

// Reset returns unconditionally to idle.
func (s *Session) Reset() {
	s.Industry = ""
	s.Questions = nil
	s.Answers = engine.Answers{}
	s.ID = ""
	s.setPhase(PhaseIdle)
}

// ClearAnswers drops all answers but keeps the industry.
func (s *Session) ClearAnswers() {
	if s.Phase == PhaseIdle {
		return
	}
	s.Answers = engine.Answers{}
	s.setPhase(PhaseAnswering)
}

// Question returns the loaded question with the given id.
func (s *Session) Question(id string) (catalog.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return catalog.Question{}, false
}

// SetBool records a yes/no answer for a boolean question.
func (s *Session) SetBool(id string, yes bool) error {
	q, err := s.lookup(id)
	if err != nil {
		return err
	}
	if q.IsChoice() {
		return fmt.Errorf("set %q: %w", id, ErrWrongKind)
	}
	s.record(id, engine.Bool(yes))
	return nil
}

// Toggle flips a boolean answer. An unanswered question becomes yes.
func (s *Session) Toggle(id string) error {
	return s.SetBool(id, !s.Answers[id].IsYes())
}

// Choose records an option value for a choice question.
func (s *Session) Choose(id, value string) error {
	q, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !q.IsChoice() {
		return fmt.Errorf("choose %q: %w", id, ErrWrongKind)
	}
	if _, ok := q.Option(value); !ok {
		return fmt.Errorf("choose %q=%q: %w", id, value, ErrUnknownOption)
	}
	s.record(id, engine.Choice(value))
	return nil
}

// Score returns the live score of the current answers.
func (s *Session) Score() int {
	return engine.Score(s.Questions, s.Answers)
}

// MaxScore returns the highest reachable score for the loaded questions.
func (s *Session) MaxScore() int {
	total := 0
	for _, q := range s.Questions {
		total += q.EffectiveWeight()
	}
	return total
}

// Complete reports whether every loaded question is answered.
func (s *Session) Complete() bool {
	return s.Phase != PhaseIdle && engine.Complete(s.Questions, s.Answers)
}

// Missing returns the ids of unanswered questions.
func (s *Session) Missing() []string {
	return engine.Missing(s.Questions, s.Answers)
}

// Submit computes the recommendation once every question is answered.
func (s *Session) Submit() (Result, error) {
	if s.Phase == PhaseIdle {
		return Result{}, ErrNoIndustry
	}
	if missing := s.Missing(); len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: %d remaining", ErrIncomplete, len(missing))
	}
	return s.SubmitPartial(), nil
}

// SubmitPartial computes the recommendation regardless of missing answers,
// which count as no. It never fails.
func (s *Session) SubmitPartial() Result {
	score := s.Score()
	res := Result{
		SessionID:      s.ID,
		Industry:       s.Industry,
		Score:          score,
		MaxScore:       s.MaxScore(),
		Recommendation: s.recommender.Recommend(score),
		Choices:        s.choices(),
	}
	if s.Phase != PhaseIdle {
		s.setPhase(PhaseSubmitted)
	}

	s.logger.Info("quiz submitted",
		zap.String("session", s.ID),
		zap.String("industry", string(s.Industry)),
		zap.Int("score", score),
		zap.Stringer("tier", res.Recommendation.Tier))
	return res
}

func (s *Session) lookup(id string) (catalog.Question, error) {
	if s.Phase == PhaseIdle {
		return catalog.Question{}, ErrNoIndustry
	}
	q, ok := s.Question(id)
	if !ok {
		return catalog.Question{}, fmt.Errorf("%q: %w", id, ErrUnknownQuestion)
	}
	return q, nil
}

// record stores an answer. Editing after submit re-opens the quiz.
func (s *Session) record(id string, a engine.Answer) {
	s.Answers[id] = a
	if s.Phase != PhaseAnswering {
		s.setPhase(PhaseAnswering)
	}
}

func (s *Session) choices() []ChoiceAnswer {
	var out []ChoiceAnswer
	for _, q := range s.Questions {
		if !q.IsChoice() {
			continue
		}
		a, ok := s.Answers[q.ID]
		if !ok || a.Kind != catalog.KindChoice {
			continue
		}
		opt, ok := q.Option(a.Choice)
		if !ok {
			continue
		}
		out = append(out, ChoiceAnswer{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Value:      opt.Value,
			Label:      opt.Label,
		})
	}
	return out
}

func (s *Session) setPhase(p Phase) {
	if s.Phase == p {
		return
	}
	s.logger.Debug("phase change",
		zap.String("session", s.ID),
		zap.Stringer("from", s.Phase),
		zap.Stringer("to", p))
	s.Phase = p
}
