package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/brainit/fastpath/internal/catalog"
	sess "github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screen"
	"github.com/brainit/fastpath/internal/screens/result"
	"github.com/brainit/fastpath/internal/ui/components"
	"github.com/brainit/fastpath/internal/ui/layout"
)

// QuizScreen shows the questions of the selected industry and collects
// answers until the user submits.
type QuizScreen struct {
	session *sess.Session
	style   components.BooleanStyle
	keys    components.KeyMap
	cursor  int
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ScoreProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a session that already has an industry.
func New(s *sess.Session, style components.BooleanStyle) *QuizScreen {
	return &QuizScreen{
		session: s,
		style:   style,
		keys:    components.DefaultKeyMap(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return string(q.session.Industry)
}

func (q *QuizScreen) ScoreBadge() layout.ScoreBadge {
	return layout.ScoreBadge{Score: q.session.Score(), Max: q.session.MaxScore()}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	submit := q.keys.Submit
	submit.SetEnabled(q.session.Complete())

	bindings := []key.Binding{q.keys.Up}
	if cur, ok := q.current(); ok && cur.IsChoice() {
		bindings = append(bindings, q.keys.Left)
	} else {
		bindings = append(bindings, q.keys.Toggle, q.keys.Yes)
	}
	bindings = append(bindings, submit, q.keys.Clear, q.keys.Reset, q.keys.Industry)
	return components.Hints(bindings...)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}
	return q, q.handleKey(kmsg)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	cur, hasCur := q.current()

	switch {
	case key.Matches(msg, q.keys.Up):
		if q.cursor > 0 {
			q.cursor--
		}
	case key.Matches(msg, q.keys.Down):
		if q.cursor < len(q.session.Questions)-1 {
			q.cursor++
		}

	case key.Matches(msg, q.keys.Toggle):
		if !hasCur {
			return nil
		}
		if cur.IsChoice() {
			q.cycle(cur, 1)
		} else {
			q.apply(q.session.Toggle(cur.ID))
		}
	case key.Matches(msg, q.keys.Yes):
		if hasCur && !cur.IsChoice() {
			q.apply(q.session.SetBool(cur.ID, true))
		}
	case key.Matches(msg, q.keys.No):
		if hasCur && !cur.IsChoice() {
			q.apply(q.session.SetBool(cur.ID, false))
		}
	case key.Matches(msg, q.keys.Left):
		if !hasCur {
			return nil
		}
		if cur.IsChoice() {
			q.cycle(cur, -1)
		} else {
			q.apply(q.session.SetBool(cur.ID, true))
		}
	case key.Matches(msg, q.keys.Right):
		if !hasCur {
			return nil
		}
		if cur.IsChoice() {
			q.cycle(cur, 1)
		} else {
			q.apply(q.session.SetBool(cur.ID, false))
		}

	case key.Matches(msg, q.keys.Submit):
		return q.submit()

	case key.Matches(msg, q.keys.Clear):
		q.session.ClearAnswers()
		q.notice = ""
	case key.Matches(msg, q.keys.Reset):
		q.session.Reset()
		return popToRoot
	case key.Matches(msg, q.keys.Industry):
		return popToRoot
	}
	return nil
}

func (q *QuizScreen) submit() tea.Cmd {
	res, err := q.session.Submit()
	if err != nil {
		if errors.Is(err, sess.ErrIncomplete) {
			missing := q.session.Missing()
			q.notice = fmt.Sprintf("Answer every question first (%d remaining).", len(missing))
			q.focus(missing[0])
		} else {
			q.notice = err.Error()
		}
		return nil
	}
	q.notice = ""
	next := result.New(q.session, res)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// cycle moves a choice answer by step, wrapping around. An unanswered
// question starts at the first option going forward and the last going back.
func (q *QuizScreen) cycle(cur catalog.Question, step int) {
	n := len(cur.Options)
	if n == 0 {
		return
	}
	idx := -1
	if a, ok := q.session.Answers[cur.ID]; ok {
		idx = cur.OptionIndex(a.Choice)
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + step + n) % n
	}
	q.apply(q.session.Choose(cur.ID, cur.Options[idx].Value))
}

func (q *QuizScreen) apply(err error) {
	if err != nil {
		q.notice = err.Error()
		return
	}
	q.notice = ""
}

func (q *QuizScreen) focus(id string) {
	for i, qq := range q.session.Questions {
		if qq.ID == id {
			q.cursor = i
			return
		}
	}
}

func (q *QuizScreen) current() (catalog.Question, bool) {
	if q.cursor < 0 || q.cursor >= len(q.session.Questions) {
		return catalog.Question{}, false
	}
	return q.session.Questions[q.cursor], true
}

func popToRoot() tea.Msg {
	return router.PopToRootMsg{}
}
