package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/brainit/fastpath/internal/catalog"
	sess "github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screens/result"
	"github.com/brainit/fastpath/internal/ui/components"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestQuiz(ind catalog.Industry) (*QuizScreen, *sess.Session) {
	s := sess.NewSession()
	s.SelectIndustry(ind)
	return New(s, components.BooleanYesNo), s
}

func send(q *QuizScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = q.Update(m)
	}
	return cmd
}

// moveTo puts the cursor on the question with the given id.
func moveTo(t *testing.T, q *QuizScreen, id string) {
	t.Helper()
	for q.cursor > 0 {
		send(q, tea.KeyPressMsg{Code: tea.KeyUp})
	}
	for i := 0; i < len(q.session.Questions); i++ {
		if cur, _ := q.current(); cur.ID == id {
			return
		}
		send(q, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	t.Fatalf("question %q not found", id)
}

func TestNavigationClamps(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryBoutique)

	send(q, tea.KeyPressMsg{Code: tea.KeyUp})
	if q.cursor != 0 {
		t.Errorf("cursor = %d, want 0", q.cursor)
	}
	for range 20 {
		send(q, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if q.cursor != len(s.Questions)-1 {
		t.Errorf("cursor = %d, want %d", q.cursor, len(s.Questions)-1)
	}
}

func TestToggleAndYesNo(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryBoutique)
	moveTo(t, q, "pos_sync")

	send(q, tea.KeyPressMsg{Code: ' '})
	if !s.Answers["pos_sync"].IsYes() {
		t.Fatal("space should toggle an unanswered question to yes")
	}
	if got := q.ScoreBadge().Score; got != 2 {
		t.Errorf("score = %d, want 2", got)
	}

	send(q, press('n'))
	if s.Answers["pos_sync"].IsYes() {
		t.Error("n should record no")
	}
	send(q, press('y'))
	if !s.Answers["pos_sync"].IsYes() {
		t.Error("y should record yes")
	}
}

func TestChoiceCycles(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryDental)
	moveTo(t, q, "urgency")

	send(q, tea.KeyPressMsg{Code: tea.KeyRight})
	if got := s.Answers["urgency"].Choice; got != "low" {
		t.Fatalf("first right = %q, want low", got)
	}
	send(q, tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := s.Answers["urgency"].Choice; got != "high" {
		t.Errorf("left from low should wrap to high, got %q", got)
	}
	send(q, press('y'))
	if got := s.Answers["urgency"].Choice; got != "high" {
		t.Errorf("y on a choice question should be ignored, got %q", got)
	}
	if q.ScoreBadge().Score != 0 {
		t.Error("choice answers must not score")
	}
}

func TestSubmitRequiresAllAnswers(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryBoutique)
	moveTo(t, q, "booking")
	send(q, press('y'))

	if cmd := send(q, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatal("incomplete quiz should not submit")
	}
	if !strings.Contains(q.notice, "remaining") {
		t.Errorf("notice = %q", q.notice)
	}
	if cur, _ := q.current(); cur.ID != "ai_agent" {
		t.Errorf("cursor should jump to first unanswered question, got %q", cur.ID)
	}
	if s.Phase != sess.PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.Phase)
	}
}

func TestSubmitPushesResult(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryBoutique)
	yes := map[string]bool{"ai_agent": true, "pos_sync": true, "booking": true}
	for _, qq := range s.Questions {
		moveTo(t, q, qq.ID)
		switch {
		case qq.IsChoice():
			send(q, tea.KeyPressMsg{Code: tea.KeyLeft})
		case yes[qq.ID]:
			send(q, press('y'))
		default:
			send(q, press('n'))
		}
	}

	cmd := send(q, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("complete quiz should submit")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*result.ResultScreen); !ok {
		t.Fatalf("pushed %T, want *result.ResultScreen", push.Screen)
	}
	if s.Phase != sess.PhaseSubmitted {
		t.Errorf("phase = %v, want submitted", s.Phase)
	}
	if !strings.Contains(push.Screen.View(100, 30), "Book a $50 Pro Work Session") {
		t.Error("score 4 should recommend the mid tier")
	}
}

func TestClearKeepsIndustry(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryLegal)
	send(q, press('y'))
	send(q, press('c'))

	if len(s.Answers) != 0 {
		t.Errorf("answers = %d, want 0", len(s.Answers))
	}
	if s.Industry != catalog.IndustryLegal {
		t.Errorf("industry = %q", s.Industry)
	}
}

func TestResetAndIndustryPopToRoot(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryLegal)
	send(q, press('y'))

	cmd := send(q, press('i'))
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatal("i should pop to the picker")
	}
	if s.Industry != catalog.IndustryLegal {
		t.Error("changing industry keeps the session until a new pick")
	}

	cmd = send(q, press('r'))
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatal("r should pop to the picker")
	}
	if s.Phase != sess.PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
}

func TestKeyHintsFollowFocus(t *testing.T) {
	q, _ := newTestQuiz(catalog.IndustryCoffeeShop)
	hasKey := func(k string) bool {
		for _, h := range q.KeyHints() {
			if h.Key == k {
				return true
			}
		}
		return false
	}

	if !hasKey("Space") || hasKey("Enter") {
		t.Error("boolean focus should show toggle and hide submit")
	}
	moveTo(t, q, "urgency")
	if !hasKey("←→") {
		t.Error("choice focus should show the choose hint")
	}
}

func TestViewRendersQuestions(t *testing.T) {
	q, s := newTestQuiz(catalog.IndustryBoutique)
	view := q.View(100, 40)
	for _, qq := range s.Questions {
		if !strings.Contains(view, qq.Prompt) {
			t.Errorf("view missing prompt %q", qq.Prompt)
		}
	}
	if !strings.Contains(view, "High impact") {
		t.Error("weighted question should carry a badge")
	}
}
