package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/brainit/fastpath/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	resumed int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// resumingScreen records Resume calls.
type resumingScreen struct{ stubScreen }

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "industry"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "industry"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopResumesUncovered(t *testing.T) {
	root := &resumingScreen{stubScreen{title: "industry"}}
	quiz := &resumingScreen{stubScreen{title: "quiz"}}
	r := New(root)
	r.Push(quiz)
	r.Push(&stubScreen{title: "result"})

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "quiz" {
		t.Fatalf("expected active 'quiz', got %q", r.Active().Title())
	}
	if quiz.resumed != 1 {
		t.Errorf("quiz should be resumed once, got %d", quiz.resumed)
	}
	if root.resumed != 0 {
		t.Errorf("root should not be resumed yet, got %d", root.resumed)
	}
}

func TestPopToRoot(t *testing.T) {
	root := &resumingScreen{stubScreen{title: "industry"}}
	r := New(root)
	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "result"})

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "industry" {
		t.Errorf("expected root active, got %q", r.Active().Title())
	}
	if root.resumed != 1 {
		t.Errorf("root should be resumed once, got %d", root.resumed)
	}

	r.PopToRoot()
	if root.resumed != 1 {
		t.Errorf("pop-to-root at root should be a no-op, resumed=%d", root.resumed)
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})
	r.Push(&stubScreen{title: "quiz"})

	s3 := &stubScreen{title: "industry"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("replace should preserve depth, got %d", r.Depth())
	}
	if r.Active() != s3 {
		t.Error("expected replaced screen to be active")
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "industry"}
	s2 := &stubScreen{title: "quiz"}
	r := New(s1)
	r.Push(s2)

	r.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if len(s2.got) != 1 {
		t.Errorf("active screen should receive the message, got %d", len(s2.got))
	}
	if len(s1.got) != 0 {
		t.Error("covered screen should not receive messages")
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "industry"})
	if got := r.View(80, 24); got != "industry" {
		t.Errorf("View() = %q, want %q", got, "industry")
	}
}
