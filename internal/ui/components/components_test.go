package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/engine"
)

type pickedMsg struct{ label string }

func testMenu() Menu {
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{
			Label:    label,
			Disabled: disabled,
			Action: func() tea.Cmd {
				return func() tea.Msg { return pickedMsg{label: label} }
			},
		}
	}
	return NewMenu([]MenuItem{
		item("Boutique", false),
		item("Hidden", true),
		item("Legal", false),
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("down should skip disabled item, selected=%d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("up should skip disabled item, selected=%d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m.Select(2)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	msg, ok := cmd().(pickedMsg)
	if !ok || msg.label != "Legal" {
		t.Errorf("got %#v, want pickedMsg{Legal}", msg)
	}
}

func TestMenu_SelectIgnoresDisabled(t *testing.T) {
	m := testMenu()
	m.Select(1)
	if m.Selected != 0 {
		t.Errorf("Select on disabled item should be ignored, selected=%d", m.Selected)
	}
}

func TestMenu_ViewMarksSelection(t *testing.T) {
	v := testMenu().View()
	if !strings.Contains(v, "▸ Boutique") {
		t.Errorf("selected item should be marked:\n%s", v)
	}
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 6, 0},
		{3, 6, 0.5},
		{9, 6, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := NewProgressBar("", tt.done, tt.total, 40).Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
	if v := NewProgressBar("Answered", 2, 6, 40).View(); !strings.Contains(v, "2/6") {
		t.Errorf("progress view should show counter:\n%s", v)
	}
}

func TestQuestionRow_Styles(t *testing.T) {
	q := catalog.Question{ID: "pos_sync", Prompt: "Sync?", Kind: catalog.KindBoolean, Weight: 2}

	checked := QuestionRow{Question: q, Answer: engine.Bool(true), Answered: true, Style: BooleanCheckbox}.View(60)
	if !strings.Contains(checked, "[x]") {
		t.Errorf("checkbox style should show a checked box:\n%s", checked)
	}
	if !strings.Contains(checked, "High impact") {
		t.Errorf("weight-2 question should carry the badge:\n%s", checked)
	}

	unanswered := QuestionRow{Question: q, Style: BooleanYesNo}.View(60)
	if !strings.Contains(unanswered, "( ) Yes") || !strings.Contains(unanswered, "( ) No") {
		t.Errorf("unanswered yes/no should show two empty radios:\n%s", unanswered)
	}

	no := QuestionRow{Question: q, Answer: engine.Bool(false), Answered: true, Style: BooleanYesNo}.View(60)
	if !strings.Contains(no, "(•) No") {
		t.Errorf("no answer should select the No radio:\n%s", no)
	}
}

func TestQuestionRow_ChoiceAndDescription(t *testing.T) {
	q := catalog.Question{
		ID: "urgency", Prompt: "How urgent?", Kind: catalog.KindChoice,
		Description: "Pick one",
		Options:     []catalog.Option{{Value: "low", Label: "Low"}, {Value: "high", Label: "High"}},
	}
	v := QuestionRow{Question: q, Answer: engine.Choice("high"), Answered: true, Focused: true}.View(60)
	for _, want := range []string{"How urgent?", "Low", "High", "Pick one"} {
		if !strings.Contains(v, want) {
			t.Errorf("choice row missing %q:\n%s", want, v)
		}
	}
	if strings.Contains(v, "High impact") {
		t.Errorf("choice row should never carry the badge:\n%s", v)
	}
}

func TestHints_Dedup(t *testing.T) {
	k := DefaultKeyMap()
	hints := Hints(k.Up, k.Down, k.Submit)
	if len(hints) != 2 {
		t.Fatalf("got %d hints, want 2: %+v", len(hints), hints)
	}
	k.Submit.SetEnabled(false)
	if len(Hints(k.Submit)) != 0 {
		t.Error("disabled binding should be skipped")
	}
}
