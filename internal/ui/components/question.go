package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/engine"
	"github.com/brainit/fastpath/internal/ui/theme"
)

// BooleanStyle selects how yes/no questions are drawn.
type BooleanStyle string

const (
	BooleanCheckbox BooleanStyle = "checkbox"
	BooleanYesNo    BooleanStyle = "yesno"
)

// QuestionRow renders one question with its current answer.
type QuestionRow struct {
	Question catalog.Question
	Answer   engine.Answer
	Answered bool
	Focused  bool
	Style    BooleanStyle
}

// View renders the row at the given width.
func (r QuestionRow) View(width int) string {
	prefix := "  "
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if r.Focused {
		prefix = "▸ "
		promptStyle = theme.Selected
	}

	var line string
	if r.Question.IsChoice() {
		line = promptStyle.Render(prefix+r.Question.Prompt) + "\n" + "    " + r.renderChips()
	} else {
		line = r.renderBoolean(prefix, promptStyle)
	}

	if r.Focused && r.Question.Description != "" {
		line += "\n" + lipgloss.NewStyle().
			Width(max(width-4, 10)).
			PaddingLeft(4).
			Render(theme.Hint.Render(r.Question.Description))
	}
	return line
}

func (r QuestionRow) renderBoolean(prefix string, promptStyle lipgloss.Style) string {
	yes := r.Answered && r.Answer.IsYes()
	no := r.Answered && !r.Answer.IsYes()

	var b strings.Builder
	if r.Style == BooleanCheckbox {
		box := "[ ]"
		if yes {
			box = lipgloss.NewStyle().Foreground(theme.Success).Render("[x]")
		}
		b.WriteString(promptStyle.Render(prefix) + box + " " + promptStyle.Render(r.Question.Prompt))
	} else {
		b.WriteString(promptStyle.Render(prefix + r.Question.Prompt))
		b.WriteString("  ")
		b.WriteString(radio("Yes", yes))
		b.WriteString(" ")
		b.WriteString(radio("No", no))
	}

	if r.Question.HighImpact() {
		b.WriteString(" " + theme.Badge.Render("High impact"))
	}
	return b.String()
}

func (r QuestionRow) renderChips() string {
	chips := make([]string, 0, len(r.Question.Options))
	for _, o := range r.Question.Options {
		active := r.Answered && r.Answer.Choice == o.Value
		if active {
			chips = append(chips, theme.ChipActive.Render(o.Label))
		} else {
			chips = append(chips, theme.ChipInactive.Render(o.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

func radio(label string, on bool) string {
	if on {
		return theme.Selected.Render("(•) " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("( ) " + label)
}
