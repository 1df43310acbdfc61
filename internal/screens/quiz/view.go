package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/ui/components"
	"github.com/brainit/fastpath/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	cw := min(width-4, 88)
	if cw < 20 {
		cw = 20
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Your " + string(q.session.Industry) + " fast path"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Tell us what you already have. High impact items count double."))
	b.WriteString("\n\n")

	answered := len(q.session.Questions) - len(q.session.Missing())
	b.WriteString(components.NewProgressBar("Answered", answered, len(q.session.Questions), cw).View())
	b.WriteString("\n\n")

	for i, qq := range q.session.Questions {
		a, ok := q.session.Answers[qq.ID]
		row := components.QuestionRow{
			Question: qq,
			Answer:   a,
			Answered: ok && q.session.Answers.Answered(qq),
			Focused:  i == q.cursor,
			Style:    q.style,
		}
		b.WriteString(row.View(cw))
		b.WriteString("\n")
		if qq.IsChoice() {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(components.NewButton("See my recommendation", q.session.Complete()).View())

	if q.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(q.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).PaddingTop(1).Render(b.String()))
}
