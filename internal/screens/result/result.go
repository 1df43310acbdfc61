package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/engine"
	sess "github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screen"
	"github.com/brainit/fastpath/internal/ui/layout"
	"github.com/brainit/fastpath/internal/ui/theme"
)

// ResultScreen displays the recommendation of a submitted quiz.
type ResultScreen struct {
	session *sess.Session
	result  sess.Result
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.ScoreProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for res.
func New(s *sess.Session, res sess.Result) *ResultScreen {
	return &ResultScreen{session: s, result: res}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Your recommendation"
}

func (r *ResultScreen) ScoreBadge() layout.ScoreBadge {
	return layout.ScoreBadge{Score: r.result.Score, Max: r.result.MaxScore}
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Edit answers"},
		{Key: "R", Description: "Start over"},
		{Key: "I", Description: "Industry"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			r.session.Reset()
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		case "i":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	res := r.result
	cw := min(width-4, 72)

	center := func(s lipgloss.Style) lipgloss.Style {
		return s.Width(cw).Align(lipgloss.Center)
	}

	var sections []string

	sections = append(sections, center(theme.Subtitle).Render(
		fmt.Sprintf("%s · score %d of %d", res.Industry, res.Score, res.MaxScore)))

	sections = append(sections, center(lipgloss.NewStyle().
		Foreground(tierColor(res.Recommendation.Tier)).
		Bold(true)).
		Render(res.Recommendation.Label))

	sections = append(sections, center(lipgloss.NewStyle()).Render(
		theme.ButtonActive.Render(res.Recommendation.CTA)))

	sections = append(sections, center(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Underline(true)).
		Render(res.Recommendation.Link))

	if u, ok := res.Choice(sess.UrgencyQuestion); ok {
		sections = append(sections, center(theme.Body).Render(
			"Urgency: "+strings.ToUpper(u.Value)))
	}

	sections = append(sections, center(theme.Hint).Render(sess.AdvisoryNote))

	card := theme.Card.Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func tierColor(t engine.Tier) color.Color {
	switch t {
	case engine.TierTop:
		return theme.Success
	case engine.TierMid:
		return theme.Accent
	default:
		return theme.Primary
	}
}
