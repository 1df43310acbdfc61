package industry

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/catalog"
	sess "github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screen"
	quizscreen "github.com/brainit/fastpath/internal/screens/quiz"
	"github.com/brainit/fastpath/internal/ui/components"
	"github.com/brainit/fastpath/internal/ui/layout"
	"github.com/brainit/fastpath/internal/ui/theme"
)

// IndustryScreen lets the user pick the industry the quiz is tailored to.
// It is the root of the screen stack.
type IndustryScreen struct {
	session    *sess.Session
	industries []catalog.Industry
	menu       components.Menu
	style      components.BooleanStyle
}

var _ screen.Screen = (*IndustryScreen)(nil)
var _ screen.KeyHintProvider = (*IndustryScreen)(nil)
var _ screen.Resumer = (*IndustryScreen)(nil)

// New creates the picker for the given session.
func New(s *sess.Session, style components.BooleanStyle) *IndustryScreen {
	p := &IndustryScreen{
		session:    s,
		industries: catalog.Industries(),
		style:      style,
	}

	items := make([]components.MenuItem, 0, len(p.industries))
	for _, ind := range p.industries {
		items = append(items, components.MenuItem{
			Label:  string(ind),
			Detail: questionCount(s.Catalog(), ind),
			Action: func() tea.Cmd { return p.choose(ind) },
		})
	}
	p.menu = components.NewMenu(items)
	p.highlightCurrent()
	return p
}

// Start selects ind and returns the command that opens its quiz. Used to
// preselect an industry from the command line.
func (p *IndustryScreen) Start(ind catalog.Industry) tea.Cmd {
	return p.choose(ind)
}

func (p *IndustryScreen) choose(ind catalog.Industry) tea.Cmd {
	p.session.SelectIndustry(ind)
	p.highlightCurrent()
	next := quizscreen.New(p.session, p.style)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (p *IndustryScreen) highlightCurrent() {
	for i, ind := range p.industries {
		if ind == p.session.Industry {
			p.menu.Select(i)
			return
		}
	}
}

func (p *IndustryScreen) Init() tea.Cmd {
	return nil
}

// Resume keeps the cursor on the session's industry after a reset or an
// industry change.
func (p *IndustryScreen) Resume() tea.Cmd {
	p.highlightCurrent()
	return nil
}

func (p *IndustryScreen) Title() string {
	return "Choose your industry"
}

func (p *IndustryScreen) KeyHints() []layout.KeyHint {
	keys := components.DefaultKeyMap()
	return append(components.Hints(keys.Up),
		layout.KeyHint{Key: "Enter", Description: "Start quiz"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (p *IndustryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *IndustryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("What kind of business do you run?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Answer a few questions and we'll suggest where to start."))
	b.WriteString("\n\n")
	b.WriteString(p.menu.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func questionCount(c *catalog.Catalog, ind catalog.Industry) string {
	n := len(c.QuestionsFor(ind))
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}
