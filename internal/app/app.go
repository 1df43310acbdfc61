package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/brainit/fastpath/internal/catalog"
	"github.com/brainit/fastpath/internal/quiz"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screen"
	"github.com/brainit/fastpath/internal/screens/industry"
	"github.com/brainit/fastpath/internal/screens/welcome"
	"github.com/brainit/fastpath/internal/ui/components"
	"github.com/brainit/fastpath/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	// Session is the quiz session the screens share. A fresh one is created
	// when nil.
	Session *quiz.Session

	// BooleanStyle selects checkbox or paired yes/no rendering.
	BooleanStyle components.BooleanStyle

	// Industry preselects an industry and opens its quiz directly.
	Industry catalog.Industry

	// SkipSplash starts on the industry picker.
	SkipSplash bool

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	init   tea.Cmd
	logger *zap.Logger
	width  int
	height int
}

// newAppModel builds the screen stack for opts.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := opts.Session
	if sess == nil {
		sess = quiz.NewSession(quiz.WithLogger(logger))
	}
	style := opts.BooleanStyle
	if style == "" {
		style = components.BooleanYesNo
	}

	picker := industry.New(sess, style)
	m := AppModel{logger: logger}

	switch {
	case opts.Industry != "":
		m.router = router.New(picker)
		m.init = picker.Start(opts.Industry)
	case opts.SkipSplash:
		m.router = router.New(picker)
	default:
		splash := welcome.New(sess.Recommender(), func() screen.Screen { return picker })
		m.router = router.New(splash)
		m.init = splash.Init()
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Debug("quit")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var badge layout.ScoreBadge
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			badge = sp.ScoreBadge()
		}
	}

	header := layout.RenderHeader(title, badge, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
