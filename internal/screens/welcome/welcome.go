package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/engine"
	"github.com/brainit/fastpath/internal/router"
	"github.com/brainit/fastpath/internal/screen"
	"github.com/brainit/fastpath/internal/ui/theme"
)

const (
	beat       = 150 * time.Millisecond
	stepBeats  = 3 // beats between revealed offer steps
	introBeats = 2 // beats before the first step
)

// Tagline is shown under the banner.
const Tagline = "A quick way to pick the right next step for your business."

// continueHint appears once every step is on screen.
const continueHint = "press any key to pick your industry"

type beatMsg struct{}

// WelcomeScreen introduces the three offers as a numbered path, then hands
// over to the industry picker on the first key press.
type WelcomeScreen struct {
	steps    []engine.Recommendation
	next     func() screen.Screen
	beats    int
	handedTo screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash. The steps come from rec in tier order, so custom
// offer copy shows up here too. next builds the screen that replaces it.
func New(rec *engine.Recommender, next func() screen.Screen) *WelcomeScreen {
	p := rec.Policy()
	return &WelcomeScreen{
		steps: []engine.Recommendation{
			rec.Recommend(0),
			rec.Recommend(p.MidMin),
			rec.Recommend(p.TopMin),
		},
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextBeat()
}

func nextBeat() tea.Cmd {
	return tea.Tick(beat, func(time.Time) tea.Msg { return beatMsg{} })
}

// revealed reports how many offer steps are visible.
func (w *WelcomeScreen) revealed() int {
	if w.beats < introBeats {
		return 0
	}
	return min(len(w.steps), 1+(w.beats-introBeats)/stepBeats)
}

func (w *WelcomeScreen) settled() bool {
	return w.revealed() == len(w.steps)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case beatMsg:
		if w.handedTo != nil || w.settled() {
			return w, nil
		}
		w.beats++
		return w, nextBeat()

	case tea.KeyPressMsg:
		return w, w.handOver()
	}
	return w, nil
}

// handOver builds the next screen once. Later key presses are ignored
// because the router has already swapped the splash out.
func (w *WelcomeScreen) handOver() tea.Cmd {
	if w.handedTo != nil {
		return nil
	}
	w.handedTo = w.next()
	target := w.handedTo
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: target}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	numStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	pending := lipgloss.NewStyle().Foreground(theme.Border)

	shown := w.revealed()
	for i, step := range w.steps {
		n := fmt.Sprintf("%d", i+1)
		if i < shown {
			sections = append(sections, numStyle.Render(n)+"  "+labelStyle.Render(step.Label))
		} else {
			sections = append(sections, pending.Render(n+"  ·"))
		}
	}

	if w.settled() {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(continueHint))
	}

	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
