package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/brainit/fastpath/internal/ui/layout"
)

// KeyMap lists the bindings shared by the quiz screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Yes      key.Binding
	No       key.Binding
	Submit   key.Binding
	Clear    key.Binding
	Reset    key.Binding
	Industry key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Navigate")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Choose")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Choose")),
		Toggle:   key.NewBinding(key.WithKeys("space", " "), key.WithHelp("Space", "Toggle")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("Y/N", "Answer")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("Y/N", "Answer")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "See recommendation")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("C", "Clear")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Reset")),
		Industry: key.NewBinding(key.WithKeys("i"), key.WithHelp("I", "Industry")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	}
}

// Hints turns bindings into footer hints, skipping disabled bindings and
// repeated help keys.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	seen := make(map[string]bool, len(bindings))
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
