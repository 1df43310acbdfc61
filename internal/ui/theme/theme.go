package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named set of colors the styles are built from.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette: indigo on deep slate.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#818CF8"), // Indigo
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light mirrors the light web layout: gray-50 page, white cards.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#4F46E5"), // Indigo 600
	Secondary: lipgloss.Color("#0D9488"), // Teal 600
	Accent:    lipgloss.Color("#B45309"), // Amber 700
	Success:   lipgloss.Color("#16A34A"), // Green 600
	Error:     lipgloss.Color("#E11D48"), // Rose 600
	Text:      lipgloss.Color("#111827"), // Gray 900
	TextDim:   lipgloss.Color("#6B7280"), // Gray 500
	BgDark:    lipgloss.Color("#F9FAFB"), // Gray 50
	BgCard:    lipgloss.Color("#FFFFFF"), // White
	Border:    lipgloss.Color("#D1D5DB"), // Gray 300
}

// Active colors, set by Use.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Styles built from the active palette.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Badge      lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	ChipActive     lipgloss.Style
	ChipInactive   lipgloss.Style
)

func init() {
	Use(Dark)
}

// ByName returns the palette with the given name, defaulting to Dark.
func ByName(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

// Current returns the name of the active palette.
func Current() string {
	return current
}

var current string

// Use activates a palette and rebuilds every style.
func Use(p Palette) {
	current = p.Name
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.BgDark, p.BgCard, p.Border

	// Typography
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Layout
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// States
	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Badge = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Padding(0, 1)

	// Components
	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgCard).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ChipActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	ChipInactive = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}
