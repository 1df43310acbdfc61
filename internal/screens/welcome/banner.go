package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/brainit/fastpath/internal/ui/theme"
)

const bannerArt = `
 ███████╗ █████╗ ███████╗████████╗    ██████╗  █████╗ ████████╗██╗  ██╗
 ██╔════╝██╔══██╗██╔════╝╚══██╔══╝    ██╔══██╗██╔══██╗╚══██╔══╝██║  ██║
 █████╗  ███████║███████╗   ██║       ██████╔╝███████║   ██║   ███████║
 ██╔══╝  ██╔══██║╚════██║   ██║       ██╔═══╝ ██╔══██║   ██║   ██╔══██║
 ██║     ██║  ██║███████║   ██║       ██║     ██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝  ╚═╝╚══════╝   ╚═╝       ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "F A S T   P A T H"

// RenderBanner returns the FAST PATH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
