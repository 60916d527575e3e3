package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██╗ ██████╗ ██╗   ██╗ █████╗
 ██╔══██╗██║██╔════╝ ██║   ██║██╔══██╗
 ███████║██║██║  ███╗██║   ██║███████║
 ██╔══██║██║██║   ██║██║   ██║██╔══██║
 ██║  ██║██║╚██████╔╝╚██████╔╝██║  ██║
 ╚═╝  ╚═╝╚═╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "A I G U A"

// RenderBanner returns the AIGUA banner, compact below 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
