package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Modal centers a highlighted card in the given area.
func Modal(content string, cw, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Centered places content in the middle of the given area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
