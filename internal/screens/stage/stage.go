// Package stage shows the detail card for one water-cycle stage.
package stage

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/components"
	"github.com/abhisek/aigua/internal/ui/layout"
	"github.com/abhisek/aigua/internal/ui/theme"
)

// Screen is the stage detail modal. Dismissing it completes the stage.
type Screen struct {
	stage     cycle.Stage
	details   cycle.Details
	dismissed bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(s cycle.Stage) *Screen {
	return &Screen{stage: s, details: cycle.DetailsFor(s)}
}

func (s *Screen) Init() tea.Cmd      { return nil }
func (s *Screen) Title() string      { return s.details.Title }
func (s *Screen) Stage() cycle.Stage { return s.stage }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Entesos!"},
		{Key: "Esc", Description: "Tanca"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "space", "q":
		if s.dismissed {
			return s, nil
		}
		s.dismissed = true
		return s, screen.Dispatch(session.StageDetailDismissed{Stage: s.stage})
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if cw > 56 {
		cw = 56
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.details.Icon + "  " + s.details.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 8).
		Render(s.details.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw-8, lipgloss.Right, components.NewButton("Entesos!", true, nil).View()))

	return components.Modal(b.String(), cw, width, height)
}
