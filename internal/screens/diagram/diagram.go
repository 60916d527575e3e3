// Package diagram renders the water cycle as a navigable 2x2 diagram.
package diagram

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/layout"
	"github.com/abhisek/aigua/internal/ui/theme"
)

const cellWidth = 24

// StartHint is shown under COLLECTION until the first stage is completed.
const StartHint = "Prem Enter aquí per començar!"

// LockedHint is shown when a locked stage is chosen.
const LockedHint = "🔒 Descobreix l'etapa anterior per desbloquejar-la."

// grid positions, in DiagramOrder: top-left, top-right, bottom-right,
// bottom-left. Moving right/left/up/down maps between them.
var (
	moveRight = map[int]int{0: 1, 3: 2}
	moveLeft  = map[int]int{1: 0, 2: 3}
	moveDown  = map[int]int{0: 3, 1: 2}
	moveUp    = map[int]int{3: 0, 2: 1}
)

// Screen is the diagram tab.
type Screen struct {
	state  session.Snapshot
	stages []cycle.Stage
	cursor int
	notice string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the diagram with the cursor on the first stage of the cycle.
func New(state session.Snapshot) *Screen {
	s := &Screen{state: state, stages: cycle.DiagramOrder()}
	for i, st := range s.stages {
		if st == cycle.First {
			s.cursor = i
		}
	}
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return session.ViewDiagram.Label() }

// ViewID identifies the tab this screen renders.
func (s *Screen) ViewID() session.View { return session.ViewDiagram }

// Cursor returns the highlighted stage.
func (s *Screen) Cursor() cycle.Stage { return s.stages[s.cursor] }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Mou"},
		{Key: "Enter", Description: "Descobreix"},
		{Key: "Tab", Description: "Canvia de vista"},
		{Key: "Ctrl+C", Description: "Surt"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		s.state = msg.State
		return s, nil

	case tea.KeyPressMsg:
		var next map[int]int
		switch msg.String() {
		case "right", "l":
			next = moveRight
		case "left", "h":
			next = moveLeft
		case "down", "j":
			next = moveDown
		case "up", "k":
			next = moveUp
		case "enter", "space":
			st := s.Cursor()
			if !s.state.IsUnlocked(st) {
				s.notice = LockedHint
				return s, nil
			}
			s.notice = ""
			return s, screen.Dispatch(session.StageSelected{Stage: st})
		}
		if i, ok := next[s.cursor]; ok {
			s.cursor = i
			s.notice = ""
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cells := make([]string, len(s.stages))
	for i, st := range s.stages {
		cells[i] = s.renderCell(st, i == s.cursor)
	}

	arrow := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	gap := arrow.Render("  ──▶  ")
	back := arrow.Render("  ◀──  ")
	pad := strings.Repeat(" ", lipgloss.Width(gap))

	top := lipgloss.JoinHorizontal(lipgloss.Center, cells[0], gap, cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Center, cells[3], back, cells[2])

	half := strings.Repeat(" ", cellWidth/2)
	verticals := arrow.Render(half+"▲"+half+pad+half+"│") + "\n" +
		arrow.Render(half+"│"+half+pad+half+"▼")

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(verticals)
	b.WriteString("\n")
	b.WriteString(bottom)
	b.WriteString("\n\n")

	switch {
	case s.notice != "":
		b.WriteString(theme.Hint.Render(s.notice))
	case len(s.state.Unlocked) == 1:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(StartHint))
	default:
		b.WriteString(theme.Hint.Render("Tria una etapa per aprendre'n més."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *Screen) renderCell(st cycle.Stage, selected bool) string {
	border := theme.Border
	if selected {
		border = theme.Accent
	}
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	if !s.state.IsUnlocked(st) {
		return style.Foreground(theme.Locked).Render("🔒\n???")
	}
	d := cycle.DetailsFor(st)
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(selected).Render(d.Title)
	return style.Render(d.Icon + "\n" + label)
}
