// Package quiz renders the quiz tab.
package quiz

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/aigua/internal/quiz"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/components"
	"github.com/abhisek/aigua/internal/ui/layout"
	"github.com/abhisek/aigua/internal/ui/theme"
)

// Screen is the quiz tab. It renders whatever phase the session's quiz is
// in and turns keys into quiz events.
type Screen struct {
	quiz    qz.Snapshot
	menu    components.Menu
	choices components.MultiChoice
	spinner spinner.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(state session.Snapshot) *Screen {
	items := make([]components.MenuItem, 0, 2)
	for _, d := range qz.AllDifficulties() {
		items = append(items, components.MenuItem{
			Label:  d.DisplayName(),
			Action: func() tea.Cmd { return screen.Dispatch(session.QuizDifficultyChosen{Difficulty: d}) },
		})
	}

	s := &Screen{
		menu: components.NewMenu(items),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
	s.apply(state.Quiz)
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.quiz.Phase == qz.PhaseLoading {
		return s.spinner.Tick
	}
	return nil
}

func (s *Screen) Title() string { return session.ViewQuiz.Label() }

// ViewID identifies the tab this screen renders.
func (s *Screen) ViewID() session.View { return session.ViewQuiz }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.quiz.Phase {
	case qz.PhaseSelectingDifficulty:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Tria"},
			{Key: "Enter", Description: "Comença"},
			{Key: "Tab", Description: "Canvia de vista"},
		}
	case qz.PhaseAnswering:
		if s.quiz.Answered {
			return []layout.KeyHint{{Key: "Enter", Description: s.advanceLabel()}}
		}
		return []layout.KeyHint{
			{Key: "A/B/C", Description: "Respon"},
			{Key: "↑↓ Enter", Description: "Tria"},
		}
	case qz.PhaseFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Tria una altra dificultat"},
			{Key: "Tab", Description: "Canvia de vista"},
		}
	}
	return []layout.KeyHint{{Key: "Tab", Description: "Canvia de vista"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		wasLoading := s.quiz.Phase == qz.PhaseLoading
		s.apply(msg.State.Quiz)
		if !wasLoading && s.quiz.Phase == qz.PhaseLoading {
			return s, s.spinner.Tick
		}
		return s, nil

	case spinner.TickMsg:
		if s.quiz.Phase != qz.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch s.quiz.Phase {
	case qz.PhaseSelectingDifficulty:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return cmd

	case qz.PhaseAnswering:
		if !s.quiz.Answered {
			var cmd tea.Cmd
			s.choices, cmd = s.choices.Update(msg)
			return cmd
		}
		switch msg.String() {
		case "enter", "space", "n":
			return screen.Dispatch(session.QuizAdvance{})
		}

	case qz.PhaseFinished:
		switch msg.String() {
		case "enter", "space", "r":
			return screen.Dispatch(session.QuizRestart{})
		}
	}
	return nil
}

// apply takes a new quiz snapshot, resetting the option cursor whenever a
// new question is shown.
func (s *Screen) apply(q qz.Snapshot) {
	newQuestion := q.Phase != s.quiz.Phase || q.Index != s.quiz.Index || q.Total != s.quiz.Total
	s.quiz = q
	if !newQuestion {
		return
	}
	if cur, ok := q.Current(); ok {
		s.choices = components.NewMultiChoice(cur.Options, func(i int) tea.Cmd {
			return screen.Dispatch(session.QuizAnswerSubmitted{Index: i})
		})
	}
}

func (s *Screen) advanceLabel() string {
	if s.quiz.IsLast() {
		return "Finalitzar"
	}
	return "Següent"
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.quiz.Phase {
	case qz.PhaseSelectingDifficulty:
		body = theme.Title.Render("Tria la dificultat") + "\n\n" + s.menu.View()
	case qz.PhaseLoading:
		body = s.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Preparant les preguntes...")
	case qz.PhaseAnswering:
		body = s.viewQuestion(cw)
	case qz.PhaseFinished:
		body = s.viewFinished(cw)
	}
	return components.Centered(body, width, height)
}

func (s *Screen) viewQuestion(cw int) string {
	q, ok := s.quiz.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	left := fmt.Sprintf("Pregunta %d de %d", s.quiz.Index+1, s.quiz.Total)
	right := fmt.Sprintf("Puntuació: %d", s.quiz.Score)
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render(left + strings.Repeat(" ", gap) + right))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(s.quiz.Index+1)/float64(s.quiz.Total), false, cw).View())
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-8).Render(q.Question) +
		"\n\n" + s.choices.View(s.chosen(), q.CorrectAnswerIndex)
	b.WriteString(components.Card(card, cw))

	if s.quiz.Answered {
		b.WriteString("\n")
		b.WriteString(components.NewButton(s.advanceLabel(), true, nil).View())
	}
	return b.String()
}

func (s *Screen) chosen() int {
	if !s.quiz.Answered {
		return -1
	}
	return s.quiz.Selected
}

func (s *Screen) viewFinished(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Qüestionari completat!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("La teva puntuació és:"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d / %d", s.quiz.Score, s.quiz.Total)))
	b.WriteString("\n\n")
	bar := cw / 2
	if bar < 20 {
		bar = 20
	}
	b.WriteString(components.NewProgressBar("", float64(s.quiz.Percentage)/100, true, bar).View())
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Tria una altra dificultat", true, nil).View())
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}
