// Package ask renders the "ask the assistant" tab.
package ask

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/components"
	"github.com/abhisek/aigua/internal/ui/layout"
	"github.com/abhisek/aigua/internal/ui/theme"
)

const (
	Placeholder = "Ex: Per què els núvols són blancs?"
	EmptyAnswer = "La resposta a la teva pregunta apareixerà aquí."
	Thinking    = "Pensant una bona resposta..."

	maxQuestionLen = 300
)

// Screen is the ask tab.
type Screen struct {
	ask     session.AskSnapshot
	input   components.TextInput
	spinner spinner.Model

	// hideValidation is set once the learner edits the input after a
	// rejected submit.
	hideValidation bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.TextCapturer = (*Screen)(nil)

func New(state session.Snapshot) *Screen {
	s := &Screen{
		ask:   state.Ask,
		input: components.NewTextInput(Placeholder, maxQuestionLen),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	if state.Ask.Loading {
		s.input.Blur()
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.ask.Loading {
		return s.spinner.Tick
	}
	return s.input.Init()
}

func (s *Screen) Title() string { return session.ViewAsk.Label() }

// ViewID identifies the tab this screen renders.
func (s *Screen) ViewID() session.View { return session.ViewAsk }

// CapturingText reports whether keys are going to the text input.
func (s *Screen) CapturingText() bool { return !s.ask.Loading }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Pregunta"},
		{Key: "Tab", Description: "Canvia de vista"},
		{Key: "Ctrl+C", Description: "Surt"},
	}
}

// Validation returns the message currently shown under the input.
func (s *Screen) Validation() string {
	if s.hideValidation {
		return ""
	}
	return s.ask.Validation
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		return s, s.apply(msg.State.Ask)

	case spinner.TickMsg:
		if !s.ask.Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.ask.Loading {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, screen.Dispatch(session.AskSubmitted{Question: s.input.Value()})
		}
		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != before {
			s.hideValidation = true
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) apply(a session.AskSnapshot) tea.Cmd {
	prev := s.ask
	s.ask = a
	if a.Validation != prev.Validation || (a.Validation != "" && !a.Loading) {
		s.hideValidation = false
	}

	switch {
	case a.Loading && !prev.Loading:
		s.input.Blur()
		return s.spinner.Tick
	case !a.Loading && prev.Loading:
		return s.input.Focus()
	}
	return nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.input.SetWidth(cw - 6)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Tens algun dubte?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).
		Render("Pregunta el que vulguis sobre el cicle de l'aigua i l'assistent t'ajudarà!"))
	b.WriteString("\n\n")
	b.WriteString(components.Card(s.input.View(), cw))
	b.WriteString("\n")

	if v := s.Validation(); v != "" {
		b.WriteString(theme.ErrorText.Render(v))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var answer string
	switch {
	case s.ask.Loading:
		answer = s.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(Thinking)
	case s.ask.Answer != "":
		answer = lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).Render(s.ask.Answer)
	default:
		answer = theme.Hint.Render(EmptyAnswer)
	}
	b.WriteString(components.Card(answer, cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+b.String())
}
