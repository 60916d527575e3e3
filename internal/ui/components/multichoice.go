package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector. It only tracks the cursor;
// which option was chosen and which is correct come from the caller.
type MultiChoice struct {
	Options  []string
	Cursor   int
	OnChoose func(index int) tea.Cmd
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, onChoose func(index int) tea.Cmd) MultiChoice {
	return MultiChoice{Options: options, OnChoose: onChoose}
}

// Update handles keyboard navigation and selection. Letters pick an option
// directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter":
		return m, m.choose(m.Cursor)
	}

	for i := range m.Options {
		if i < len(choiceLabels) && strings.EqualFold(key, choiceLabels[i]) {
			m.Cursor = i
			return m, m.choose(i)
		}
	}
	return m, nil
}

func (m MultiChoice) choose(i int) tea.Cmd {
	if m.OnChoose == nil || i < 0 || i >= len(m.Options) {
		return nil
	}
	return m.OnChoose(i)
}

// View renders the options. While chosen is negative the cursor is shown;
// afterwards the correct option is green and a wrong choice red.
func (m MultiChoice) View(chosen, correct int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if chosen < 0 && i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch {
		case chosen >= 0 && i == correct:
			style = theme.Correct
		case chosen >= 0 && i == chosen:
			style = theme.Incorrect
		case chosen >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
