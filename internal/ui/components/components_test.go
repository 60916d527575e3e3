package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestContentWidthBounds(t *testing.T) {
	tests := []struct {
		frame, want int
	}{
		{200, 70},
		{80, 70},
		{60, 54},
		{10, 20},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestMultiChoiceLetters(t *testing.T) {
	var chosen = -1
	m := NewMultiChoice([]string{"a", "b", "c"}, func(i int) tea.Cmd {
		chosen = i
		return func() tea.Msg { return nil }
	})

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd == nil || chosen != 2 {
		t.Fatalf("expected option 2 chosen, got %d", chosen)
	}
	if m.Cursor != 2 {
		t.Errorf("cursor should follow the letter, got %d", m.Cursor)
	}

	// D is out of range for three options.
	chosen = -1
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"}); cmd != nil || chosen != -1 {
		t.Error("letter past the last option should be ignored")
	}
}

func TestMultiChoiceCursorClamped(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, nil)
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if m.Cursor != 1 {
		t.Errorf("cursor should stop at the last option, got %d", m.Cursor)
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("nil OnChoose should produce no command")
	}
}

func TestMultiChoiceViewMarksAnswer(t *testing.T) {
	m := NewMultiChoice([]string{"Fum", "Gotetes", "Sorra"}, nil)

	before := m.View(-1, 1)
	if !strings.Contains(before, "▸") {
		t.Error("cursor marker expected before answering")
	}
	after := m.View(0, 1)
	if strings.Contains(after, "▸") {
		t.Error("cursor marker should disappear after answering")
	}
	if !strings.Contains(after, "B)  Gotetes") {
		t.Error("options keep their letters")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "Fàcil", Action: func() tea.Cmd { pressed = "Fàcil"; return nil }},
		{Label: "Difícil", Action: func() tea.Cmd { pressed = "Difícil"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up should not land on a disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "Difícil" {
		t.Errorf("expected Difícil pressed, got %q", pressed)
	}
}

func TestProgressBarPercent(t *testing.T) {
	out := NewProgressBar("", 0.5, true, 30).View()
	if !strings.Contains(out, "50%") {
		t.Errorf("expected 50%% in %q", out)
	}
}
