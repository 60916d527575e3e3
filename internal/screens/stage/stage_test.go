package stage

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
)

func TestDismissDispatchesOnce(t *testing.T) {
	s := New(cycle.Condensation)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a dismiss command")
	}
	msg, ok := cmd().(screen.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	if msg.Event != (session.StageDetailDismissed{Stage: cycle.Condensation}) {
		t.Errorf("unexpected event %#v", msg.Event)
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("second dismiss should be swallowed")
	}
}

func TestEscDismisses(t *testing.T) {
	s := New(cycle.Collection)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd == nil {
		t.Error("esc should dismiss")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New(cycle.Collection)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unrelated key should not dismiss")
	}
	if _, cmd := s.Update(screen.StateMsg{}); cmd != nil {
		t.Error("state updates should not dismiss")
	}
}

func TestViewShowsDetails(t *testing.T) {
	s := New(cycle.Precipitation)
	view := s.View(100, 30)

	d := cycle.DetailsFor(cycle.Precipitation)
	if !strings.Contains(view, d.Title) {
		t.Errorf("expected title %q in view", d.Title)
	}
	if !strings.Contains(view, "Entesos!") {
		t.Error("expected the dismiss button")
	}
	if s.Title() != d.Title {
		t.Errorf("expected screen title %q, got %q", d.Title, s.Title())
	}
}
