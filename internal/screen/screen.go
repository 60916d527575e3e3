package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// TextCapturer is implemented by screens that take free text. While
// CapturingText is true, the app leaves printable keys to the screen.
type TextCapturer interface {
	CapturingText() bool
}

// DispatchMsg carries a session event to the app, which applies it to the
// orchestrator.
type DispatchMsg struct {
	Event session.Event
}

// StateMsg delivers the session state after every applied event.
type StateMsg struct {
	State session.Snapshot
}

// Dispatch returns a command that sends ev to the orchestrator.
func Dispatch(ev session.Event) tea.Cmd {
	return func() tea.Msg { return DispatchMsg{Event: ev} }
}
