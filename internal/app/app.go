// Package app hosts the terminal UI: it owns the session orchestrator and
// keeps the screen stack in step with the session state.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/router"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/screens/ask"
	"github.com/abhisek/aigua/internal/screens/diagram"
	"github.com/abhisek/aigua/internal/screens/quiz"
	"github.com/abhisek/aigua/internal/screens/stage"
	"github.com/abhisek/aigua/internal/screens/welcome"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/ui/layout"
)

// tabScreen is implemented by the three root screens.
type tabScreen interface {
	screen.Screen
	ViewID() session.View
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	orch   *session.Orchestrator
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

func newAppModel(ctx context.Context, orch *session.Orchestrator, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	splash := welcome.New(func() screen.Screen { return screenFor(orch.State()) })
	return AppModel{
		ctx:    ctx,
		orch:   orch,
		router: router.New(splash),
		logger: logger,
	}
}

// screenFor builds the root screen for the current view.
func screenFor(snap session.Snapshot) tabScreen {
	switch snap.View {
	case session.ViewQuiz:
		return quiz.New(snap)
	case session.ViewAsk:
		return ask.New(snap)
	default:
		return diagram.New(snap)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if ev, ok := m.globalKey(msg); ok {
			return m, m.apply(ev)
		}

	case screen.DispatchMsg:
		return m, m.apply(msg.Event)
	}

	return m, m.router.Update(msg)
}

// globalKey maps tab switching keys to a view-switched event. They only
// apply on a root tab screen with no modal open.
func (m AppModel) globalKey(msg tea.KeyPressMsg) (session.Event, bool) {
	if m.router.Depth() != 1 {
		return nil, false
	}
	if _, ok := m.router.Root().(tabScreen); !ok {
		return nil, false
	}
	current := m.orch.State().View

	switch msg.String() {
	case "tab":
		return session.ViewSwitched{View: current.Next()}, true
	case "shift+tab":
		return session.ViewSwitched{View: current.Next().Next()}, true
	case "1", "2", "3":
		if tc, ok := m.router.Root().(screen.TextCapturer); ok && tc.CapturingText() {
			return nil, false
		}
		views := session.AllViews()
		return session.ViewSwitched{View: views[msg.String()[0]-'1']}, true
	}
	return nil, false
}

// apply dispatches ev and resynchronizes the screens. A returned gateway
// command runs off the update loop and comes back as another DispatchMsg.
func (m AppModel) apply(ev session.Event) tea.Cmd {
	m.logger.Debug("event", zap.String("type", string(ev.Type())))

	var cmds []tea.Cmd
	if next := m.orch.Dispatch(m.ctx, ev); next != nil {
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			return screen.DispatchMsg{Event: next(ctx)}
		})
	}
	cmds = append(cmds, m.sync())
	return tea.Batch(cmds...)
}

func (m AppModel) sync() tea.Cmd {
	snap := m.orch.State()
	var cmds []tea.Cmd

	if root, ok := m.router.Root().(tabScreen); ok && root.ViewID() != snap.View {
		cmds = append(cmds, m.router.Reset(screenFor(snap)))
	}

	modal, open := m.router.Active().(*stage.Screen)
	switch {
	case snap.Detail != nil && !open:
		cmds = append(cmds, m.router.Push(stage.New(snap.Detail.Stage)))
	case snap.Detail != nil && modal.Stage() != snap.Detail.Stage:
		cmds = append(cmds, m.router.Replace(stage.New(snap.Detail.Stage)))
	case snap.Detail == nil && open:
		cmds = append(cmds, m.router.Pop())
	}

	cmds = append(cmds, m.router.Broadcast(screen.StateMsg{State: snap}))
	return tea.Batch(cmds...)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	snap := m.orch.State()
	active := m.router.Active()

	badges := make([]string, 0, len(snap.Badges))
	for _, b := range snap.Badges {
		badges = append(badges, b.Icon()+" "+b.DisplayName())
	}
	header := layout.RenderHeader(active.Title(), badges, m.width)

	if _, ok := m.router.Root().(tabScreen); ok {
		labels := make([]string, 0, 3)
		activeTab := 0
		for i, view := range session.AllViews() {
			labels = append(labels, view.Label())
			if view == snap.View {
				activeTab = i
			}
		}
		header += "\n" + layout.RenderTabs(labels, activeTab, m.width)
	}

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Surt"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the learner quits.
func Run(ctx context.Context, orch *session.Orchestrator, logger *zap.Logger) error {
	p := tea.NewProgram(newAppModel(ctx, orch, logger), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
