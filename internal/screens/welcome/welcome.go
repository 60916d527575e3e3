package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aigua/internal/router"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Una aventura interactiva per a joves exploradors!"

const dropArt = `      ▲
     ███
    █████
   ███████
  █████████
  █████████
   ███████
    ╰───╯`

var rippleFrames = []string{"～", "≈"}

type tickMsg time.Time

// WelcomeScreen plays a short splash and then hands over to the main screen.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{nextFactory: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Keys are swallowed until the banner is on screen.
		if w.elapsed >= phase2End {
			return w, w.transition()
		}
		return w, nil
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(dropArt)

	if w.elapsed >= phase1End {
		ripple := rippleFrames[w.tickCount%len(rippleFrames)]
		r1 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(ripple)
		r2 := lipgloss.NewStyle().Foreground(theme.Accent).Render(ripple)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 7 {
			lines[7] = r1 + r2 + " " + lines[7] + " " + r2 + r1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("prem qualsevol tecla per començar"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
