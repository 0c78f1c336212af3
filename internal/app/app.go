// Package app hosts the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/router"
	"github.com/abhisek/quickcode/internal/screen"
	"github.com/abhisek/quickcode/internal/screens/quiz"
	"github.com/abhisek/quickcode/internal/screens/welcome"
	"github.com/abhisek/quickcode/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Controller quiz.Controller

	// Lessons tailors lesson cards. Nil shows the static cards.
	Lessons *lessons.Service

	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress func() progress.Record
	width    int
	height   int
}

// newAppModel creates an AppModel starting on the welcome screen, or
// directly on the quiz when SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	var cards quiz.Cards
	if opts.Lessons != nil {
		cards = opts.Lessons
	}
	newQuiz := func() screen.Screen {
		return quiz.New(opts.Controller, cards)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = newQuiz()
	} else {
		first = welcome.New(newQuiz)
	}

	return AppModel{
		router:   router.New(first),
		progress: opts.Controller.Progress,
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
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	if !hasChrome(active) {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	rec := m.progress()
	header := layout.RenderHeader(title, layout.HeaderStats{
		XP:            rec.XP,
		Level:         rec.Level,
		Streak:        rec.Streak,
		LevelProgress: rec.LevelProgress(),
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// hasChrome reports whether the header and footer frame the active screen.
func hasChrome(active screen.Screen) bool {
	s, ok := active.(screen.Splash)
	return !ok || !s.Splash()
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	if len(hints) == 0 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
