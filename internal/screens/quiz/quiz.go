package quiz

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/lessons"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/router"
	"github.com/abhisek/quickcode/internal/screen"
	"github.com/abhisek/quickcode/internal/screens/summary"
	"github.com/abhisek/quickcode/internal/session"
	"github.com/abhisek/quickcode/internal/ui/components"
	"github.com/abhisek/quickcode/internal/ui/layout"
	"github.com/abhisek/quickcode/internal/ui/theme"
)

const (
	intentStart   = "start"
	intentRestart = "restart"
	intentSubmit  = "submit"
	intentAdvance = "advance"
)

// Controller is the part of session.Controller the quiz screen drives.
type Controller interface {
	Start(ctx context.Context) error
	Restart(ctx context.Context) error
	SelectOption(option string) error
	Submit(ctx context.Context) error
	Advance(ctx context.Context) error
	DismissLesson() error
	ShowLesson() error
	State() session.State
	Progress() progress.Record
	Signal() session.Signal
	Summary() session.Summary
}

// Cards supplies lesson cards. *lessons.Service satisfies it.
type Cards interface {
	Card(topic string) lessons.Card
	Prefetch(ctx context.Context, topic string)
}

// QuizScreen implements screen.Screen for an eight-challenge session.
type QuizScreen struct {
	ctrl    Controller
	cards   Cards
	state   session.State
	choice  components.MultiChoice
	spinner spinner.Model
	busy    bool
	errMsg  string

	// summaryFor is the session whose summary has been pushed.
	summaryFor string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. cards may be nil, in which case static lesson
// cards are shown.
func New(ctrl Controller, cards Cards) *QuizScreen {
	s := &QuizScreen{
		ctrl:  ctrl,
		cards: cards,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.state.Phase != session.PhaseInitializing {
		return nil
	}
	return s.run(intentStart, s.ctrl.Start)
}

func (s *QuizScreen) Title() string {
	switch s.state.Phase {
	case session.PhaseLesson:
		return "Lesson"
	case session.PhaseInitializing, session.PhaseFinished:
		return "Quiz"
	}
	return fmt.Sprintf("Challenge %d/%d", s.state.SessionIndex+1, session.SessionLength)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch s.state.Phase {
	case session.PhaseLesson:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start challenge"},
		}
	case session.PhasePresenting:
		return []layout.KeyHint{
			hint(keys.Up), hint(keys.Down), hint(keys.Pick),
			hint(keys.Submit), hint(keys.Lesson),
		}
	case session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	case session.PhaseFinished:
		return []layout.KeyHint{
			hint(keys.Restart),
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return nil
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case intentDoneMsg:
		return s.handleIntentDone(msg)

	case router.ResumedMsg:
		if msg.Result == summary.PlayAgain {
			return s, s.restart()
		}
		return s, nil

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	s.errMsg = ""

	switch s.state.Phase {
	case session.PhaseLesson:
		if key.Matches(msg, keys.Submit) {
			s.apply(s.ctrl.DismissLesson())
		}

	case session.PhasePresenting:
		switch {
		case key.Matches(msg, keys.Up):
			s.choice.Up()
		case key.Matches(msg, keys.Down):
			s.choice.Down()
		case key.Matches(msg, keys.Pick):
			if opt, ok := s.choice.At(pickIndex(msg.String())); ok {
				s.choice.Cursor = pickIndex(msg.String())
				s.apply(s.ctrl.SelectOption(opt))
			}
		case key.Matches(msg, keys.Submit):
			if s.state.Selected == "" {
				if err := s.ctrl.SelectOption(s.choice.Current()); err != nil {
					s.apply(err)
					return s, nil
				}
			}
			return s, s.run(intentSubmit, s.ctrl.Submit)
		case key.Matches(msg, keys.Lesson):
			s.apply(s.ctrl.ShowLesson())
		}

	case session.PhaseFeedback:
		if key.Matches(msg, keys.Submit) {
			return s, s.run(intentAdvance, s.ctrl.Advance)
		}

	case session.PhaseFinished:
		if key.Matches(msg, keys.Restart) {
			return s, s.restart()
		}
	}
	return s, nil
}

func (s *QuizScreen) restart() tea.Cmd {
	return s.run(intentRestart, s.ctrl.Restart)
}

// run executes a blocking intent off the update loop and shows the spinner
// until it returns.
func (s *QuizScreen) run(name string, intent func(context.Context) error) tea.Cmd {
	s.busy = true
	do := func() tea.Msg {
		return intentDoneMsg{Intent: name, Err: intent(context.Background())}
	}
	return tea.Batch(do, s.spinner.Tick)
}

func (s *QuizScreen) handleIntentDone(msg intentDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	s.apply(msg.Err)

	if s.state.Phase == session.PhaseFinished && s.summaryFor != s.state.SessionID {
		s.summaryFor = s.state.SessionID
		next := summary.New(s.ctrl.Summary(), s.ctrl.Progress())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return s, nil
}

// apply records an intent error and refreshes the snapshot.
func (s *QuizScreen) apply(err error) {
	switch {
	case err == nil, errors.Is(err, session.ErrBusy):
	default:
		s.errMsg = err.Error()
	}
	s.sync()
}

// sync copies the controller state into the view, keeping the cursor when
// the challenge is unchanged.
func (s *QuizScreen) sync() {
	prev := s.state
	s.state = s.ctrl.State()

	cur := s.state.Current
	if cur == nil {
		s.choice = components.MultiChoice{}
		return
	}
	if prev.Current == nil || prev.Current.ID != cur.ID ||
		prev.SessionIndex != s.state.SessionIndex || prev.SessionID != s.state.SessionID {
		s.choice = components.NewMultiChoice(cur.Options)
	}
	s.choice.Chosen = s.state.Selected
	s.choice.Revealed = s.state.Revealed
	s.choice.Correct = cur.CorrectAnswer

	if s.state.ShowingLesson() && s.cards != nil {
		s.cards.Prefetch(context.Background(), cur.Topic)
	}
}

func (s *QuizScreen) lessonCard() lessons.Card {
	topic := ""
	if s.state.Current != nil {
		topic = s.state.Current.Topic
	}
	if s.cards == nil {
		return lessons.For(topic)
	}
	return s.cards.Card(topic)
}
