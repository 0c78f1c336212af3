package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/session"
	"github.com/abhisek/quickcode/internal/ui/components"
	"github.com/abhisek/quickcode/internal/ui/layout"
	"github.com/abhisek/quickcode/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	contentWidth := width - 4
	if contentWidth > 90 {
		contentWidth = 90
	}

	var b strings.Builder

	if s.state.Current != nil && s.state.Phase != session.PhaseFinished {
		b.WriteString(s.renderInfo(contentWidth))
		b.WriteString("\n\n")
	}

	if !layout.IsCompactHeight(height) {
		b.WriteString(components.RenderRobot(s.signal()))
		b.WriteString("\n\n")
	}

	switch s.state.Phase {
	case session.PhaseInitializing:
		b.WriteString(theme.Hint.Render("Booting up..."))
	case session.PhaseLesson:
		b.WriteString(s.renderLesson(contentWidth))
	case session.PhaseFinished:
		b.WriteString(s.renderFinished())
	default:
		b.WriteString(s.renderChallenge(contentWidth))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(contentWidth).Render(b.String()))
}

// signal shows the spinner text while an intent runs but before the
// controller has entered its in-flight phase.
func (s *QuizScreen) signal() session.Signal {
	sig := s.ctrl.Signal()
	if s.busy && !s.state.Phase.InFlight() && sig.Mood != session.MoodThinking {
		return session.Signal{Mood: session.MoodThinking, Message: "Working on it..."}
	}
	return sig
}

func (s *QuizScreen) renderInfo(width int) string {
	cur := s.state.Current

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s · %s", cur.Topic, cur.Difficulty))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Challenge %d/%d  %s %d",
			s.state.SessionIndex+1,
			session.SessionLength,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.CorrectCount,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	bar := components.NewStepBar(s.state.SessionIndex, session.SessionLength, width).View()

	return line + "\n" + bar
}

func (s *QuizScreen) renderLesson(width int) string {
	card := s.lessonCard()

	var b strings.Builder
	b.WriteString(theme.Title.Render(card.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width - 8).Render(card.Description))
	b.WriteString("\n\n")
	for _, p := range card.Points {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  • "))
		b.WriteString(theme.Body.Render(p))
		b.WriteString("\n")
	}
	if card.Example != "" {
		b.WriteString("\n")
		b.WriteString(components.RenderCode(card.Example, width-8))
	}
	return theme.Card.Width(width).Render(b.String())
}

func (s *QuizScreen) renderChallenge(width int) string {
	cur := s.state.Current
	if cur == nil {
		return theme.Hint.Render(s.spinner.View() + " Loading challenge...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width).Render(cur.Description))
	b.WriteString("\n\n")
	b.WriteString(components.RenderCode(cur.Code, width))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(width))

	switch {
	case s.busy || s.state.Phase.InFlight():
		b.WriteString("\n")
		b.WriteString(s.spinner.View() + " " + theme.Hint.Render(s.ctrl.Signal().Message))
	case s.state.Phase == session.PhaseFeedback:
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var banner string
	if s.state.IsCorrect {
		banner = theme.Correct.Render(fmt.Sprintf("✓ Correct!  +%d XP", progress.XPPerChallenge))
	} else {
		banner = theme.Incorrect.Render("✗ Not quite. The answer is " + s.state.Current.CorrectAnswer)
	}

	explanation := theme.Body.Width(width - 8).Render(s.state.Explanation)
	return banner + "\n\n" + theme.Card.Width(width).Render(explanation)
}

func (s *QuizScreen) renderFinished() string {
	return theme.Hint.Render(fmt.Sprintf("Session complete: %d/%d. Press R to play again.",
		s.state.CorrectCount, session.SessionLength))
}
