package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/router"
	"github.com/abhisek/quickcode/internal/screen"
	"github.com/abhisek/quickcode/internal/session"
	"github.com/abhisek/quickcode/internal/ui/components"
	"github.com/abhisek/quickcode/internal/ui/layout"
	"github.com/abhisek/quickcode/internal/ui/theme"
)

// PlayAgain is the pop result asking the quiz screen to restart.
const PlayAgain = "play-again"

// SummaryScreen displays the final score of a session.
type SummaryScreen struct {
	summary  session.Summary
	progress progress.Record
	button   components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum session.Summary, rec progress.Record) *SummaryScreen {
	return &SummaryScreen{
		summary:  sum,
		progress: rec,
		button: components.NewButton("Play Again", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{Result: PlayAgain} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "r":
			return s, s.button.OnPress()
		default:
			var cmd tea.Cmd
			s.button, cmd = s.button.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	info := sum.Tier.Info()

	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle(), info.Emoji))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(tierColor(sum.Tier)).Bold(true), info.Label))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), info.Message))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Score: %d/%d        Accuracy: %d%%        XP earned: +%d",
		sum.CorrectCount, sum.Total, sum.ScorePercentage, sum.XPEarned)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar(fmt.Sprintf("Level %d", s.progress.Level), s.progress.LevelProgress(), true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%d XP total   🔥 %d day streak", s.progress.XP, s.progress.Streak)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.button.View()))

	return b.String()
}

func tierColor(t session.Tier) color.Color {
	switch t {
	case session.TierPerfect:
		return theme.Accent
	case session.TierHigh:
		return theme.Success
	case session.TierMedium:
		return theme.Secondary
	default:
		return theme.Error
	}
}
