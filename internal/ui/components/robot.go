package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/session"
	"github.com/abhisek/quickcode/internal/ui/theme"
)

var robotFaces = map[session.Mood][]string{
	session.MoodIdle:     {"  ┌─┴─┐  ", "  │o o│  ", "  │ ─ │  ", "  └───┘  "},
	session.MoodHappy:    {"  ┌─┴─┐  ", "  │^ ^│  ", "  │ ◡ │  ", " \\└───┘/ "},
	session.MoodThinking: {"  ┌─*─┐  ", "  │o o│  ", "  │ ~ │  ", "  └───┘  "},
	session.MoodOops:     {"  ┌─┴─┐  ", "  │x x│  ", "  │ ︵│  ", "  └───┘  "},
	session.MoodTeaching: {"  ┌─┴─┐  ", "  │◉ ◉│  ", "  │ ▽ │  ", "  └───┘/ "},
}

func moodColor(m session.Mood) color.Color {
	switch m {
	case session.MoodHappy:
		return theme.Success
	case session.MoodThinking:
		return theme.Accent
	case session.MoodOops:
		return theme.Error
	case session.MoodTeaching:
		return theme.Secondary
	}
	return theme.Primary
}

// RenderRobot draws Bit with its speech bubble. An empty message draws
// the robot alone.
func RenderRobot(sig session.Signal) string {
	face, ok := robotFaces[sig.Mood]
	if !ok {
		face = robotFaces[session.MoodIdle]
	}
	robot := lipgloss.NewStyle().Foreground(moodColor(sig.Mood)).Render(strings.Join(face, "\n"))
	if sig.Message == "" {
		return robot
	}

	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(moodColor(sig.Mood)).
		Foreground(theme.Text).
		Padding(0, 1).
		Render(sig.Message)

	return lipgloss.JoinHorizontal(lipgloss.Center, robot, " ", bubble)
}
