package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/ui/theme"
)

// ProgressBar draws a horizontal bar. The summary uses it for XP toward the
// next level; the quiz sets Steps to draw one segment per challenge.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// Steps splits the bar into segments and replaces the percentage
	// with a "done/steps" count.
	Steps int
}

// NewProgressBar creates a continuous bar filled to percent (0..1).
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewStepBar creates a segmented bar with done of steps filled.
func NewStepBar(done, steps, width int) ProgressBar {
	p := ProgressBar{Width: width, Steps: steps}
	if steps > 0 {
		p.Percent = float64(done) / float64(steps)
	}
	return p
}

func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := ""
	switch {
	case p.Steps > 0:
		suffix = fmt.Sprintf("  %d/%d", p.doneSteps(), p.Steps)
	case p.ShowPercent:
		suffix = fmt.Sprintf("  %d%%", int(clamp01(p.Percent)*100))
	}

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)
	if p.Steps > 0 {
		result += p.segments(barWidth)
	} else {
		filled := int(float64(barWidth) * clamp01(p.Percent))
		result += fill(filled, barWidth-filled)
	}

	if suffix != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}
	return result
}

func (p ProgressBar) doneSteps() int {
	return int(math.Round(clamp01(p.Percent) * float64(p.Steps)))
}

// segments draws Steps cells separated by one-column gaps.
func (p ProgressBar) segments(width int) string {
	cell := max((width-(p.Steps-1))/p.Steps, 1)
	done := p.doneSteps()

	cells := make([]string, p.Steps)
	for i := range cells {
		if i < done {
			cells[i] = fill(cell, 0)
		} else {
			cells[i] = fill(0, cell)
		}
	}
	return strings.Join(cells, " ")
}

func fill(filled, empty int) string {
	return lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
