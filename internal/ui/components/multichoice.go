package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/ui/theme"
)

// MultiChoice renders a four-option answer picker. The cursor is local to
// the view; the chosen option and the reveal come from the session.
type MultiChoice struct {
	Options  []string
	Cursor   int
	Chosen   string
	Revealed bool
	Correct  string
}

// NewMultiChoice creates a picker with the cursor on the first option.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Up moves the cursor to the previous option.
func (m *MultiChoice) Up() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// Down moves the cursor to the next option.
func (m *MultiChoice) Down() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// At returns the option at index i, if any.
func (m MultiChoice) At(i int) (string, bool) {
	if i < 0 || i >= len(m.Options) {
		return "", false
	}
	return m.Options[i], true
}

// Current returns the option under the cursor.
func (m MultiChoice) Current() string {
	opt, _ := m.At(m.Cursor)
	return opt
}

// View renders the options one per line.
func (m MultiChoice) View(width int) string {
	labels := []string{"A", "B", "C", "D"}

	var b strings.Builder
	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		mark := "○"
		if opt == m.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && opt == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && opt == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
