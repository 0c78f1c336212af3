package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: editor-dark with Python blue and yellow accents
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FACC15") // Python Yellow
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0D1117") // Editor
	BgCard    = lipgloss.Color("#161B22") // Editor chrome
	Border    = lipgloss.Color("#334155") // Slate
)

// Syntax colors for code snippets.
var (
	SyntaxKeyword  = lipgloss.Color("#EC4899") // Pink
	SyntaxBuiltin  = lipgloss.Color("#60A5FA") // Blue
	SyntaxString   = lipgloss.Color("#34D399") // Emerald
	SyntaxNumber   = lipgloss.Color("#FBBF24") // Amber
	SyntaxComment  = lipgloss.Color("#64748B") // Slate
	SyntaxBlank    = lipgloss.Color("#A5B4FC") // Indigo
	SyntaxLineNum  = lipgloss.Color("#475569") // Slate
	SyntaxOperator = lipgloss.Color("#7DD3FC") // Sky
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Code = lipgloss.NewStyle().
		Background(BgDark).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
