package components

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/ui/theme"
)

var (
	keywords = map[string]bool{
		"def": true, "class": true, "if": true, "else": true, "elif": true, "for": true,
		"while": true, "try": true, "except": true, "finally": true, "with": true, "as": true,
		"import": true, "from": true, "return": true, "yield": true, "break": true,
		"continue": true, "pass": true, "lambda": true, "global": true, "nonlocal": true,
		"del": true, "in": true, "is": true, "and": true, "or": true, "not": true,
		"assert": true, "await": true, "async": true,
	}
	builtins = map[string]bool{
		"print": true, "range": true, "len": true, "int": true, "str": true, "float": true,
		"list": true, "dict": true, "set": true, "tuple": true, "super": true, "self": true,
		"True": true, "False": true, "None": true,
	}

	// tokenPattern splits a line into comments, strings, blanks, words,
	// numbers and everything else.
	tokenPattern = regexp.MustCompile(`#.*|"[^"]*"|'[^']*'|_{2,}|[A-Za-z_][A-Za-z0-9_]*|\d+|[+\-*/%=!<>|&:]|.`)
)

// RenderCode draws a Python snippet in an editor frame with line numbers.
func RenderCode(code string, width int) string {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	gutter := len(fmt.Sprint(len(lines)))

	numStyle := lipgloss.NewStyle().Foreground(theme.SyntaxLineNum)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("● ● ●   main.py"))
	for i, line := range lines {
		b.WriteString("\n")
		b.WriteString(numStyle.Render(fmt.Sprintf("%*d │ ", gutter, i+1)))
		b.WriteString(Highlight(line))
	}

	style := theme.Code
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(b.String())
}

// Highlight colors one line of Python.
func Highlight(line string) string {
	var b strings.Builder
	for _, tok := range tokenPattern.FindAllString(line, -1) {
		b.WriteString(styleFor(tok).Render(tok))
	}
	return b.String()
}

func styleFor(tok string) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case strings.HasPrefix(tok, "#"):
		return s.Foreground(theme.SyntaxComment).Italic(true)
	case strings.HasPrefix(tok, `"`), strings.HasPrefix(tok, "'"):
		return s.Foreground(theme.SyntaxString)
	case strings.HasPrefix(tok, "__") && strings.Trim(tok, "_") == "":
		return s.Foreground(theme.SyntaxBlank).Underline(true).Bold(true)
	case keywords[tok]:
		return s.Foreground(theme.SyntaxKeyword)
	case builtins[tok]:
		return s.Foreground(theme.SyntaxBuiltin)
	case tok[0] >= '0' && tok[0] <= '9':
		return s.Foreground(theme.SyntaxNumber)
	case strings.ContainsAny(tok, "+-*/%=!<>|&:") && len(tok) == 1:
		return s.Foreground(theme.SyntaxOperator)
	}
	return s
}
