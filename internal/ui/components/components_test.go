package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/session"
)

func TestMultiChoice_Cursor(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})

	mc.Up()
	if mc.Cursor != 0 {
		t.Errorf("cursor moved above first option: %d", mc.Cursor)
	}
	for range 5 {
		mc.Down()
	}
	if mc.Current() != "d" {
		t.Errorf("Current = %q, want d", mc.Current())
	}
	if _, ok := mc.At(4); ok {
		t.Error("At(4) should be out of range")
	}
}

func TestMultiChoice_ViewMarksReveal(t *testing.T) {
	mc := NewMultiChoice([]string{"def", "func", "define", "function"})
	mc.Chosen = "func"
	mc.Revealed = true
	mc.Correct = "def"

	view := mc.View(40)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("revealed view should mark correct and wrong options:\n%s", view)
	}
}

func TestRenderCode(t *testing.T) {
	out := RenderCode("for i in range(3):\n    print(i)\n", 0)
	if !strings.Contains(out, "main.py") {
		t.Error("expected editor title")
	}
	if !strings.Contains(out, "2 │") {
		t.Error("expected line numbers")
	}
	if strings.Contains(out, "3 │") {
		t.Error("trailing newline must not add a line")
	}
}

func TestHighlight_KeepsText(t *testing.T) {
	line := `x = "a b" + 42  # done`
	tokens := tokenPattern.FindAllString(line, -1)
	if strings.Join(tokens, "") != line {
		t.Errorf("tokenizer lost text: %q", tokens)
	}
}

func TestRenderRobot(t *testing.T) {
	out := RenderRobot(session.Signal{Mood: session.MoodHappy, Message: "System Green! You got it!"})
	if !strings.Contains(out, "System Green!") {
		t.Error("expected speech bubble")
	}
	if RenderRobot(session.Signal{Mood: "unknown"}) == "" {
		t.Error("unknown mood should fall back to idle face")
	}
}

func TestStepBar(t *testing.T) {
	bar := NewStepBar(3, 8, 60)
	out := bar.View()
	if !strings.Contains(out, "3/8") {
		t.Errorf("expected challenge count:\n%s", out)
	}
	if w := lipgloss.Width(out); w > 60 {
		t.Errorf("width = %d, want <= 60", w)
	}
	if got := NewStepBar(8, 8, 20).doneSteps(); got != 8 {
		t.Errorf("doneSteps = %d, want 8", got)
	}
	if got := NewStepBar(2, 0, 20).View(); strings.Contains(got, "/") {
		t.Errorf("zero steps should draw a plain bar: %q", got)
	}
}

func TestProgressBar_PercentClamped(t *testing.T) {
	if out := NewProgressBar("Level 2", 0.5, true, 40).View(); !strings.Contains(out, "50%") {
		t.Errorf("expected percent label:\n%s", out)
	}
	if out := NewProgressBar("", 1.7, true, 40).View(); !strings.Contains(out, "100%") {
		t.Errorf("percent above one should clamp:\n%s", out)
	}
}
