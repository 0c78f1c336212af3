package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/router"
	"github.com/abhisek/quickcode/internal/session"
)

func testScreen(correct int) *SummaryScreen {
	rec := progress.New()
	rec.XP = correct * progress.XPPerChallenge
	rec.Level = progress.LevelFor(rec.XP)
	return New(session.BuildSummary(correct), rec)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := testScreen(8)
	if s.Title() != "Session Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := testScreen(8)
	view := s.View(80, 24)
	for _, want := range []string{"Excellent!", "Score: 8/8", "100%", "+160", "Play Again"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	low := testScreen(2).View(80, 24)
	if !strings.Contains(low, "Review Needed!") {
		t.Error("expected low tier label")
	}
}

func TestSummaryScreen_EnterPlaysAgain(t *testing.T) {
	s := testScreen(5)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PopScreenMsg)
	if !ok || msg.Result != PlayAgain {
		t.Errorf("expected pop with play-again result, got %#v", msg)
	}
}

func TestSummaryScreen_RPlaysAgain(t *testing.T) {
	s := testScreen(5)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := testScreen(0)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
