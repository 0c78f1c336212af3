package lessons

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quickcode/internal/llm"
)

func validCard() llm.MockResponse {
	return llm.JSONResponse(map[string]any{
		"title":       "🔁 Loop Laps",
		"description": "A loop is a race track: the runner keeps doing laps until the race is over.",
		"points": []string{
			"for walks through each item.",
			"range(n) counts from 0 to n-1.",
			"The body is indented under the colon.",
		},
		"example": "for lap in range(3):\n    print(lap)",
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestFor_Authored(t *testing.T) {
	c := For("Functions")
	if c.Title != "🚀 Function Magic" {
		t.Errorf("expected function card, got %q", c.Title)
	}
	if c.Topic != "Functions" {
		t.Errorf("expected topic to be set, got %q", c.Topic)
	}
	if len(c.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(c.Points))
	}

	c.Points[0] = "mutated"
	if For("Functions").Points[0] == "mutated" {
		t.Error("For must return a copy")
	}

	if v := For("Variables"); v.Title != "📦 Variable Boxes" {
		t.Errorf("expected variable card, got %q", v.Title)
	}
}

func TestFor_Generic(t *testing.T) {
	c := For("Recursion")
	if c.Title != "🎯 Target: Recursion" {
		t.Errorf("unexpected generic title %q", c.Title)
	}
	if len(c.Points) != 3 || c.Example == "" {
		t.Errorf("generic card incomplete: %+v", c)
	}
	if HasAuthored("Recursion") {
		t.Error("Recursion has no authored card")
	}
}

func TestService_NilProviderServesStatic(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	svc.Prefetch(t.Context(), "Loops")

	if svc.Ready("Loops") {
		t.Error("nothing should be generated without a provider")
	}
	if got := svc.Card("Loops").Title; got != "🎯 Target: Loops" {
		t.Errorf("expected generic card, got %q", got)
	}
}

func TestService_PrefetchTailorsCard(t *testing.T) {
	mock := llm.NewMockProvider(validCard())
	svc := NewService(mock, DefaultConfig())

	svc.Prefetch(t.Context(), "Loops")
	waitFor(t, func() bool { return svc.Ready("Loops") })

	c := svc.Card("Loops")
	if c.Title != "🔁 Loop Laps" {
		t.Errorf("expected tailored title, got %q", c.Title)
	}
	if c.Topic != "Loops" {
		t.Errorf("expected topic Loops, got %q", c.Topic)
	}

	svc.Prefetch(t.Context(), "Loops")
	if mock.CallCount() != 1 {
		t.Errorf("expected one generation per topic, got %d", mock.CallCount())
	}

	req, ok := mock.LastRequest()
	if !ok {
		t.Fatal("expected a recorded request")
	}
	if req.Schema == nil || req.Schema.Name != "lesson-card" {
		t.Error("expected schema name 'lesson-card'")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: Loops") {
		t.Errorf("prompt missing topic: %q", req.Messages[0].Content)
	}
}

func TestService_AuthoredTopicsSkipProvider(t *testing.T) {
	mock := llm.NewMockProvider(validCard())
	svc := NewService(mock, DefaultConfig())

	svc.Prefetch(t.Context(), "Functions")
	if mock.CallCount() != 0 {
		t.Errorf("authored topics must not call the provider, got %d calls", mock.CallCount())
	}
	if got := svc.Card("Functions").Title; got != "🚀 Function Magic" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestService_FailureKeepsGeneric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.Prefetch(t.Context(), "Classes")
	waitFor(t, func() bool { return svc.Err("Classes") != nil })

	if svc.Ready("Classes") {
		t.Error("failed generation must not be marked ready")
	}
	if got := svc.Card("Classes").Title; got != "🎯 Target: Classes" {
		t.Errorf("expected generic card, got %q", got)
	}

	svc.Prefetch(t.Context(), "Classes")
	if mock.CallCount() != 1 {
		t.Errorf("failed topics are not retried, got %d calls", mock.CallCount())
	}
}

func TestService_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(map[string]any{
		"title":       "Lists",
		"description": "Boxes in a row.",
		"points":      []string{"only one"},
		"example":     "xs = [1, 2]",
	}))
	svc := NewService(mock, DefaultConfig())

	svc.Prefetch(t.Context(), "Lists")
	waitFor(t, func() bool { return svc.Err("Lists") != nil })

	if svc.Ready("Lists") {
		t.Error("invalid card must be rejected")
	}
}

// gatedProvider holds every request until release is closed.
type gatedProvider struct {
	*llm.MockProvider
	release chan struct{}
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	<-g.release
	return g.MockProvider.Generate(ctx, req)
}

func TestService_PrefetchOneInFlightPerTopic(t *testing.T) {
	gate := &gatedProvider{MockProvider: llm.NewMockProvider(validCard()), release: make(chan struct{})}
	svc := NewService(gate, DefaultConfig())

	svc.Prefetch(t.Context(), "Loops")
	svc.Prefetch(t.Context(), "Loops")
	if svc.Ready("Loops") {
		t.Fatal("card ready before the provider answered")
	}
	if got := svc.Card("Loops"); got.Title == "🔁 Loop Laps" {
		t.Error("static card expected while the request is in flight")
	}

	close(gate.release)
	waitFor(t, func() bool { return svc.Ready("Loops") })
	if gate.CallCount() != 1 {
		t.Errorf("expected one request for the topic, got %d", gate.CallCount())
	}
}
