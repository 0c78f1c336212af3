// Package challengegen produces Python micro-challenges with an LLM.
package challengegen

import (
	"context"

	"github.com/abhisek/quickcode/internal/challenge"
)

// Generator produces a single challenge for a topic and difficulty.
// Every failure is reported as *llm.ProviderError so callers can fall back
// to a seed challenge.
type Generator interface {
	Generate(ctx context.Context, topic string, difficulty challenge.Difficulty) (*challenge.Challenge, error)
}
