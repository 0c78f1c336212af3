// Package explain produces short remediation text for wrong answers.
package explain

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/quickcode/internal/llm"
)

const opExplain = "explain"

// Explainer tells a learner why their answer was wrong.
type Explainer interface {
	Explain(ctx context.Context, code, userAnswer, correctAnswer string) (string, error)
}

const systemPrompt = `You are an encouraging Python tutor. Reply in plain text with at most two short sentences. Do not use markdown.`

// Config controls the LLMExplainer request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard explanation settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 200, Temperature: 0.5}
}

// LLMExplainer implements Explainer with a free-text LLM request.
type LLMExplainer struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMExplainer.
func New(provider llm.Provider, cfg Config) *LLMExplainer {
	return &LLMExplainer{provider: provider, config: cfg}
}

func (e *LLMExplainer) Explain(ctx context.Context, code, userAnswer, correctAnswer string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(code, userAnswer, correctAnswer)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return "", &llm.ProviderError{Op: opExplain, Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &llm.ProviderError{Op: opExplain, Err: errors.New("empty response")}
	}
	return text, nil
}

func buildPrompt(code, userAnswer, correctAnswer string) string {
	return fmt.Sprintf("The student answered %q for the following Python code:\n\n%s\n\n"+
		"The correct answer was %q. Explain why the student was wrong and why the correct answer "+
		"is right in 2 short sentences. Be encouraging.", userAnswer, code, correctAnswer)
}
