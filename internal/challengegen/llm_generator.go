package challengegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/quickcode/internal/challenge"
	"github.com/abhisek/quickcode/internal/llm"
)

const opGenerate = "generate-challenge"

// LLMGenerator implements Generator using an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	newID    func() string

	mu    sync.Mutex
	prior []string
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		newID:    func() string { return "ai-" + uuid.NewString() },
	}
}

// challengeOutput is the raw LLM response before validation.
type challengeOutput struct {
	Topic         string   `json:"topic"`
	Description   string   `json:"description"`
	Code          string   `json:"code"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate asks the provider for one challenge and runs the validator chain.
func (g *LLMGenerator) Generate(ctx context.Context, topic string, difficulty challenge.Difficulty) (*challenge.Challenge, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChallenge)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, difficulty, g.priorSnapshot(), g.config.MaxPriorChallenges)},
		},
		Schema:      ChallengeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &llm.ProviderError{Op: opGenerate, Err: err}
	}

	var raw challengeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ProviderError{Op: opGenerate, Err: fmt.Errorf("parse response: %w", err)}
	}

	c := &challenge.Challenge{
		ID:            g.newID(),
		Topic:         strings.TrimSpace(raw.Topic),
		Difficulty:    difficulty,
		Description:   strings.TrimSpace(raw.Description),
		Code:          strings.TrimRight(raw.Code, "\n "),
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Explanation:   strings.TrimSpace(raw.Explanation),
	}
	if c.Topic == "" {
		c.Topic = topic
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(c); verr != nil {
			return nil, &llm.ProviderError{Op: opGenerate, Err: verr}
		}
	}

	g.remember(c.Description)
	return c, nil
}

func (g *LLMGenerator) priorSnapshot() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prior...)
}

// remember keeps a bounded history of generated descriptions.
func (g *LLMGenerator) remember(desc string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prior = append(g.prior, desc)
	if max := g.config.MaxPriorChallenges; max > 0 && len(g.prior) > max {
		g.prior = g.prior[len(g.prior)-max:]
	}
}
