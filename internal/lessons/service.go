package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/quickcode/internal/llm"
)

// Service hands out lesson cards. Topics without a hand-written card get
// the generic card until a tailored one has been generated in the
// background.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu       sync.Mutex
	tailored map[string]Card
	inflight map[string]bool
	failed   map[string]error
}

// NewService creates a card service. A nil provider serves static cards only.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		tailored: make(map[string]Card),
		inflight: make(map[string]bool),
		failed:   make(map[string]error),
	}
}

// Card returns the best card available for topic right now.
func (s *Service) Card(topic string) Card {
	if HasAuthored(topic) {
		return For(topic)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.tailored[topic]; ok {
		c.Points = append([]string(nil), c.Points...)
		return c
	}
	return generic(topic)
}

// Prefetch starts generating a tailored card for topic. It returns
// immediately; it does nothing for authored topics, topics already
// generated or in flight, or when no provider is configured. A failed
// topic is not retried.
func (s *Service) Prefetch(ctx context.Context, topic string) {
	if s.provider == nil || HasAuthored(topic) || strings.TrimSpace(topic) == "" {
		return
	}
	s.mu.Lock()
	_, done := s.tailored[topic]
	_, failed := s.failed[topic]
	if done || failed || s.inflight[topic] {
		s.mu.Unlock()
		return
	}
	s.inflight[topic] = true
	s.mu.Unlock()

	go func() {
		card, err := s.generate(ctx, topic)
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.inflight, topic)
		if err != nil {
			s.failed[topic] = err
			return
		}
		s.tailored[topic] = *card
	}()
}

// Ready reports whether a tailored card for topic has been generated.
func (s *Service) Ready(topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tailored[topic]
	return ok
}

// Err returns the generation error for topic, if any.
func (s *Service) Err(topic string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed[topic]
}

type cardOutput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      []string `json:"points"`
	Example     string   `json:"example"`
}

func (s *Service) generate(ctx context.Context, topic string) (*Card, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: cardSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCardUserMessage(topic)},
		},
		Schema:      CardSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson card generation: %w", err)
	}

	var out cardOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson card: %w", err)
	}
	if strings.TrimSpace(out.Title) == "" || strings.TrimSpace(out.Example) == "" {
		return nil, fmt.Errorf("lesson card for %q is incomplete", topic)
	}

	return &Card{
		Topic:       topic,
		Title:       out.Title,
		Description: out.Description,
		Points:      out.Points,
		Example:     out.Example,
	}, nil
}
