package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeReply turns the text a provider returned into Response content.
// Explanations are kept as written. Challenge and lesson replies may arrive
// wrapped in a markdown fence even under structured output; the fence is
// dropped before the JSON is checked against the schema.
func decodeReply(provider, text string, req Request) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty %s reply", provider)}
	}
	if req.Schema == nil {
		return json.RawMessage(trimmed), nil
	}

	content := json.RawMessage(stripFence(trimmed))
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// stripFence removes a single ``` fence (with optional language tag)
// enclosing the whole of s.
func stripFence(s string) string {
	const fence = "```"
	if len(s) < 2*len(fence) || !strings.HasPrefix(s, fence) || !strings.HasSuffix(s, fence) {
		return s
	}
	body := s[len(fence) : len(s)-len(fence)]
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return s
	}
	return strings.TrimSpace(body[nl+1:])
}
