package lessons

import "github.com/abhisek/quickcode/internal/llm"

// CardSchema defines the JSON schema for a generated lesson card.
var CardSchema = &llm.Schema{
	Name:        "lesson-card",
	Description: "A beginner-friendly Python lesson card with key points and an example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short catchy title starting with one emoji (2-5 words)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the concept with an everyday analogy",
			},
			"points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    4,
				"description": "Key rules to remember, one short sentence each",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A Python example of at most six lines, newline separated",
			},
		},
		"required":             []any{"title", "description", "points", "example"},
		"additionalProperties": false,
	},
}
