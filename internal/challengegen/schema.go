package challengegen

import "github.com/abhisek/quickcode/internal/llm"

// ChallengeSchema is the structured output contract for generated challenges.
var ChallengeSchema = &llm.Schema{
	Name:        "python-challenge",
	Description: "A short Python code-comprehension challenge with four options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The Python concept the challenge exercises",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "The question shown above the code, e.g. what does this print?",
			},
			"code": map[string]any{
				"type":        "string",
				"description": "A short Python snippet, newline separated, possibly with a blank to fill",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly four distinct answer options",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, copied exactly",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the correct answer",
			},
		},
		"required":             []any{"topic", "description", "code", "options", "correctAnswer", "explanation"},
		"additionalProperties": false,
	},
}
