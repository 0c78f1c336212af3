package challengegen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated challenge; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorChallenges caps how many earlier descriptions are listed in
	// the prompt so the model avoids repeats.
	MaxPriorChallenges int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&CodeValidator{MaxLines: 20},
		},
		MaxTokens:          768,
		Temperature:        0.8,
		MaxPriorChallenges: 6,
	}
}
