package lessons

// Config holds tailored card generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for card generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.5,
	}
}
