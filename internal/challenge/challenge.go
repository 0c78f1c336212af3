package challenge

import (
	"fmt"
	"strings"
)

// Difficulty is the learner level a challenge targets.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Challenge is a single code-comprehension question. Challenges are
// immutable once created; callers must not modify Options in place.
type Challenge struct {
	ID            string     `json:"id"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	Description   string     `json:"description"`
	Code          string     `json:"code"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
}

// IsCorrect reports whether answer is the correct option.
func (c Challenge) IsCorrect(answer string) bool {
	return answer == c.CorrectAnswer
}

// HasOption reports whether option is one of the challenge options.
func (c Challenge) HasOption(option string) bool {
	for _, o := range c.Options {
		if o == option {
			return true
		}
	}
	return false
}

// ValidationError describes why a challenge is malformed.
type ValidationError struct {
	ChallengeID string
	Field       string
	Message     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("challenge %q: %s: %s", e.ChallengeID, e.Field, e.Message)
}

// Validate checks structural invariants. Duplicate option text is rejected
// because it would make the correct answer ambiguous.
func (c Challenge) Validate() error {
	fail := func(field, msg string) error {
		return &ValidationError{ChallengeID: c.ID, Field: field, Message: msg}
	}

	if strings.TrimSpace(c.ID) == "" {
		return fail("id", "is empty")
	}
	if strings.TrimSpace(c.Description) == "" {
		return fail("description", "is empty")
	}
	if strings.TrimSpace(c.Code) == "" {
		return fail("code", "is empty")
	}
	if strings.TrimSpace(c.Explanation) == "" {
		return fail("explanation", "is empty")
	}
	if !c.Difficulty.Valid() {
		return fail("difficulty", fmt.Sprintf("unknown value %q", c.Difficulty))
	}
	if len(c.Options) < 2 {
		return fail("options", fmt.Sprintf("need at least 2, got %d", len(c.Options)))
	}

	seen := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		if seen[o] {
			return fail("options", fmt.Sprintf("duplicate option %q", o))
		}
		seen[o] = true
	}
	if !seen[c.CorrectAnswer] {
		return fail("correctAnswer", fmt.Sprintf("%q is not one of the options", c.CorrectAnswer))
	}
	return nil
}
