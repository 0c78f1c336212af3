package challengegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quickcode/internal/challenge"
)

// Validator checks a generated challenge. Implementations are stateless.
type Validator interface {
	// Name identifies the validator in errors and logs.
	Name() string

	Validate(c *challenge.Challenge) *ValidationError
}

// ValidationError describes why a generated challenge was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator enforces presence and length limits on text fields.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *challenge.Challenge) *ValidationError {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"topic", c.Topic, 40},
		{"description", c.Description, 300},
		{"code", c.Code, 800},
		{"explanation", c.Explanation, 600},
	}
	for _, l := range limits {
		switch {
		case strings.TrimSpace(l.value) == "":
			return &ValidationError{Validator: v.Name(), Message: l.field + " is empty"}
		case len(l.value) > l.max:
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%s exceeds %d characters", l.field, l.max)}
		}
	}
	return nil
}

// OptionsValidator applies the challenge invariants: at least two distinct
// options with the correct answer among them.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(c *challenge.Challenge) *ValidationError {
	for _, o := range c.Options {
		if strings.TrimSpace(o) == "" {
			return &ValidationError{Validator: v.Name(), Message: "blank option"}
		}
	}
	if err := c.Validate(); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	return nil
}

// CodeValidator rejects snippets that are too long or indented with tabs.
type CodeValidator struct {
	MaxLines int
}

func (v *CodeValidator) Name() string { return "code" }

func (v *CodeValidator) Validate(c *challenge.Challenge) *ValidationError {
	lines := strings.Split(strings.TrimRight(c.Code, "\n"), "\n")
	if v.MaxLines > 0 && len(lines) > v.MaxLines {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("snippet has %d lines, max %d", len(lines), v.MaxLines)}
	}
	for i, l := range lines {
		if strings.HasPrefix(l, "\t") {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("line %d is indented with a tab", i+1)}
		}
	}
	return nil
}
