package llm

import (
	"context"
	"slices"
)

type purposeKey struct{}

// Request purposes. Each logged LLM call records one, and `llm list
// --purpose` filters on them.
const (
	PurposeChallenge   = "challenge-gen"
	PurposeExplanation = "explanation"
	PurposeLesson      = "lesson"
)

// Purposes lists every purpose the quiz issues requests for.
var Purposes = []string{PurposeChallenge, PurposeExplanation, PurposeLesson}

// KnownPurpose reports whether p is one of Purposes.
func KnownPurpose(p string) bool {
	return slices.Contains(Purposes, p)
}

// WithPurpose tags ctx with the reason for the request it will carry.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose on ctx, or "unknown" when untagged.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
