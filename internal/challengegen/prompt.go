package challengegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quickcode/internal/challenge"
)

const systemPrompt = `You write Python micro-challenges for a quick practice quiz.

Rules:
- Generate one short challenge: a code snippet with a missing part, or a question about what the snippet prints or returns.
- Keep the snippet under 12 lines of valid Python 3. Use four spaces for indentation.
- Provide exactly 4 distinct options. Exactly one is correct and correctAnswer must repeat it character for character.
- Distractors should reflect common misconceptions, not random values.
- The explanation is one or two friendly sentences.
- Do not repeat any challenge from the "already asked" list.`

// buildUserMessage renders the per-request prompt.
func buildUserMessage(topic string, difficulty challenge.Difficulty, prior []string, max int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a short Python coding micro-challenge about %s for a %s level learner.\n", topic, difficulty)
	b.WriteString("The challenge should be a code snippet with a missing part (or a question about its output).\n")
	b.WriteString("Provide 4 multiple choice options.\n")

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildPrior(prior, max))

	return b.String()
}

// buildPrior lists the most recent max descriptions, or "None".
func buildPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
