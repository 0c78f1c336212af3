package lessons

import "fmt"

const cardSystemPrompt = `You are Bit, a friendly robot who teaches Python to beginners. You write short, upbeat lesson cards that prepare a learner for a quiz question.`

func buildCardUserMessage(topic string) string {
	return fmt.Sprintf(`Topic: %s

Instructions:
Write a lesson card for this Python topic.
1. Explain the idea in plain words with an everyday analogy.
2. List 3-4 rules a beginner must remember, one short sentence each.
3. Give a runnable Python 3 example of at most six lines. Use 4-space indentation.
4. Do not ask a question and do not reveal quiz answers.`, topic)
}
