package lessons

import "fmt"

// Card is a short tutorial shown before a challenge on its topic.
type Card struct {
	Topic       string   `json:"topic"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      []string `json:"points"`
	Example     string   `json:"example"`
}

var authored = map[string]Card{
	"Functions": {
		Title:       "🚀 Function Magic",
		Description: "Think of a function as a mini-machine: you give it an ingredient, it does the work, and serves the result!",
		Points: []string{
			"Start with 'def' (short for define).",
			"Give it a cool name (e.g., make_pizza).",
			"Parentheses () are hands to hold data.",
			"Use 'return' to send the result back out.",
		},
		Example: "def super_power(name):\n    return name + ' turns invisible!'\n\n# Call it: super_power('Python')",
	},
	"Variables": {
		Title:       "📦 Variable Boxes",
		Description: "A variable is just a sticky note on a box to remember what's inside.",
		Points: []string{
			"Name on the left, value on the right.",
			"Use '=' to store the value.",
			"No spaces in names (use_underscores).",
			"Python guesses the type automatically!",
		},
		Example: "player_score = 100\nmessage = 'Level Up!'",
	},
}

// HasAuthored reports whether topic has a hand-written card.
func HasAuthored(topic string) bool {
	_, ok := authored[topic]
	return ok
}

// For returns the hand-written card for topic, or the generic card.
func For(topic string) Card {
	if c, ok := authored[topic]; ok {
		c.Topic = topic
		c.Points = append([]string(nil), c.Points...)
		return c
	}
	return generic(topic)
}

func generic(topic string) Card {
	return Card{
		Topic:       topic,
		Title:       fmt.Sprintf("🎯 Target: %s", topic),
		Description: "Get ready to master this core concept. It's simpler than you think!",
		Points: []string{
			"Watch the punctuation closely (:).",
			"Indentation is the key to success.",
			"Every line of code has a purpose.",
		},
		Example: "# Analyze this pattern carefully...",
	}
}
