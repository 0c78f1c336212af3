package challenge

// FallbackID identifies the seed challenge served when a new one cannot
// be generated.
const FallbackID = "1"

var seed = []Challenge{
	{
		ID:            "1",
		Topic:         "Variables",
		Difficulty:    Beginner,
		Description:   "What will be the output of this code?",
		Code:          "name = \"QuickCode\"\nprint(name)",
		Options:       []string{"\"QuickCode\"", "QuickCode", "name", "Error"},
		CorrectAnswer: "QuickCode",
		Explanation:   "Printing a string variable outputs its contents without quotes.",
	},
	{
		ID:            "2",
		Topic:         "Conditions",
		Difficulty:    Beginner,
		Description:   "Fill in the blank to check if x is greater than 10.",
		Code:          "x = 15\nif x ____ 10:\n    print(\"Large\")",
		Options:       []string{"<", "==", ">", "is"},
		CorrectAnswer: ">",
		Explanation:   "The > operator is used to check if the left value is strictly greater than the right value.",
	},
	{
		ID:            "3",
		Topic:         "Lists",
		Difficulty:    Beginner,
		Description:   "What is the index of \"Python\" in this list?",
		Code:          "languages = [\"C++\", \"Java\", \"Python\"]",
		Options:       []string{"0", "1", "2", "3"},
		CorrectAnswer: "2",
		Explanation:   "In Python, list indexing starts at 0. So \"C++\" is 0, \"Java\" is 1, and \"Python\" is 2.",
	},
	{
		ID:            "4",
		Topic:         "Loops",
		Difficulty:    Intermediate,
		Description:   "How many times will \"Hello\" be printed?",
		Code:          "for i in range(3):\n    print(\"Hello\")",
		Options:       []string{"2", "3", "4", "0"},
		CorrectAnswer: "3",
		Explanation:   "range(3) generates numbers 0, 1, 2, which results in exactly 3 iterations.",
	},
	{
		ID:            "5",
		Topic:         "Functions",
		Difficulty:    Intermediate,
		Description:   "Complete the function definition.",
		Code:          "____ greet(name):\n    return \"Hi \" + name",
		Options:       []string{"func", "define", "def", "function"},
		CorrectAnswer: "def",
		Explanation:   "Python uses the keyword \"def\" to define a function.",
	},
}

// Seed returns a fresh copy of the built-in challenge set.
func Seed() []Challenge {
	out := make([]Challenge, len(seed))
	for i, c := range seed {
		c.Options = append([]string(nil), c.Options...)
		out[i] = c
	}
	return out
}

// Find returns the challenge with the given id from pool.
func Find(pool []Challenge, id string) (Challenge, bool) {
	for _, c := range pool {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}
