package challenge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChallenge() Challenge {
	return Challenge{
		ID:            "t1",
		Topic:         "Loops",
		Difficulty:    Beginner,
		Description:   "How many lines are printed?",
		Code:          "for i in range(2):\n    print(i)",
		Options:       []string{"1", "2", "3", "0"},
		CorrectAnswer: "2",
		Explanation:   "range(2) yields 0 and 1.",
	}
}

func TestSeedIsValid(t *testing.T) {
	for _, c := range Seed() {
		if err := c.Validate(); err != nil {
			t.Errorf("seed challenge %s invalid: %v", c.ID, err)
		}
	}
}

func TestSeedContainsFallback(t *testing.T) {
	c, ok := Find(Seed(), FallbackID)
	require.True(t, ok)
	assert.Equal(t, "Variables", c.Topic)
}

func TestSeedReturnsCopy(t *testing.T) {
	a := Seed()
	a[0].Options[0] = "mutated"

	b := Seed()
	assert.NotEqual(t, "mutated", b[0].Options[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Challenge)
		field  string
	}{
		{"ok", func(*Challenge) {}, ""},
		{"empty id", func(c *Challenge) { c.ID = " " }, "id"},
		{"empty code", func(c *Challenge) { c.Code = "" }, "code"},
		{"bad difficulty", func(c *Challenge) { c.Difficulty = "Expert" }, "difficulty"},
		{"one option", func(c *Challenge) { c.Options = []string{"2"} }, "options"},
		{"duplicate options", func(c *Challenge) { c.Options = []string{"2", "2", "3"} }, "options"},
		{"answer not an option", func(c *Challenge) { c.CorrectAnswer = "7" }, "correctAnswer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validChallenge()
			tt.mutate(&c)
			err := c.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestIsCorrect(t *testing.T) {
	c := validChallenge()
	assert.True(t, c.IsCorrect("2"))
	assert.False(t, c.IsCorrect("3"))
	assert.False(t, c.IsCorrect(""))
}

func TestDifficultyForLevel(t *testing.T) {
	assert.Equal(t, Beginner, DifficultyForLevel(1))
	assert.Equal(t, Beginner, DifficultyForLevel(3))
	assert.Equal(t, Intermediate, DifficultyForLevel(4))
}

func TestIsTeachable(t *testing.T) {
	assert.True(t, IsTeachable("Functions"))
	assert.True(t, IsTeachable("Lists"))
	assert.False(t, IsTeachable("Recursion"))
	assert.False(t, IsTeachable("Variables"))
}
