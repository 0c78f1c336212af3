package challenge

// Topics is the catalog new challenges are drawn from.
var Topics = []string{
	"Loops",
	"Functions",
	"Dictionaries",
	"Classes",
	"Logic",
	"Recursion",
	"Slicing",
}

// teachable topics get a lesson card before their challenge is shown.
var teachable = map[string]bool{
	"Functions":    true,
	"Loops":        true,
	"Lists":        true,
	"Dictionaries": true,
	"Classes":      true,
}

// IsTeachable reports whether topic has a lesson shown before its challenge.
func IsTeachable(topic string) bool {
	return teachable[topic]
}

// DifficultyForLevel maps a learner level to the difficulty of generated
// challenges.
func DifficultyForLevel(level int) Difficulty {
	if level > 3 {
		return Intermediate
	}
	return Beginner
}
