package session

// Mood is the assistant's expression.
type Mood string

const (
	MoodIdle     Mood = "idle"
	MoodThinking Mood = "thinking"
	MoodHappy    Mood = "happy"
	MoodOops     Mood = "oops"
	MoodTeaching Mood = "teaching"
)

// Signal is the assistant's mood and speech bubble for a state.
type Signal struct {
	Mood    Mood   `json:"mood"`
	Message string `json:"message"`
}

// DeriveSignal maps a session snapshot to the assistant signal. It has no
// side effects and may be called as often as needed.
func DeriveSignal(s State) Signal {
	switch s.Phase {
	case PhaseFinished:
		return Signal{MoodHappy, "Party time! You finished the session!"}
	case PhaseLesson:
		return Signal{MoodTeaching, "Analyzing logic patterns..."}
	case PhaseAwaitingChallenge:
		return Signal{MoodThinking, "Mining new challenges..."}
	case PhaseChecking:
		return Signal{MoodThinking, "Compiling your answer..."}
	case PhaseFeedback:
		if s.IsCorrect {
			return Signal{MoodHappy, "System Green! You got it!"}
		}
		return Signal{MoodOops, "Minor glitch... Let's debug!"}
	case PhaseInitializing:
		return Signal{MoodTeaching, "Beep Boop! I'm Bit. Ready to code?"}
	}
	return Signal{Mood: MoodIdle}
}
