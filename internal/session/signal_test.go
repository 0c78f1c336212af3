package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSignal(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Signal
	}{
		{"initializing", State{Phase: PhaseInitializing}, Signal{MoodTeaching, "Beep Boop! I'm Bit. Ready to code?"}},
		{"lesson", State{Phase: PhaseLesson}, Signal{MoodTeaching, "Analyzing logic patterns..."}},
		{"presenting", State{Phase: PhasePresenting}, Signal{Mood: MoodIdle}},
		{"checking", State{Phase: PhaseChecking}, Signal{MoodThinking, "Compiling your answer..."}},
		{"awaiting", State{Phase: PhaseAwaitingChallenge}, Signal{MoodThinking, "Mining new challenges..."}},
		{"correct", State{Phase: PhaseFeedback, Revealed: true, IsCorrect: true}, Signal{MoodHappy, "System Green! You got it!"}},
		{"wrong", State{Phase: PhaseFeedback, Revealed: true}, Signal{MoodOops, "Minor glitch... Let's debug!"}},
		{"finished wins over feedback", State{Phase: PhaseFinished, Revealed: true, IsCorrect: false}, Signal{MoodHappy, "Party time! You finished the session!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSignal(tt.state))
			assert.Equal(t, tt.want, DeriveSignal(tt.state), "derivation is pure")
		})
	}
}

func TestPhase(t *testing.T) {
	assert.True(t, PhaseChecking.InFlight())
	assert.True(t, PhaseAwaitingChallenge.InFlight())
	assert.False(t, PhasePresenting.InFlight())
	assert.Equal(t, "awaiting-challenge", PhaseAwaitingChallenge.String())

	b, err := PhaseFeedback.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "feedback", string(b))
}
