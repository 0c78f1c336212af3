package session

import (
	"time"

	"github.com/abhisek/quickcode/internal/challenge"
)

// SessionLength is the number of challenges in one session.
const SessionLength = 8

// Phase is the controller's position in the session lifecycle.
type Phase int

const (
	PhaseInitializing      Phase = iota // Constructed, Start not yet called
	PhaseLesson                         // Lesson card shown before the challenge
	PhasePresenting                     // Waiting for a selection and submit
	PhaseChecking                       // Submit in flight
	PhaseFeedback                       // Answer revealed
	PhaseAwaitingChallenge              // Next challenge being generated
	PhaseFinished                       // All challenges answered
)

var phaseNames = [...]string{
	PhaseInitializing:      "initializing",
	PhaseLesson:            "lesson",
	PhasePresenting:        "presenting",
	PhaseChecking:          "checking",
	PhaseFeedback:          "feedback",
	PhaseAwaitingChallenge: "awaiting-challenge",
	PhaseFinished:          "finished",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MarshalText renders the phase name in JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// InFlight reports whether a provider or store request is outstanding.
func (p Phase) InFlight() bool {
	return p == PhaseChecking || p == PhaseAwaitingChallenge
}

// State is a snapshot of a session. Pool and Current are copies; mutating
// them does not affect the controller.
type State struct {
	SessionID    string                `json:"sessionId"`
	Phase        Phase                 `json:"phase"`
	SessionIndex int                   `json:"sessionIndex"`
	CorrectCount int                   `json:"correctCount"`
	Pool         []challenge.Challenge `json:"-"`
	Current      *challenge.Challenge  `json:"current,omitempty"`
	Selected     string                `json:"selected,omitempty"`
	Revealed     bool                  `json:"revealed"`
	IsCorrect    bool                  `json:"isCorrect"`
	IsGameOver   bool                  `json:"isGameOver"`
	Explanation  string                `json:"explanation,omitempty"`
	StartedAt    time.Time             `json:"startedAt"`
}

// ShowingLesson reports whether the lesson card is up.
func (s State) ShowingLesson() bool {
	return s.Phase == PhaseLesson
}

// PoolSize is the number of challenges available to this session.
func (s State) PoolSize() int {
	return len(s.Pool)
}

// sessionState is the controller-owned mutable state.
type sessionState struct {
	id           string
	phase        Phase
	index        int
	correctCount int
	pool         []challenge.Challenge
	current      int // index into pool, -1 before Start
	selected     string
	revealed     bool
	isCorrect    bool
	explanation  string
	startedAt    time.Time
}

func (s *sessionState) currentChallenge() (challenge.Challenge, bool) {
	if s.current < 0 || s.current >= len(s.pool) {
		return challenge.Challenge{}, false
	}
	return s.pool[s.current], true
}

func (s *sessionState) clearTurn() {
	s.selected = ""
	s.revealed = false
	s.isCorrect = false
	s.explanation = ""
}

func (s *sessionState) snapshot() State {
	st := State{
		SessionID:    s.id,
		Phase:        s.phase,
		SessionIndex: s.index,
		CorrectCount: s.correctCount,
		Pool:         cloneChallenges(s.pool),
		Selected:     s.selected,
		Revealed:     s.revealed,
		IsCorrect:    s.isCorrect,
		IsGameOver:   s.phase == PhaseFinished,
		Explanation:  s.explanation,
		StartedAt:    s.startedAt,
	}
	if c, ok := s.currentChallenge(); ok {
		c.Options = append([]string(nil), c.Options...)
		st.Current = &c
	}
	return st
}

func cloneChallenges(in []challenge.Challenge) []challenge.Challenge {
	out := make([]challenge.Challenge, len(in))
	for i, c := range in {
		c.Options = append([]string(nil), c.Options...)
		out[i] = c
	}
	return out
}
