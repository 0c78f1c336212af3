package session

import (
	"math"

	"github.com/abhisek/quickcode/internal/progress"
)

// Tier classifies a finished session's score.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierPerfect
)

// TierInfo is the display copy for a tier.
type TierInfo struct {
	Emoji   string
	Label   string
	Message string
}

var tierInfo = map[Tier]TierInfo{
	TierPerfect: {"🎉", "Excellent!", "A perfect score! You are a Python master."},
	TierHigh:    {"👍", "Very Good!", "You've got a great handle on this."},
	TierMedium:  {"🙂", "Not Bad!", "Keep practicing to sharpen your skills."},
	TierLow:     {"💪", "Review Needed!", "Don't worry! Re-read the lesson and try again."},
}

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	}
	return "low"
}

// Info returns the display copy for t.
func (t Tier) Info() TierInfo {
	return tierInfo[t]
}

// MarshalText renders the tier name in JSON payloads.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TierFor classifies correct answers out of SessionLength.
func TierFor(correct int) Tier {
	switch {
	case correct == SessionLength:
		return TierPerfect
	case correct >= 6:
		return TierHigh
	case correct >= 4:
		return TierMedium
	}
	return TierLow
}

// Summary holds the final scoring of a session.
type Summary struct {
	CorrectCount    int    `json:"correctCount"`
	Total           int    `json:"total"`
	Tier            Tier   `json:"tier"`
	Label           string `json:"label"`
	Message         string `json:"message"`
	ScorePercentage int    `json:"scorePercentage"`
	XPEarned        int    `json:"xpEarned"`
}

// BuildSummary scores a session with the given number of correct answers.
func BuildSummary(correct int) Summary {
	tier := TierFor(correct)
	info := tier.Info()
	return Summary{
		CorrectCount:    correct,
		Total:           SessionLength,
		Tier:            tier,
		Label:           info.Label,
		Message:         info.Message,
		ScorePercentage: int(math.Round(100 * float64(correct) / SessionLength)),
		XPEarned:        correct * progress.XPPerChallenge,
	}
}
