package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Session event actions.
const (
	SessionStart   = "start"
	SessionEnd     = "end"
	SessionRestart = "restart"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionEvent is a stored session lifecycle event.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID     string
	ChallengeID   string
	Topic         string
	Difficulty    string
	LearnerAnswer string
	CorrectAnswer string
	Correct       bool
	AIExplained   bool
}

// TopicStat summarizes answers for a single topic.
type TopicStat struct {
	Topic    string
	Attempts int
	Correct  int
}

// Accuracy returns the fraction of correct answers.
func (t TopicStat) Accuracy() float64 {
	if t.Attempts == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempts)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	// TopicStats aggregates answer events by topic.
	TopicStats(ctx context.Context) ([]TopicStat, error)
}
