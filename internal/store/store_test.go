package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickcode/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	// Pin one connection so per-connection pragmas are observed.
	db.SetMaxOpenConns(1)
	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		if n <= last {
			t.Fatalf("sequence went from %d to %d", last, n)
		}
		last = n
	}
}

func TestProgressRepo_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.ProgressRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, progress.New(), rec)
}

func TestProgressRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	first := progress.New().ApplyCorrect("1", now)
	require.NoError(t, repo.Save(ctx, first))

	second := first.ApplyCorrect("2", now)
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	var rows int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM progress_records`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestProgressRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, progress.New().ApplyCorrect("1", time.Now())))
	require.NoError(t, repo.Delete(ctx))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsFirstSession())
}

func TestProgressRepo_DeleteFailure(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := s.ProgressRepo()
	require.NoError(t, s.Close())

	err = repo.Delete(context.Background())
	var perr *progress.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "delete", perr.Op)
}

func TestProgressRepo_CorruptRow(t *testing.T) {
	s := openTestStore(t)
	_, err := s.DB().Exec(`INSERT INTO progress_records (key, data, updated_at) VALUES (?, ?, 0)`,
		progress.Key, "{broken")
	require.NoError(t, err)

	rec, err := s.ProgressRepo().Load(context.Background())
	var perr *progress.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "load", perr.Op)
	assert.Equal(t, progress.New(), rec)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "challenge-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "explanation", InputTokens: 40, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "challenge-gen", LatencyMs: 400, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "boom", list[0].ErrorMessage, "newest first")
	assert.False(t, list[0].Success)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: list[1].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 1)

	e, err := repo.GetLLMEvent(ctx, list[2].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "req", e.RequestBody)
	assert.Equal(t, "resp", e.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "challenge-gen", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 100, byPurpose[0].InputTokens)
	assert.Equal(t, 300, byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, 2, byModel[0].Calls, "failed calls are not billed")
	assert.Equal(t, 70, byModel[0].OutputTokens)
}

func TestSessionAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", ChallengeID: "1", Topic: "Variables", Difficulty: "Beginner", LearnerAnswer: "QuickCode", CorrectAnswer: "QuickCode", Correct: true}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", ChallengeID: "2", Topic: "Conditions", Difficulty: "Beginner", LearnerAnswer: "<", CorrectAnswer: ">", Correct: false, AIExplained: true}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", ChallengeID: "1", Topic: "Variables", Difficulty: "Beginner", LearnerAnswer: "name", CorrectAnswer: "QuickCode"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionEnd, QuestionsServed: 8, CorrectAnswers: 5, DurationSecs: 120}))

	sessions, err := repo.QuerySessionEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, SessionEnd, sessions[0].Action)
	assert.Equal(t, 5, sessions[0].CorrectAnswers)
	assert.Greater(t, sessions[0].Sequence, sessions[1].Sequence)

	stats, err := repo.TopicStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, TopicStat{Topic: "Conditions", Attempts: 1, Correct: 0}, stats[0])
	assert.Equal(t, TopicStat{Topic: "Variables", Attempts: 2, Correct: 1}, stats[1])
	assert.InDelta(t, 0.5, stats[1].Accuracy(), 1e-9)
}
