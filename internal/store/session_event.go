package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	sessionEventsTable = "session_events"
	answerEventsTable  = "answer_events"
)

var sessionEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "action",
	"questions_served", "correct_answers", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder(r.drv).Insert(sessionEventsTable).
		Columns(sessionEventColumns[1:]...).
		Values(
			seqNum, r.now().UnixMilli(), data.SessionID, data.Action,
			data.QuestionsServed, data.CorrectAnswers, data.DurationSecs,
		).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := builder(r.drv).Select(sessionEventColumns...).From(entsql.Table(sessionEventsTable))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			e  SessionEvent
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Action,
			&e.QuestionsServed, &e.CorrectAnswers, &e.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder(r.drv).Insert(answerEventsTable).
		Columns(
			"sequence", "timestamp", "session_id", "challenge_id", "topic", "difficulty",
			"learner_answer", "correct_answer", "correct", "ai_explained",
		).
		Values(
			seqNum, r.now().UnixMilli(), data.SessionID, data.ChallengeID, data.Topic, data.Difficulty,
			data.LearnerAnswer, data.CorrectAnswer, data.Correct, data.AIExplained,
		).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicStats(ctx context.Context) ([]TopicStat, error) {
	query, args := builder(r.drv).Select(
		"topic",
		entsql.Count("*"),
		"COALESCE("+entsql.Sum("correct")+", 0)",
	).
		From(entsql.Table(answerEventsTable)).
		GroupBy("topic").
		OrderBy("topic").
		Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topic stats: %w", err)
	}
	defer rows.Close()

	var out []TopicStat
	for rows.Next() {
		var s TopicStat
		if err := rows.Scan(&s.Topic, &s.Attempts, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan topic stat: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
