package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// Timestamps are stored as unix milliseconds.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS progress_records (
		key        TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence         INTEGER NOT NULL UNIQUE,
		timestamp        INTEGER NOT NULL,
		session_id       TEXT NOT NULL,
		action           TEXT NOT NULL,
		questions_served INTEGER NOT NULL DEFAULT 0,
		correct_answers  INTEGER NOT NULL DEFAULT 0,
		duration_secs    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		timestamp      INTEGER NOT NULL,
		session_id     TEXT NOT NULL,
		challenge_id   TEXT NOT NULL,
		topic          TEXT NOT NULL,
		difficulty     TEXT NOT NULL,
		learner_answer TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		correct        BOOLEAN NOT NULL,
		ai_explained   BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_topic ON answer_events (topic)`,
}

func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range schema {
		if _, err := drv.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
