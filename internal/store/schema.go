package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Every event table carries the global sequence number and a unix
// millisecond timestamp. Tables are append-only.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT    NOT NULL,
		model         TEXT    NOT NULL,
		purpose       TEXT    NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT    NOT NULL DEFAULT '',
		request_body  TEXT    NOT NULL DEFAULT '',
		response_body TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS badge_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL UNIQUE,
		timestamp  INTEGER NOT NULL,
		session_id TEXT    NOT NULL,
		badge      TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stage_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL UNIQUE,
		timestamp  INTEGER NOT NULL,
		session_id TEXT    NOT NULL,
		stage      TEXT    NOT NULL,
		unlocked   TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL UNIQUE,
		timestamp  INTEGER NOT NULL,
		session_id TEXT    NOT NULL,
		difficulty TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		total      INTEGER NOT NULL,
		percentage INTEGER NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
