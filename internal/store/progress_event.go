package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// BadgeEventData records a badge award.
type BadgeEventData struct {
	SessionID string
	Badge     string
}

// BadgeEventRecord is a stored badge award.
type BadgeEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	BadgeEventData
}

// StageEventData records a completed stage and the unlocked set after it.
type StageEventData struct {
	SessionID string
	Stage     string
	Unlocked  []string
}

// StageEventRecord is a stored stage completion.
type StageEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	StageEventData
}

// QuizEventData records a finished quiz.
type QuizEventData struct {
	SessionID  string
	Difficulty string
	Score      int
	Total      int
	Percentage int
}

// QuizEventRecord is a stored quiz result.
type QuizEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	return r.insert(ctx, "badge_events", []string{"session_id", "badge"}, data.SessionID, data.Badge)
}

func (r *eventRepo) QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	suffix, args := opts.where()
	return queryRows(ctx, r.db, "SELECT sequence, timestamp, session_id, badge FROM badge_events"+suffix, args,
		func(s rowScanner) (BadgeEventRecord, error) {
			var rec BadgeEventRecord
			var ts int64
			err := s.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Badge)
			rec.Timestamp = fromMillis(ts)
			return rec, err
		})
}

func (r *eventRepo) AppendStageEvent(ctx context.Context, data StageEventData) error {
	return r.insert(ctx, "stage_events", []string{"session_id", "stage", "unlocked"},
		data.SessionID, data.Stage, strings.Join(data.Unlocked, ","))
}

func (r *eventRepo) QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error) {
	suffix, args := opts.where()
	return queryRows(ctx, r.db, "SELECT sequence, timestamp, session_id, stage, unlocked FROM stage_events"+suffix, args,
		func(s rowScanner) (StageEventRecord, error) {
			var rec StageEventRecord
			var ts int64
			var unlocked string
			err := s.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Stage, &unlocked)
			rec.Timestamp = fromMillis(ts)
			if unlocked != "" {
				rec.Unlocked = strings.Split(unlocked, ",")
			}
			return rec, err
		})
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	return r.insert(ctx, "quiz_events", []string{"session_id", "difficulty", "score", "total", "percentage"},
		data.SessionID, data.Difficulty, data.Score, data.Total, data.Percentage)
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	suffix, args := opts.where()
	return queryRows(ctx, r.db,
		"SELECT sequence, timestamp, session_id, difficulty, score, total, percentage FROM quiz_events"+suffix, args,
		func(s rowScanner) (QuizEventRecord, error) {
			var rec QuizEventRecord
			var ts int64
			err := s.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Difficulty, &rec.Score, &rec.Total, &rec.Percentage)
			rec.Timestamp = fromMillis(ts)
			return rec, err
		})
}

func queryRows[T any](ctx context.Context, db *sql.DB, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
