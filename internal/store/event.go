package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// sequenceCounter hands out the global monotonic sequence shared by every
// event table, so events of different kinds can be ordered against each
// other (did the badge land before or after the quiz result?).
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with plain SQL and the global sequence
// counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// insert assigns the next sequence number and a timestamp, then inserts
// one row into table. cols and args exclude sequence and timestamp.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, args ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	allCols := append([]string{"sequence", "timestamp"}, cols...)
	allArgs := append([]any{seqNum, time.Now().UnixMilli()}, args...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(allCols)), ", ")

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(allCols, ", "), placeholders)
	if _, err := r.db.ExecContext(ctx, query, allArgs...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// where renders opts as a WHERE/ORDER/LIMIT suffix. Results are newest first.
func (opts QueryOpts) where(extra ...string) (string, []any) {
	var conds []string
	var args []any

	conds = append(conds, extra...)
	if opts.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}
	if opts.SessionID != "" {
		conds = append(conds, "session_id = ?")
		args = append(args, opts.SessionID)
	}

	var b strings.Builder
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY sequence DESC")
	if opts.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}
	return b.String(), args
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
