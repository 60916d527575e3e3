package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // ignored by tables without a session column
}

// EventRepo provides append and query access to the audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	// GetLLMEvent returns (nil, nil) when no event has the given id.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEventRecord, error)

	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	AppendStageEvent(ctx context.Context, data StageEventData) error
	QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error)

	AppendQuizEvent(ctx context.Context, data QuizEventData) error
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)
}
