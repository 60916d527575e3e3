// Package progress tracks which water-cycle stages are unlocked and which
// badges have been earned.
package progress

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/store"
)

// CuriousExplorerThreshold is the number of asked questions that earns
// BadgeCuriousExplorer.
const CuriousExplorerThreshold = 3

// Tracker is the progression state machine. Unlocked stages and badges only
// ever grow; a new Tracker is the only way to reset them.
//
// Tracker is not safe for concurrent use; the session orchestrator
// serializes access.
type Tracker struct {
	unlocked map[cycle.Stage]bool
	badges   []Badge
	asked    int

	sessionID string
	eventRepo store.EventRepo
	logger    *zap.Logger
}

// NewTracker returns a tracker with only cycle.First unlocked. Completed
// stages and awarded badges are appended to eventRepo when it is non-nil.
func NewTracker(sessionID string, eventRepo store.EventRepo, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		unlocked:  map[cycle.Stage]bool{cycle.First: true},
		sessionID: sessionID,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// SelectStage reports whether s may be presented. Locked stages are
// rejected.
func (t *Tracker) SelectStage(s cycle.Stage) bool {
	return t.unlocked[s]
}

// CompleteStage unlocks the successor of s. It returns the successor and
// true only when that stage was not unlocked before. Completing a locked
// stage is a no-op.
func (t *Tracker) CompleteStage(ctx context.Context, s cycle.Stage) (cycle.Stage, bool) {
	if !t.unlocked[s] {
		return "", false
	}
	next, ok := s.Successor()
	if !ok || t.unlocked[next] {
		return "", false
	}
	t.unlocked[next] = true

	t.persistStage(ctx, s)
	return next, true
}

// RecordQuizCompletion awards BadgeQuizMaster. It returns true the first
// time only.
func (t *Tracker) RecordQuizCompletion(ctx context.Context) bool {
	return t.award(ctx, BadgeQuizMaster)
}

// RecordQuestionAsked counts an asked question and awards
// BadgeCuriousExplorer once the count reaches the threshold. It returns
// true when the badge was awarded by this call.
func (t *Tracker) RecordQuestionAsked(ctx context.Context) bool {
	t.asked++
	if t.asked < CuriousExplorerThreshold {
		return false
	}
	return t.award(ctx, BadgeCuriousExplorer)
}

// IsUnlocked reports whether s is unlocked.
func (t *Tracker) IsUnlocked(s cycle.Stage) bool {
	return t.unlocked[s]
}

// Unlocked returns the unlocked stages in unlock order.
func (t *Tracker) Unlocked() []cycle.Stage {
	var out []cycle.Stage
	for _, s := range cycle.AllStages() {
		if t.unlocked[s] {
			out = append(out, s)
		}
	}
	return out
}

// Badges returns the awarded badges in award order.
func (t *Tracker) Badges() []Badge {
	return append([]Badge(nil), t.badges...)
}

// HasBadge reports whether b has been awarded.
func (t *Tracker) HasBadge(b Badge) bool {
	for _, have := range t.badges {
		if have == b {
			return true
		}
	}
	return false
}

// QuestionsAsked returns the running ask counter.
func (t *Tracker) QuestionsAsked() int {
	return t.asked
}

func (t *Tracker) award(ctx context.Context, b Badge) bool {
	if t.HasBadge(b) {
		return false
	}
	t.badges = append(t.badges, b)
	t.logger.Info("badge awarded", zap.String("session", t.sessionID), zap.String("badge", string(b)))

	if t.eventRepo != nil {
		err := t.eventRepo.AppendBadgeEvent(ctx, store.BadgeEventData{SessionID: t.sessionID, Badge: string(b)})
		if err != nil {
			t.logger.Warn("failed to record badge event", zap.Error(err))
		}
	}
	return true
}

func (t *Tracker) persistStage(ctx context.Context, s cycle.Stage) {
	if t.eventRepo == nil {
		return
	}
	unlocked := t.Unlocked()
	names := make([]string, len(unlocked))
	for i, u := range unlocked {
		names[i] = string(u)
	}
	err := t.eventRepo.AppendStageEvent(ctx, store.StageEventData{
		SessionID: t.sessionID,
		Stage:     string(s),
		Unlocked:  names,
	})
	if err != nil {
		t.logger.Warn("failed to record stage event", zap.Error(err))
	}
}
