package progress

import (
	"context"
	"testing"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/store"
)

func TestNewTracker_OnlyCollectionUnlocked(t *testing.T) {
	tr := NewTracker("s", nil, nil)

	got := tr.Unlocked()
	if len(got) != 1 || got[0] != cycle.Collection {
		t.Fatalf("unlocked = %v, want [COLLECTION]", got)
	}
	if len(tr.Badges()) != 0 {
		t.Fatalf("badges = %v, want none", tr.Badges())
	}
}

func TestSelectAndComplete_Scenario(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker("s", nil, nil)

	if tr.SelectStage(cycle.Evaporation) {
		t.Fatal("evaporation should be locked")
	}
	if !tr.SelectStage(cycle.Collection) {
		t.Fatal("collection should be selectable")
	}
	next, ok := tr.CompleteStage(ctx, cycle.Collection)
	if !ok || next != cycle.Evaporation {
		t.Fatalf("CompleteStage = (%s, %v)", next, ok)
	}

	got := tr.Unlocked()
	if len(got) != 2 || got[0] != cycle.Collection || got[1] != cycle.Evaporation {
		t.Fatalf("unlocked = %v", got)
	}
}

func TestCompleteStage_Idempotent(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker("s", nil, nil)

	tr.CompleteStage(ctx, cycle.Collection)
	if _, ok := tr.CompleteStage(ctx, cycle.Collection); ok {
		t.Fatal("second completion should not unlock anything new")
	}
	if len(tr.Unlocked()) != 2 {
		t.Fatalf("unlocked = %v", tr.Unlocked())
	}
}

func TestCompleteStage_LockedIsNoop(t *testing.T) {
	tr := NewTracker("s", nil, nil)
	if _, ok := tr.CompleteStage(context.Background(), cycle.Condensation); ok {
		t.Fatal("completing a locked stage must not unlock its successor")
	}
	if tr.IsUnlocked(cycle.Precipitation) {
		t.Fatal("precipitation unlocked without its predecessor")
	}
}

func TestStagesUnlockOnlyAfterPredecessor(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker("s", nil, nil)
	prev := len(tr.Unlocked())

	for _, s := range cycle.AllStages() {
		// Before completing the predecessor, s's successor stays locked.
		if next, ok := s.Successor(); ok && tr.IsUnlocked(next) {
			t.Fatalf("%s unlocked before %s was completed", next, s)
		}
		tr.CompleteStage(ctx, s)

		n := len(tr.Unlocked())
		if n < prev {
			t.Fatalf("unlocked set shrank from %d to %d", prev, n)
		}
		if !tr.IsUnlocked(cycle.Collection) {
			t.Fatal("collection must always be unlocked")
		}
		prev = n
	}
	if len(tr.Unlocked()) != 4 {
		t.Fatalf("all stages should be unlocked, got %v", tr.Unlocked())
	}
	if _, ok := tr.CompleteStage(ctx, cycle.Precipitation); ok {
		t.Fatal("precipitation has no successor")
	}
}

func TestRecordQuizCompletion_Idempotent(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker("s", nil, nil)

	if !tr.RecordQuizCompletion(ctx) {
		t.Fatal("first completion should award")
	}
	for i := 0; i < 3; i++ {
		if tr.RecordQuizCompletion(ctx) {
			t.Fatal("repeat completion should not award again")
		}
	}
	if got := tr.Badges(); len(got) != 1 || got[0] != BadgeQuizMaster {
		t.Fatalf("badges = %v", got)
	}
}

func TestRecordQuestionAsked_Threshold(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker("s", nil, nil)

	for i := 1; i <= 5; i++ {
		awarded := tr.RecordQuestionAsked(ctx)
		if awarded != (i == CuriousExplorerThreshold) {
			t.Fatalf("ask %d: awarded = %v", i, awarded)
		}
		if has := tr.HasBadge(BadgeCuriousExplorer); has != (i >= CuriousExplorerThreshold) {
			t.Fatalf("ask %d: has badge = %v", i, has)
		}
	}
	if tr.QuestionsAsked() != 5 {
		t.Fatalf("asked = %d", tr.QuestionsAsked())
	}
	if len(tr.Badges()) != 1 {
		t.Fatalf("badge added more than once: %v", tr.Badges())
	}
}

func TestBadgesReturnsCopy(t *testing.T) {
	tr := NewTracker("s", nil, nil)
	tr.RecordQuizCompletion(context.Background())

	b := tr.Badges()
	b[0] = BadgeCuriousExplorer
	if !tr.HasBadge(BadgeQuizMaster) {
		t.Fatal("mutating the returned slice changed tracker state")
	}
}

func TestTracker_PersistsEvents(t *testing.T) {
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	repo := s.EventRepo()
	ctx := context.Background()

	tr := NewTracker("sess-1", repo, nil)
	tr.CompleteStage(ctx, cycle.Collection)
	tr.RecordQuizCompletion(ctx)
	tr.RecordQuizCompletion(ctx)

	stages, err := repo.QueryStageEvents(ctx, store.QueryOpts{SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("query stages: %v", err)
	}
	if len(stages) != 1 || stages[0].Stage != "COLLECTION" || len(stages[0].Unlocked) != 2 {
		t.Fatalf("unexpected stage events %+v", stages)
	}

	badges, err := repo.QueryBadgeEvents(ctx, store.QueryOpts{SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("query badges: %v", err)
	}
	if len(badges) != 1 || badges[0].Badge != "QUIZ_MASTER" {
		t.Fatalf("unexpected badge events %+v", badges)
	}
}

func TestBadgeDisplay(t *testing.T) {
	for _, b := range AllBadges() {
		if b.DisplayName() == string(b) || b.Icon() == "" {
			t.Errorf("badge %s has no display data", b)
		}
	}
}
