package cycle

import "testing"

func TestSuccessorChain(t *testing.T) {
	// Walking the chain from First visits every stage exactly once.
	seen := map[Stage]bool{}
	s, ok := First, true
	for ok {
		if seen[s] {
			t.Fatalf("cycle in unlock chain at %s", s)
		}
		seen[s] = true
		s, ok = s.Successor()
	}
	if len(seen) != len(AllStages()) {
		t.Fatalf("chain visits %d stages, want %d", len(seen), len(AllStages()))
	}

	if _, ok := Precipitation.Successor(); ok {
		t.Error("precipitation should have no successor")
	}
}

func TestPredecessor(t *testing.T) {
	tests := []struct {
		stage Stage
		want  Stage
		ok    bool
	}{
		{Collection, "", false},
		{Evaporation, Collection, true},
		{Condensation, Evaporation, true},
		{Precipitation, Condensation, true},
	}
	for _, tt := range tests {
		got, ok := tt.stage.Predecessor()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.Predecessor() = (%q, %v), want (%q, %v)", tt.stage, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseStage(t *testing.T) {
	for _, in := range []string{"collection", "COLLECTION", " Collection "} {
		s, err := ParseStage(in)
		if err != nil || s != Collection {
			t.Errorf("ParseStage(%q) = %q, %v", in, s, err)
		}
	}
	if _, err := ParseStage("sublimation"); err == nil {
		t.Error("expected an error for an unknown stage")
	}
}

func TestDetailsFor(t *testing.T) {
	for _, s := range AllStages() {
		d := DetailsFor(s)
		if d.Title == "" || d.Description == "" || d.Icon == "" {
			t.Errorf("incomplete details for %s: %+v", s, d)
		}
	}
	if DetailsFor(Collection).Title != "Recollida" {
		t.Errorf("collection title = %q", DetailsFor(Collection).Title)
	}
}

func TestDiagramOrderCoversAllStages(t *testing.T) {
	order := DiagramOrder()
	if len(order) != 4 {
		t.Fatalf("got %d stages", len(order))
	}
	seen := map[Stage]bool{}
	for _, s := range order {
		seen[s] = true
	}
	for _, s := range AllStages() {
		if !seen[s] {
			t.Errorf("%s missing from diagram order", s)
		}
	}
}
