// Package cycle holds the four stages of the water cycle and their fixed
// unlock chain.
package cycle

import (
	"fmt"
	"strings"
)

// Stage is one phase of the water cycle.
type Stage string

const (
	Evaporation   Stage = "EVAPORATION"
	Condensation  Stage = "CONDENSATION"
	Precipitation Stage = "PRECIPITATION"
	Collection    Stage = "COLLECTION"
)

// First is the stage that is unlocked from the start.
const First = Collection

// successors is the unlock chain. Precipitation has no successor.
var successors = map[Stage]Stage{
	Collection:   Evaporation,
	Evaporation:  Condensation,
	Condensation: Precipitation,
}

// AllStages returns every stage in unlock order.
func AllStages() []Stage {
	return []Stage{Collection, Evaporation, Condensation, Precipitation}
}

// DiagramOrder returns the stages in the order the water moves around the
// diagram.
func DiagramOrder() []Stage {
	return []Stage{Evaporation, Condensation, Precipitation, Collection}
}

// Successor returns the stage unlocked by completing s.
func (s Stage) Successor() (Stage, bool) {
	next, ok := successors[s]
	return next, ok
}

// Predecessor returns the stage whose completion unlocks s. First has none.
func (s Stage) Predecessor() (Stage, bool) {
	for from, to := range successors {
		if to == s {
			return from, true
		}
	}
	return "", false
}

// Valid reports whether s is one of the four stages.
func (s Stage) Valid() bool {
	switch s {
	case Evaporation, Condensation, Precipitation, Collection:
		return true
	}
	return false
}

// ParseStage accepts a stage name in any case.
func ParseStage(name string) (Stage, error) {
	s := Stage(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", name)
	}
	return s, nil
}
