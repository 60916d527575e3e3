package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/quiz"
)

// EventType is the wire tag of an Event.
type EventType string

const (
	TypeStageSelected        EventType = "stage-selected"
	TypeStageDetailDismissed EventType = "stage-detail-dismissed"
	TypeQuizDifficultyChosen EventType = "quiz-difficulty-chosen"
	TypeQuizAnswerSubmitted  EventType = "quiz-answer-submitted"
	TypeQuizAdvance          EventType = "quiz-advance"
	TypeQuizRestart          EventType = "quiz-restart"
	TypeAskSubmitted         EventType = "ask-submitted"
	TypeViewSwitched         EventType = "view-switched"

	// Completion events. They are produced by Commands, never by clients.
	TypeQuizLoaded  EventType = "quiz-loaded"
	TypeAskAnswered EventType = "ask-answered"
)

// Event is a user intent or a gateway completion. The set of
// implementations is closed.
type Event interface {
	Type() EventType
	event()
}

type StageSelected struct {
	Stage cycle.Stage `json:"stage"`
}

// StageDetailDismissed closes the detail view of Stage and completes it.
type StageDetailDismissed struct {
	Stage cycle.Stage `json:"stage"`
}

type QuizDifficultyChosen struct {
	Difficulty quiz.Difficulty `json:"difficulty"`
}

type QuizAnswerSubmitted struct {
	Index int `json:"index"`
}

type QuizAdvance struct{}

type QuizRestart struct{}

type AskSubmitted struct {
	Question string `json:"question"`
}

type ViewSwitched struct {
	View View `json:"view"`
}

// QuizLoaded carries the questions the gateway produced for a quiz.
type QuizLoaded struct {
	Questions []quiz.Question `json:"questions"`
}

// AskAnswered carries the gateway's answer to Question.
type AskAnswered struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (StageSelected) Type() EventType        { return TypeStageSelected }
func (StageDetailDismissed) Type() EventType { return TypeStageDetailDismissed }
func (QuizDifficultyChosen) Type() EventType { return TypeQuizDifficultyChosen }
func (QuizAnswerSubmitted) Type() EventType  { return TypeQuizAnswerSubmitted }
func (QuizAdvance) Type() EventType          { return TypeQuizAdvance }
func (QuizRestart) Type() EventType          { return TypeQuizRestart }
func (AskSubmitted) Type() EventType         { return TypeAskSubmitted }
func (ViewSwitched) Type() EventType         { return TypeViewSwitched }
func (QuizLoaded) Type() EventType           { return TypeQuizLoaded }
func (AskAnswered) Type() EventType          { return TypeAskAnswered }

func (StageSelected) event()        {}
func (StageDetailDismissed) event() {}
func (QuizDifficultyChosen) event() {}
func (QuizAnswerSubmitted) event()  {}
func (QuizAdvance) event()          {}
func (QuizRestart) event()          {}
func (AskSubmitted) event()         {}
func (ViewSwitched) event()         {}
func (QuizLoaded) event()           {}
func (AskAnswered) event()          {}

// ErrBadEvent is wrapped by every DecodeEvent failure.
var ErrBadEvent = errors.New("bad event")

// MarshalEvent encodes ev as a JSON object tagged with "type".
func MarshalEvent(ev Event) ([]byte, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, _ := json.Marshal(ev.Type())
	fields["type"] = tag
	return json.Marshal(fields)
}

// wireEvent is the union of every client event's fields. Pointers record
// presence.
type wireEvent struct {
	Type       EventType        `json:"type"`
	Stage      *cycle.Stage     `json:"stage"`
	Difficulty *quiz.Difficulty `json:"difficulty"`
	Index      *int             `json:"index"`
	Question   *string          `json:"question"`
	View       *View            `json:"view"`
}

// DecodeEvent parses a client event. Completion events are rejected: they
// only come from Commands.
func DecodeEvent(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEvent, err)
	}

	switch w.Type {
	case TypeStageSelected, TypeStageDetailDismissed:
		if w.Stage == nil {
			return nil, fmt.Errorf("%w: %s requires stage", ErrBadEvent, w.Type)
		}
		if !w.Stage.Valid() {
			return nil, fmt.Errorf("%w: unknown stage %q", ErrBadEvent, *w.Stage)
		}
		if w.Type == TypeStageSelected {
			return StageSelected{Stage: *w.Stage}, nil
		}
		return StageDetailDismissed{Stage: *w.Stage}, nil

	case TypeQuizDifficultyChosen:
		if w.Difficulty == nil {
			return nil, fmt.Errorf("%w: %s requires difficulty", ErrBadEvent, w.Type)
		}
		d, err := quiz.ParseDifficulty(string(*w.Difficulty))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEvent, err)
		}
		return QuizDifficultyChosen{Difficulty: d}, nil

	case TypeQuizAnswerSubmitted:
		if w.Index == nil {
			return nil, fmt.Errorf("%w: %s requires index", ErrBadEvent, w.Type)
		}
		return QuizAnswerSubmitted{Index: *w.Index}, nil

	case TypeQuizAdvance:
		return QuizAdvance{}, nil

	case TypeQuizRestart:
		return QuizRestart{}, nil

	case TypeAskSubmitted:
		if w.Question == nil {
			return nil, fmt.Errorf("%w: %s requires question", ErrBadEvent, w.Type)
		}
		return AskSubmitted{Question: *w.Question}, nil

	case TypeViewSwitched:
		if w.View == nil || !w.View.Valid() {
			return nil, fmt.Errorf("%w: %s requires a known view", ErrBadEvent, w.Type)
		}
		return ViewSwitched{View: *w.View}, nil

	case TypeQuizLoaded, TypeAskAnswered:
		return nil, fmt.Errorf("%w: %s is not accepted from clients", ErrBadEvent, w.Type)

	case "":
		return nil, fmt.Errorf("%w: missing type", ErrBadEvent)

	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrBadEvent, w.Type)
	}
}
