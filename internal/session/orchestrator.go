// Package session wires the progression tracker, the quiz state machine and
// the AI gateway behind a single event dispatcher.
package session

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/progress"
	"github.com/abhisek/aigua/internal/quiz"
	"github.com/abhisek/aigua/internal/store"
)

// EmptyQuestionMessage is shown when an ask is submitted with no text.
const EmptyQuestionMessage = "Per favor, escriu una pregunta."

// Gateway is the subset of gateway.Gateway the orchestrator calls. Both
// methods always return usable content.
type Gateway interface {
	AskQuestion(ctx context.Context, question string) string
	GenerateQuiz(ctx context.Context, d quiz.Difficulty) []quiz.Question
}

// Command performs a suspended gateway call and yields the completion
// event to dispatch next. Commands never touch orchestrator state, so they
// may run on any goroutine.
type Command func(ctx context.Context) Event

type handler func(o *Orchestrator, ctx context.Context, ev Event) Command

var handlers = map[EventType]handler{
	TypeStageSelected:        (*Orchestrator).stageSelected,
	TypeStageDetailDismissed: (*Orchestrator).stageDetailDismissed,
	TypeQuizDifficultyChosen: (*Orchestrator).quizDifficultyChosen,
	TypeQuizAnswerSubmitted:  (*Orchestrator).quizAnswerSubmitted,
	TypeQuizAdvance:          (*Orchestrator).quizAdvance,
	TypeQuizRestart:          (*Orchestrator).quizRestart,
	TypeAskSubmitted:         (*Orchestrator).askSubmitted,
	TypeViewSwitched:         (*Orchestrator).viewSwitched,
	TypeQuizLoaded:           (*Orchestrator).quizLoaded,
	TypeAskAnswered:          (*Orchestrator).askAnswered,
}

// Options configures an Orchestrator. Both fields are optional.
type Options struct {
	EventRepo store.EventRepo
	Logger    *zap.Logger
}

// Orchestrator owns one learner's session. It is not safe for concurrent
// use: callers serialize Dispatch and State, and run returned Commands
// wherever they like.
type Orchestrator struct {
	id       string
	gateway  Gateway
	progress *progress.Tracker
	quiz     *quiz.Session
	view     View
	detail   cycle.Stage
	ask      askState

	eventRepo store.EventRepo
	logger    *zap.Logger
}

type askState struct {
	question   string
	answer     string
	loading    bool
	validation string
}

// New returns an orchestrator in the initial state: diagram view, only
// COLLECTION unlocked, no badges.
func New(id string, gw Gateway, opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session", id))
	return &Orchestrator{
		id:        id,
		gateway:   gw,
		progress:  progress.NewTracker(id, opts.EventRepo, logger),
		quiz:      quiz.NewSession(),
		view:      ViewDiagram,
		eventRepo: opts.EventRepo,
		logger:    logger,
	}
}

// ID returns the session identifier.
func (o *Orchestrator) ID() string { return o.id }

// Dispatch applies ev. Events that do not apply in the current state are
// ignored. For quiz-difficulty-chosen and ask-submitted it returns the
// Command that completes the gateway call; otherwise nil.
func (o *Orchestrator) Dispatch(ctx context.Context, ev Event) Command {
	if ev == nil {
		return nil
	}
	h, ok := handlers[ev.Type()]
	if !ok {
		return nil
	}
	return h(o, ctx, ev)
}

// Run dispatches ev and drives any returned Commands to completion on the
// calling goroutine.
func (o *Orchestrator) Run(ctx context.Context, ev Event) {
	cmd := o.Dispatch(ctx, ev)
	for cmd != nil {
		cmd = o.Dispatch(ctx, cmd(ctx))
	}
}

func (o *Orchestrator) stageSelected(_ context.Context, ev Event) Command {
	s := ev.(StageSelected).Stage
	if !o.progress.SelectStage(s) {
		o.logger.Debug("locked stage selected", zap.String("stage", string(s)))
		return nil
	}
	o.detail = s
	return nil
}

func (o *Orchestrator) stageDetailDismissed(ctx context.Context, ev Event) Command {
	s := ev.(StageDetailDismissed).Stage
	if o.detail == "" || o.detail != s {
		return nil
	}
	o.detail = ""
	if next, ok := o.progress.CompleteStage(ctx, s); ok {
		o.logger.Info("stage unlocked", zap.String("completed", string(s)), zap.String("unlocked", string(next)))
	}
	return nil
}

func (o *Orchestrator) quizDifficultyChosen(_ context.Context, ev Event) Command {
	d := ev.(QuizDifficultyChosen).Difficulty
	if !o.quiz.ChooseDifficulty(d) {
		return nil
	}
	gw := o.gateway
	return func(ctx context.Context) Event {
		return QuizLoaded{Questions: gw.GenerateQuiz(ctx, d)}
	}
}

func (o *Orchestrator) quizLoaded(_ context.Context, ev Event) Command {
	o.quiz.Load(ev.(QuizLoaded).Questions)
	return nil
}

func (o *Orchestrator) quizAnswerSubmitted(_ context.Context, ev Event) Command {
	o.quiz.Answer(ev.(QuizAnswerSubmitted).Index)
	return nil
}

func (o *Orchestrator) quizAdvance(ctx context.Context, _ Event) Command {
	if o.quiz.Advance() != quiz.AdvanceCompleted {
		return nil
	}
	o.progress.RecordQuizCompletion(ctx)
	o.recordQuizResult(ctx)
	return nil
}

func (o *Orchestrator) quizRestart(_ context.Context, _ Event) Command {
	o.quiz.Restart()
	return nil
}

func (o *Orchestrator) askSubmitted(_ context.Context, ev Event) Command {
	if o.ask.loading {
		return nil
	}
	q := strings.TrimSpace(ev.(AskSubmitted).Question)
	if q == "" {
		o.ask.validation = EmptyQuestionMessage
		return nil
	}
	o.ask = askState{question: q, loading: true}

	gw := o.gateway
	return func(ctx context.Context) Event {
		return AskAnswered{Question: q, Answer: gw.AskQuestion(ctx, q)}
	}
}

func (o *Orchestrator) askAnswered(ctx context.Context, ev Event) Command {
	a := ev.(AskAnswered)
	if !o.ask.loading || a.Question != o.ask.question {
		return nil
	}
	o.ask.answer = a.Answer
	o.ask.loading = false
	o.progress.RecordQuestionAsked(ctx)
	return nil
}

func (o *Orchestrator) viewSwitched(_ context.Context, ev Event) Command {
	if v := ev.(ViewSwitched).View; v.Valid() {
		o.view = v
	}
	return nil
}

func (o *Orchestrator) recordQuizResult(ctx context.Context) {
	snap := o.quiz.Snapshot()
	o.logger.Info("quiz completed",
		zap.String("difficulty", string(snap.Difficulty)),
		zap.Int("score", snap.Score),
		zap.Int("total", snap.Total))

	if o.eventRepo == nil {
		return
	}
	err := o.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
		SessionID:  o.id,
		Difficulty: string(snap.Difficulty),
		Score:      snap.Score,
		Total:      snap.Total,
		Percentage: snap.Percentage,
	})
	if err != nil {
		o.logger.Warn("failed to record quiz event", zap.Error(err))
	}
}
