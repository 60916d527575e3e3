// Package gateway wraps the language model behind the two calls the app
// needs: answering a learner's question and generating a quiz. The public
// calls never fail; TryAsk and TryGenerateQuiz expose the errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/llm"
	"github.com/abhisek/aigua/internal/quiz"
)

// ErrEmptyQuestion is returned by TryAsk for blank input. The provider is
// not called.
var ErrEmptyQuestion = errors.New("empty question")

// Gateway talks to the language model.
type Gateway struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Gateway. A nil provider is an error: the gateway cannot
// exist without a configured model.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) (*Gateway, error) {
	if provider == nil {
		return nil, errors.New("gateway: LLM provider is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, config: cfg, logger: logger}, nil
}

// AskQuestion answers question, returning Apology on any failure.
func (g *Gateway) AskQuestion(ctx context.Context, question string) string {
	answer, err := g.TryAsk(ctx, question)
	if err != nil {
		g.logger.Warn("ask failed, answering with apology", zap.Error(err))
		return Apology
	}
	return answer
}

// TryAsk sends question to the model and returns its text verbatim.
func (g *Gateway) TryAsk(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAsk)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemInstruction,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: askPrompt(question)}},
		MaxTokens:   g.config.AskMaxTokens,
		Temperature: g.config.AskTemperature,
		TopP:        g.config.AskTopP,
	})
	if err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	if resp.StopReason == "max_tokens" {
		return "", fmt.Errorf("ask: %w", &llm.ErrMaxTokensExceeded{Content: resp.Content})
	}

	answer := resp.Text()
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("ask: %w", llm.ErrEmptyResponse)
	}
	return answer, nil
}

// GenerateQuiz returns generated questions for d, or the fallback set for
// d when generation fails. The result is never empty and every
// correctAnswerIndex is in range.
func (g *Gateway) GenerateQuiz(ctx context.Context, d quiz.Difficulty) []quiz.Question {
	qs, err := g.TryGenerateQuiz(ctx, d)
	if err != nil {
		g.logger.Warn("quiz generation failed, serving fallback questions",
			zap.String("difficulty", string(d)), zap.Error(err))
		return FallbackQuestions(d)
	}
	return qs
}

// TryGenerateQuiz asks the model for a quiz and validates the result.
func (g *Gateway) TryGenerateQuiz(ctx context.Context, d quiz.Difficulty) ([]quiz.Question, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("generate quiz: unknown difficulty %q", d)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: quizPrompt(d)}},
		Schema:      QuizSchema,
		MaxTokens:   g.config.QuizMaxTokens,
		Temperature: g.config.QuizTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	qs, err := parseQuestions(resp.Content)
	if err != nil {
		return nil, err
	}
	if err := ValidateQuestions(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// parseQuestions decodes the model output. Every element must carry all
// three fields and nothing may follow the array.
func parseQuestions(raw []byte) ([]quiz.Question, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimSpace(raw)))

	var out []struct {
		Question           *string  `json:"question"`
		Options            []string `json:"options"`
		CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
	}
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuiz, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after quiz", ErrMalformedQuiz)
	}

	qs := make([]quiz.Question, len(out))
	for i, q := range out {
		if q.Question == nil || q.Options == nil || q.CorrectAnswerIndex == nil {
			return nil, &ValidationError{Index: i, Message: "missing required field"}
		}
		qs[i] = quiz.Question{
			Question:           *q.Question,
			Options:            q.Options,
			CorrectAnswerIndex: *q.CorrectAnswerIndex,
		}
	}
	return qs, nil
}
