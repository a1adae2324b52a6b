package survey

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"uobsurvey/pkg/utils"
)

// FlowState is the dynamic question flow as a value. Controller methods take
// a state and return the next one; the input is never modified.
type FlowState struct {
	Position  int                `json:"position"`
	Questions []string           `json:"questions"`
	Answers   []string           `json:"answers"`
	History   []ConversationTurn `json:"history"`
}

func NewFlowState() FlowState {
	return FlowState{Questions: []string{FirstQuestion}}
}

func (s FlowState) IsComplete() bool {
	return s.Position >= TotalQuestions
}

// CurrentQuestion returns the question awaiting an answer.
func (s FlowState) CurrentQuestion() (string, bool) {
	if s.IsComplete() || s.Position >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.Position], true
}

// PreviousAnswer is the answer already recorded at the current position,
// present after going back.
func (s FlowState) PreviousAnswer() string {
	if s.Position < len(s.Answers) {
		return s.Answers[s.Position]
	}
	return ""
}

func (s FlowState) clone() FlowState {
	return FlowState{
		Position:  s.Position,
		Questions: append([]string(nil), s.Questions...),
		Answers:   append([]string(nil), s.Answers...),
		History:   append([]ConversationTurn(nil), s.History...),
	}
}

// QuestionSource tells where a dynamic question came from.
type QuestionSource string

const (
	SourceSeed      QuestionSource = "seed"
	SourceGenerator QuestionSource = "generator"
	SourceFallback  QuestionSource = "fallback"
	SourceNone      QuestionSource = ""
)

type Controller struct {
	generator QuestionGenerator
	logger    *zap.Logger
}

func NewController(generator QuestionGenerator, logger *zap.Logger) *Controller {
	if generator == nil {
		generator = NullGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{generator: generator, logger: logger}
}

// SubmitAnswer records a validated answer for the current position and
// appends the next question unless the last step was answered. Resubmitting
// a position reached with GoBack replaces that turn and discards the turns
// after it.
func (c *Controller) SubmitAnswer(ctx context.Context, state FlowState, raw string) (FlowState, QuestionSource, error) {
	if state.IsComplete() {
		return state, SourceNone, utils.ErrFlowComplete
	}
	if state.Position < 0 || state.Position >= len(state.Questions) {
		return state, SourceNone, fmt.Errorf("flow state has no question at position %d", state.Position)
	}

	answer, err := ValidateAnswer(raw)
	if err != nil {
		return state, SourceNone, err
	}

	next := state.clone()
	p := next.Position
	if p < len(next.Answers) {
		next.Answers = next.Answers[:p]
	}
	if p < len(next.History) {
		next.History = next.History[:p]
	}
	next.Questions = next.Questions[:p+1]

	next.Answers = append(next.Answers, answer)
	next.History = append(next.History, ConversationTurn{Question: next.Questions[p], Answer: answer})

	source := SourceNone
	if p+1 < TotalQuestions {
		var question string
		question, source = c.NextQuestion(ctx, next.History, p+1)
		next.Questions = append(next.Questions, question)
	}
	next.Position = p + 1

	return next, source, nil
}

// GoBack moves to the previous question, keeping recorded answers until they
// are resubmitted.
func (c *Controller) GoBack(state FlowState) (FlowState, error) {
	if state.Position <= 0 {
		return state, utils.ErrCannotGoBack
	}
	next := state.clone()
	next.Position--
	return next, nil
}

// Complete returns the full conversation once every step is answered.
func (c *Controller) Complete(state FlowState) ([]ConversationTurn, error) {
	if !state.IsComplete() {
		return nil, utils.ErrFlowNotComplete
	}
	return append([]ConversationTurn(nil), state.History...), nil
}

// NextQuestion asks the generator for the question at position and falls back
// to the static list on any failure. It never fails.
func (c *Controller) NextQuestion(ctx context.Context, history []ConversationTurn, position int) (string, QuestionSource) {
	question, err := c.generator.NextQuestion(ctx, history)
	if err == nil && question != "" {
		return question, SourceGenerator
	}

	switch {
	case errors.Is(err, utils.ErrGeneratorUnavailable):
		c.logger.Debug("question generator unavailable, using fallback", zap.Int("position", position))
	default:
		c.logger.Warn("question generation failed, using fallback", zap.Int("position", position), zap.Error(err))
	}
	return FallbackQuestion(position), SourceFallback
}
