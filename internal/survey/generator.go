package survey

import (
	"context"
	"fmt"
	"strings"

	"uobsurvey/pkg/utils"
)

// QuestionGenerator proposes the next dynamic question from the history so far.
// Errors wrap utils.ErrGeneratorUnavailable or utils.ErrGeneratorError.
type QuestionGenerator interface {
	NextQuestion(ctx context.Context, history []ConversationTurn) (string, error)
}

// Prompt is one system+user request for free text.
type Prompt struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// TextGenerator produces free text (report sections, summaries, tooltips).
type TextGenerator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Generator is what an LLM backed implementation provides.
type Generator interface {
	QuestionGenerator
	TextGenerator
}

// NullGenerator is used when no LLM credentials are configured.
type NullGenerator struct{}

func (NullGenerator) NextQuestion(context.Context, []ConversationTurn) (string, error) {
	return "", utils.ErrGeneratorUnavailable
}

func (NullGenerator) Generate(context.Context, Prompt) (string, error) {
	return "", utils.ErrGeneratorUnavailable
}

// LiveGenerator delegates to a chat completion client.
type LiveGenerator struct {
	client utils.LLMClientInterface
}

func NewLiveGenerator(client utils.LLMClientInterface) *LiveGenerator {
	return &LiveGenerator{client: client}
}

const (
	questionSystemPrompt = "You are an expert IT infrastructure consultant. Generate diverse, insightful follow-up questions that explore different aspects each time."
	lastAnswerExcerpt    = 200
)

func (g *LiveGenerator) NextQuestion(ctx context.Context, history []ConversationTurn) (string, error) {
	out, err := g.client.Complete(ctx, utils.CompletionRequest{
		System:      questionSystemPrompt,
		Prompt:      nextQuestionPrompt(history),
		Temperature: 0.8,
		MaxTokens:   200,
	})
	if err != nil {
		return "", err
	}

	question := utils.CleanCompletion(out)
	if question == "" {
		return "", fmt.Errorf("empty question: %w", utils.ErrGeneratorError)
	}
	for _, turn := range history {
		if strings.EqualFold(strings.TrimSpace(turn.Question), question) {
			return "", fmt.Errorf("repeated question: %w", utils.ErrGeneratorError)
		}
	}
	return question, nil
}

func (g *LiveGenerator) Generate(ctx context.Context, p Prompt) (string, error) {
	out, err := g.client.Complete(ctx, utils.CompletionRequest{
		System:      p.System,
		Prompt:      p.User,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty response: %w", utils.ErrGeneratorError)
	}
	return out, nil
}

func nextQuestionPrompt(history []ConversationTurn) string {
	lastAnswer := ""
	if len(history) > 0 {
		lastAnswer = truncateRunes(history[len(history)-1].Answer, lastAnswerExcerpt)
	}

	return fmt.Sprintf(`You are an expert IT infrastructure and data platform consultant for banking institutions.

Based on the following conversation history, generate the next insightful follow-up question that:
1. Builds DIRECTLY on the user's most recent answer: "%s..."
2. Asks about a DIFFERENT aspect than previously covered
3. Seeks specific examples, metrics, or details
4. Explores pain points, challenges, or opportunities
5. Is actionable and helps assess their maturity level

IMPORTANT: Generate a NEW, UNIQUE question. Do NOT repeat previous questions.

Conversation so far:
%s

Generate ONLY the next question (no numbering, no preamble). Make it specific and directly related to their answers.`,
		lastAnswer, conversationContext(history))
}

func conversationContext(history []ConversationTurn) string {
	lines := make([]string, 0, len(history))
	for i, turn := range history {
		lines = append(lines, fmt.Sprintf("Q%d: %s\nA: %s", i+1, turn.Question, turn.Answer))
	}
	return strings.Join(lines, "\n\n")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
