package survey

import (
	"context"
	"fmt"

	"uobsurvey/pkg/utils"
)

// scriptedGenerator answers from fixed scripts and records what it was asked.
type scriptedGenerator struct {
	questions []string
	errs      []error
	texts     map[int]string
	textErrs  map[int]error

	histories [][]ConversationTurn
	prompts   []Prompt
}

func (g *scriptedGenerator) NextQuestion(_ context.Context, history []ConversationTurn) (string, error) {
	i := len(g.histories)
	g.histories = append(g.histories, append([]ConversationTurn(nil), history...))
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.questions) {
		return g.questions[i], nil
	}
	return fmt.Sprintf("generated question %d", i+1), nil
}

func (g *scriptedGenerator) Generate(_ context.Context, p Prompt) (string, error) {
	i := len(g.prompts)
	g.prompts = append(g.prompts, p)
	if err, ok := g.textErrs[i]; ok {
		return "", err
	}
	if text, ok := g.texts[i]; ok {
		return text, nil
	}
	return fmt.Sprintf("section %d text", i+1), nil
}

// fakeLLM is a utils.LLMClientInterface returning a canned completion.
type fakeLLM struct {
	out      string
	err      error
	requests []utils.CompletionRequest
}

func (f *fakeLLM) Complete(_ context.Context, req utils.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.out, f.err
}

func (f *fakeLLM) Provider() string { return "fake" }
func (f *fakeLLM) Close() error     { return nil }

func validAnswer(i int) string {
	return fmt.Sprintf("answer number %d with detail", i)
}
