package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CompletionRequest is a single system+user chat turn sent to an LLM.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// LLMClientInterface is implemented by every chat completion backend.
type LLMClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Close() error
}

type LLMClientConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewLLMClient creates either an OpenAI or a Gemini client. A missing API key
// yields ErrGeneratorUnavailable so callers can fall back to a null generator.
func NewLLMClient(cfg LLMClientConfig) (LLMClientInterface, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%s: no api key configured: %w", cfg.Provider, ErrGeneratorUnavailable)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	switch strings.ToLower(cfg.Provider) {
	case "openai", "":
		return NewOpenAIChatClient(cfg), nil
	case "gemini":
		return NewGeminiChatClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

// CleanCompletion strips markdown fences, surrounding quotes and common
// preambles that chat models wrap around short answers.
func CleanCompletion(response string) string {
	response = strings.ReplaceAll(response, "```markdown", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	prefixes := []string{
		"Next question:",
		"Question:",
		"Here is the next question:",
		"Here's the next question:",
	}
	for _, prefix := range prefixes {
		if len(response) >= len(prefix) && strings.EqualFold(response[:len(prefix)], prefix) {
			response = strings.TrimSpace(response[len(prefix):])
			break
		}
	}

	response = strings.Trim(response, "\"“”")
	return strings.TrimSpace(response)
}
