package utils

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient implements LLMClientInterface over the chat completions API.
type OpenAIChatClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIChatClient(cfg LLMClientConfig) *OpenAIChatClient {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIChatClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: cfg.Timeout,
	}
}

func (c *OpenAIChatClient) Provider() string { return "openai" }

func (c *OpenAIChatClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w: %w", ErrGeneratorError, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned: %w", ErrGeneratorError)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: empty completion: %w", ErrGeneratorError)
	}
	return content, nil
}

func (c *OpenAIChatClient) Close() error { return nil }
