package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements LLMClientInterface using Google's Gemini models.
type GeminiChatClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiChatClient(cfg LLMClientConfig) (*GeminiChatClient, error) {
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *GeminiChatClient) Provider() string { return "gemini" }

func (c *GeminiChatClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %w", ErrGeneratorError, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated: %w", ErrGeneratorError)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", fmt.Errorf("gemini: empty completion: %w", ErrGeneratorError)
	}
	return content, nil
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
