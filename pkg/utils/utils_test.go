package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := CreateToken(secret, "admin", RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := CreateToken(secret, "user", RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.Error(t, err)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("user123$")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "user123$"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestNewLLMClientWithoutKey(t *testing.T) {
	_, err := NewLLMClient(LLMClientConfig{Provider: "openai"})
	assert.True(t, errors.Is(err, ErrGeneratorUnavailable))
}

func TestNewLLMClientUnknownProvider(t *testing.T) {
	_, err := NewLLMClient(LLMClientConfig{Provider: "carrier-pigeon", APIKey: "k"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrGeneratorUnavailable))
}

func TestNewLLMClientOpenAI(t *testing.T) {
	client, err := NewLLMClient(LLMClientConfig{Provider: "openai", APIKey: "k", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Provider())
	assert.NoError(t, client.Close())
}

func TestOpenAIClientHonoursContext(t *testing.T) {
	client := NewOpenAIChatClient(LLMClientConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, CompletionRequest{Prompt: "hi"})
	assert.True(t, errors.Is(err, ErrGeneratorError))
}

func TestCleanCompletion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  How do you monitor jobs?  ", "How do you monitor jobs?"},
		{"\"How do you monitor jobs?\"", "How do you monitor jobs?"},
		{"Next question: How do you monitor jobs?", "How do you monitor jobs?"},
		{"```\nHow do you monitor jobs?\n```", "How do you monitor jobs?"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCompletion(tt.in))
	}
}

func TestFormatUnixTimestamp(t *testing.T) {
	assert.Equal(t, "", FormatUnixTimestamp(0))
	assert.Equal(t, "2024-01-02 03:04:05", FormatUnixTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Unix()))
}
