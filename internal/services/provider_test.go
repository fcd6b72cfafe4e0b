package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatProvider(t *testing.T) {
	provider, err := NewChatProvider(ProviderOptions{Name: "OpenAI", Model: "gpt-4o-mini", BaseURL: "http://localhost"})
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o-mini", provider.Name())

	provider, err = NewChatProvider(ProviderOptions{Name: ProviderGemini})
	require.NoError(t, err)
	assert.NotNil(t, provider)

	_, err = NewChatProvider(ProviderOptions{Name: "together"})
	assert.EqualError(t, err, `unknown LLM provider "together" (supported: gemini, openai)`)
}
