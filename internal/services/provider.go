package services

import (
	"fmt"
	"strings"
)

// Provider names accepted by NewChatProvider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderOptions selects and configures the remote completion endpoint.
type ProviderOptions struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
}

func NewChatProvider(opts ProviderOptions) (ChatProvider, error) {
	switch strings.ToLower(opts.Name) {
	case "", ProviderGemini:
		return NewGeminiProvider(opts.APIKey, opts.Model)
	case ProviderOpenAI:
		return NewOpenAIProvider(opts.APIKey, opts.Model, opts.BaseURL, nil), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (supported: %s, %s)", opts.Name, ProviderGemini, ProviderOpenAI)
	}
}
