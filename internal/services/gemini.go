package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// errMissingAPIKey is classified as an authentication failure by its message.
var errMissingAPIKey = errors.New("api_key is not configured")

type geminiProvider struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

// NewGeminiProvider creates a ChatProvider backed by the Gemini API. An empty
// apiKey is accepted; every call then fails as an authentication error.
func NewGeminiProvider(apiKey, modelName string) (ChatProvider, error) {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	provider := &geminiProvider{
		modelName:   modelName,
		temperature: 0.2,
	}
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is empty; analyses will fail until it is set")
		return provider, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	provider.client = client

	return provider, nil
}

func (g *geminiProvider) Name() string {
	return "gemini:" + g.modelName
}

// Chat implements ChatProvider.
func (g *geminiProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if g.client == nil {
		return "", errMissingAPIKey
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemMessage, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       &temperature,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserMessage), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("no text content in response")
	}

	return text, nil
}
