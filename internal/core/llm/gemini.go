package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewGeminiProvider(ctx context.Context, apiKey string, model string, temperature float32, maxTokens int) (*GeminiProvider, error) {
	if model == "" {
		model = DefaultModel(ProviderGemini)
	}
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 2048
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (p *GeminiProvider) GetProviderName() string {
	return "Google Gemini"
}

func (p *GeminiProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.temperature),
		MaxOutputTokens: int32(p.maxTokens),
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userMessage), config)
	if err != nil {
		return "", fmt.Errorf("gemini error (model: %s): %w", p.model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Gemini (candidates: %d)", len(resp.Candidates))
	}

	return text, nil
}
