package llm

import (
	openai "github.com/sashabaranov/go-openai"
)

type GroqProvider struct {
	chatProvider
}

func NewGroqProvider(apiKey string, model string, temperature float32, maxTokens int) *GroqProvider {
	if model == "" {
		model = DefaultModel(ProviderGroq)
	}

	// Groq uses OpenAI-compatible API with custom base URL
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = "https://api.groq.com/openai/v1"

	return &GroqProvider{
		chatProvider: newChatProvider(config, "Groq", model, temperature, maxTokens),
	}
}
