package llm

import (
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type DeepSeekProvider struct {
	chatProvider
}

func NewDeepSeekProvider(apiKey string, model string, temperature float32, maxTokens int) *DeepSeekProvider {
	if model == "" {
		model = DefaultModel(ProviderDeepSeek)
	}

	// DeepSeek uses OpenAI-compatible API with custom base URL
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = "https://api.deepseek.com"
	config.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
	}

	return &DeepSeekProvider{
		chatProvider: newChatProvider(config, "DeepSeek", model, temperature, maxTokens),
	}
}
