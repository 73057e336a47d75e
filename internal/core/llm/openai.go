package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// chatProvider talks to any OpenAI-compatible chat completion endpoint
type chatProvider struct {
	client      *openai.Client
	name        string
	model       string
	temperature float32
	maxTokens   int
}

func newChatProvider(config openai.ClientConfig, name, model string, temperature float32, maxTokens int) chatProvider {
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}
	return chatProvider{
		client:      openai.NewClientWithConfig(config),
		name:        name,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p chatProvider) GetProviderName() string {
	return p.name
}

func (p chatProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}

type OpenAIProvider struct {
	chatProvider
	imageModel string
}

func NewOpenAIProvider(apiKey string, model string, temperature float32, maxTokens int) *OpenAIProvider {
	if model == "" {
		model = DefaultModel(ProviderOpenAI)
	}
	return &OpenAIProvider{
		chatProvider: newChatProvider(openai.DefaultConfig(apiKey), "OpenAI", model, temperature, maxTokens),
		imageModel:   openai.CreateImageModelDallE3,
	}
}

// GenerateImage renders a single 1024x1024 image and returns it base64 encoded
func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai image error: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("no image returned from OpenAI")
	}

	return resp.Data[0].B64JSON, nil
}
