package llm

import (
	"context"
	"errors"
	"fmt"
)

// LLMProvider generates text replies from a system prompt and a user message
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ImageGenerator is implemented by providers that can render images.
// GenerateImage returns base64 encoded PNG data.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ErrImagesUnsupported is returned when the configured provider cannot render images
var ErrImagesUnsupported = errors.New("llm provider does not support image generation")

// ProviderType untuk factory
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGemini   ProviderType = "gemini"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
)

// ProviderConfig untuk create provider
type ProviderConfig struct {
	Type ProviderType

	// API Keys
	OpenAIKey   string
	GeminiKey   string
	GroqKey     string
	DeepSeekKey string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultModel returns the model used when LLM_MODEL is not set
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-2.5-flash"
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	case ProviderDeepSeek:
		return "deepseek-chat"
	default:
		return ""
	}
}

// NewProvider factory untuk create LLM provider
func NewProvider(ctx context.Context, cfg *ProviderConfig) (LLMProvider, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel(cfg.Type)
	}

	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		provider, err := NewGeminiProvider(ctx, cfg.GeminiKey, model, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return provider, nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is required")
		}
		return NewDeepSeekProvider(cfg.DeepSeekKey, model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
