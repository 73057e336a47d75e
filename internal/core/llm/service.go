package llm

import (
	"context"
)

// Service wraps LLM provider untuk dependency injection
type Service struct {
	provider LLMProvider
}

// NewService creates an LLM service from config
func NewService(ctx context.Context, cfg *ProviderConfig) (*Service, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Service{provider: provider}, nil
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider LLMProvider) *Service {
	return &Service{provider: provider}
}

// GenerateResponse generates AI response
func (s *Service) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.provider.GenerateResponse(ctx, systemPrompt, userMessage)
}

// GenerateImage renders an image when the provider supports it
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	gen, ok := s.provider.(ImageGenerator)
	if !ok {
		return "", ErrImagesUnsupported
	}
	return gen.GenerateImage(ctx, prompt)
}

// SupportsImages reports whether GenerateImage can succeed
func (s *Service) SupportsImages() bool {
	_, ok := s.provider.(ImageGenerator)
	return ok
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
