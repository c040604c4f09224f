package llmprovider

import (
	"fmt"

	"farmpower-chat/config"
	"farmpower-chat/pkg/gemini"
	"farmpower-chat/pkg/log"
	"farmpower-chat/pkg/qwen"
)

// InitializeProviders creates the Provider chain from configuration, in priority order.
// Gemini is mandatory. Qwen is appended as a fallback when its API key is set.
func InitializeProviders(cfg *config.Config) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", ErrNoProvidersConfigured)
	}

	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	providers := []Provider{NewGeminiAdapter(geminiClient)}

	if cfg.Qwen.APIKey != "" {
		qwenClient, err := qwen.New(qwen.Config{
			APIKey:  cfg.Qwen.APIKey,
			Model:   cfg.Qwen.Model,
			BaseURL: cfg.Qwen.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		providers = append(providers, NewQwenAdapter(qwenClient))
	}

	return providers, nil
}

// NewManagerFromConfig builds a Manager with retry settings taken from cfg.
// Fallback is enabled whenever more than one provider is configured.
func NewManagerFromConfig(providers []Provider, cfg config.LLMConfig, logger log.Logger) *Manager {
	return NewManager(providers, &Config{
		FallbackEnabled: len(providers) > 1,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}, logger)
}
