// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// Provider defaults. Together is OpenAI-compatible, so it only needs a
// base URL on top of the OpenAI backend.
const (
	togetherBaseURL = "https://api.together.xyz/v1"

	defaultTogetherModel  = "mistralai/Mistral-7B-Instruct-v0.2"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-sonnet-4-5-20250929"
)

// ResolveConfig fills in the provider, model, and base URL defaults.
func ResolveConfig(cfg types.LLMConfig) types.LLMConfig {
	if cfg.Provider == "" {
		cfg.Provider = types.ProviderTogether
	}
	switch cfg.Provider {
	case types.ProviderTogether:
		if cfg.Model == "" {
			cfg.Model = defaultTogetherModel
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = togetherBaseURL
		}
	case types.ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = defaultOpenAIModel
		}
	case types.ProviderAnthropic:
		if cfg.Model == "" {
			cfg.Model = defaultAnthropicModel
		}
	}
	return cfg
}

// NewBackend builds the Backend for cfg.Provider, sending requests through hc.
func NewBackend(cfg types.LLMConfig, hc *http.Client) (Backend, error) {
	cfg = ResolveConfig(cfg)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %q", cfg.Provider)
	}
	switch cfg.Provider {
	case types.ProviderTogether, types.ProviderOpenAI:
		return NewOpenAIBackend(cfg.APIKey, cfg.BaseURL, cfg.Model, hc), nil
	case types.ProviderAnthropic:
		return NewAnthropicBackend(cfg.APIKey, cfg.BaseURL, cfg.Model, hc), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want together, openai, or anthropic)", cfg.Provider)
	}
}
