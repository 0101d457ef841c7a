package llmprovider

import (
	"fmt"

	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/config"
	"jan-server/services/support-api/internal/domain/llm"
)

// NewProvider builds the configured completion provider, wrapped with tracing.
func NewProvider(cfg *config.Config, log zerolog.Logger) (llm.Provider, error) {
	var provider llm.Provider
	switch cfg.LLMProvider {
	case config.LLMProviderOpenAI:
		provider = NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
	case config.LLMProviderGemini:
		provider = NewGeminiClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
	case config.LLMProviderMock:
		provider = NewMockClient("")
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLMProvider)
	}

	if cfg.LLMAPIKey == "" && cfg.LLMProvider != config.LLMProviderMock {
		log.Warn().Str("provider", cfg.LLMProvider).Msg("LLM_API_KEY is empty; replies will fall back to the API key apology")
	}
	log.Info().
		Str("provider", provider.Name()).
		Str("model", cfg.LLMModel).
		Dur("timeout", cfg.LLMTimeout).
		Msg("llm provider configured")

	return WithTracing(provider), nil
}
