package llm

import (
	"fmt"

	"github.com/blaisecz/comfort-census/internal/config"
)

// NewProviderFromConfig builds the Provider selected by AI_PROVIDER. It
// returns a nil Provider when the selected provider has no API key, which
// makes the Generator fail with GenerationUnavailable.
func NewProviderFromConfig(cfg *config.Config) (Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, nil), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, nil
		}
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIPrescriptionModel), nil
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.AIProvider)
	}
}
