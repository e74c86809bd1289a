package ai

import (
	"fmt"

	"aimeet-backend/pkg/groq"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "groq" or "auto"

	// Groq config
	GroqAPIKey  string
	GroqBaseURL string // e.g., "https://api.groq.com/openai/v1"
	GroqModel   string // e.g., "openai/gpt-oss-20b"
}

// NewSummarizerService creates a SummarizerService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizerService(cfg Config) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGroq, ProviderAuto, "":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewService(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel), nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
