package stt

import (
	"fmt"
	"log"
	"strings"

	"medibuddy/internal/config"
	"medibuddy/internal/googleauth"
)

// CreateProvider creates an STT provider based on configuration. google may
// be nil unless STT_PROVIDER is "google".
func CreateProvider(cfg *config.Config, google *googleauth.Client) (Provider, error) {
	providerName := strings.ToLower(cfg.STTProvider)

	if providerName == "" {
		providerName = "groq"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'groq'")
	}

	switch providerName {
	case "groq":
		return createGroqProvider(cfg)
	case "google":
		return createGoogleProvider(cfg, google)
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: groq, google", providerName)
	}
}

func createGroqProvider(cfg *config.Config) (Provider, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}
	log.Printf("[STT Factory] Creating Groq STT provider (model: %s)", cfg.STTModel)
	return NewGroqProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.STTModel, cfg.HTTPTimeout), nil
}

func createGoogleProvider(cfg *config.Config, google *googleauth.Client) (Provider, error) {
	if google == nil {
		return nil, fmt.Errorf("Google credentials are not configured. Set GOOGLE_API_KEY or GOOGLE_CREDENTIALS")
	}
	log.Printf("[STT Factory] Creating Google STT provider")
	return NewGoogleProvider(google, cfg.GoogleSTTURL), nil
}
