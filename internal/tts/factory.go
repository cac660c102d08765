package tts

import (
	"fmt"
	"log"
	"strings"

	"medibuddy/internal/config"
	"medibuddy/internal/googleauth"
)

// CreateBackend creates a TTS backend based on configuration. google may be
// nil unless TTS_PROVIDER is "google".
func CreateBackend(cfg *config.Config, google *googleauth.Client) (Backend, error) {
	providerName := strings.ToLower(cfg.TTSProvider)
	if providerName == "" {
		providerName = "google"
	}

	switch providerName {
	case "google":
		if google == nil {
			return nil, fmt.Errorf("Google credentials are not configured. Set GOOGLE_API_KEY or GOOGLE_CREDENTIALS")
		}
		log.Printf("[TTS Factory] Creating Google TTS backend")
		return NewGoogleBackend(google, cfg.GoogleTTSURL), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		log.Printf("[TTS Factory] Creating OpenAI TTS backend (model: %s, voice: %s)", cfg.OpenAITTSModel, cfg.OpenAITTSVoice)
		return NewOpenAIBackend(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAITTSModel, cfg.OpenAITTSVoice, cfg.HTTPTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported TTS provider: %s. Supported: google, openai", providerName)
	}
}
