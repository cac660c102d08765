package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GroqProvider implements STT using Groq's OpenAI-compatible Whisper endpoint
type GroqProvider struct {
	client *openai.Client
	model  string
}

// NewGroqProvider creates a new Groq STT provider. baseURL is the
// OpenAI-compatible API root, e.g. https://api.groq.com/openai/v1.
func NewGroqProvider(apiKey, baseURL, model string, timeout time.Duration) *GroqProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	if model == "" {
		model = "whisper-large-v3"
	}
	return &GroqProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns the provider name
func (p *GroqProvider) Name() string {
	return "groq"
}

// Transcribe sends the audio to the transcription endpoint
func (p *GroqProvider) Transcribe(ctx context.Context, audio Audio, language string) (*Result, error) {
	startTime := time.Now()

	filename := filepath.Base(audio.Filename)
	if filename == "." || filename == "/" {
		filename = "audio.wav"
	}
	language = requestLanguage(language)

	log.Printf("[Groq STT] Processing audio: %s, size: %d bytes, language: %q", filename, len(audio.Data), language)

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio.Data),
		Language: language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		log.Printf("[Groq STT] API error: %v", err)
		return nil, &Error{Provider: p.Name(), Err: err}
	}

	raw, _ := json.Marshal(resp)
	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		log.Printf("[Groq STT] Empty transcript returned")
		return nil, newError(p.Name(), "no speech detected in audio")
	}

	log.Printf("[Groq STT] Transcription successful: length=%d, duration=%v", len(transcript), time.Since(startTime))

	return &Result{
		Transcript:  transcript,
		Language:    language,
		Provider:    p.Name(),
		RawResponse: string(raw),
	}, nil
}

// requestLanguage normalizes a language hint; "" means let the service detect.
func requestLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "auto" {
		return ""
	}
	return language
}
