package stt

import "context"

// Audio is an uploaded recording held in memory.
type Audio struct {
	Data     []byte
	Filename string // original or stored file name, used for the container type
}

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe transcribes audio. language is a short code ("en", "hi",
	// "mr") or "auto"/"" to let the service detect it.
	Transcribe(ctx context.Context, audio Audio, language string) (*Result, error)

	// Name returns the name of the provider (e.g., "groq", "google")
	Name() string
}
