package tts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"medibuddy/internal/random"
)

// Backend turns text into encoded audio (MP3) for one regional voice.
type Backend interface {
	Synthesize(ctx context.Context, text, variant string) ([]byte, error)
	Name() string
}

// Options tunes a single synthesis.
type Options struct {
	// Natural adds pauses and an occasional filler word before synthesis.
	Natural bool
}

// Artifact is a synthesized audio file on disk.
type Artifact struct {
	Path     string
	Name     string
	Language string
	Variant  string
}

// Error reports that speech could not be synthesized.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("speech synthesis failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Synthesizer picks a voice variant and writes the backend's audio to disk.
type Synthesizer struct {
	backend Backend
	rng     random.Source
}

func NewSynthesizer(backend Backend, rng random.Source) *Synthesizer {
	return &Synthesizer{backend: backend, rng: rng}
}

// Synthesize speaks text in language and writes the audio to outPath. On
// failure no file is left behind.
func (s *Synthesizer) Synthesize(ctx context.Context, text, language, outPath string, opts Options) (*Artifact, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Err: errors.New("no text to convert to speech")}
	}

	if opts.Natural {
		text = AddSpeechMarkers(text, s.rng)
	}
	variant := ChooseVariant(language, s.rng)

	log.Printf("[TTS] Synthesizing %d chars with %s (language: %s, variant: %s)", len(text), s.backend.Name(), language, variant)

	audio, err := s.backend.Synthesize(ctx, text, variant)
	if err != nil {
		return nil, &Error{Err: err}
	}
	if len(audio) == 0 {
		return nil, &Error{Err: errors.New("backend returned no audio")}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to create output directory: %w", err)}
	}
	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		_ = os.Remove(outPath)
		return nil, &Error{Err: fmt.Errorf("failed to write audio file: %w", err)}
	}

	return &Artifact{
		Path:     outPath,
		Name:     filepath.Base(outPath),
		Language: language,
		Variant:  variant,
	}, nil
}
