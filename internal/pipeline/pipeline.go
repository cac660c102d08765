package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"medibuddy/internal/ai"
	"medibuddy/internal/doctors"
	"medibuddy/internal/metrics"
	"medibuddy/internal/storage"
	"medibuddy/internal/stt"
	"medibuddy/internal/translate"
	"medibuddy/internal/tts"
)

// TherapistModel generates the therapist persona's replies.
type TherapistModel interface {
	Respond(ctx context.Context, userInput string) ai.Reply
}

// DoctorModel generates the doctor persona's replies.
type DoctorModel interface {
	Diagnose(ctx context.Context, query string, image *ai.Image) ai.Reply
}

// Synthesizer writes spoken audio for a reply.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language, outPath string, opts tts.Options) (*tts.Artifact, error)
}

// Recommender suggests doctors for a diagnosis.
type Recommender interface {
	Recommend(diagnosis string) []doctors.Doctor
}

// Deps are the remote services and helpers a Pipeline chains together.
type Deps struct {
	STT        stt.Provider
	Translator translate.Translator
	Therapist  TherapistModel
	Doctor     DoctorModel
	Speech     Synthesizer
	Doctors    Recommender
}

// Limits bound the accepted upload size in bytes.
type Limits struct {
	MinUploadBytes int64
	MaxUploadBytes int64
}

// Pipeline runs each consultation route's fixed sequence of steps.
type Pipeline struct {
	deps    Deps
	store   *storage.Store
	limits  Limits
	metrics *metrics.Metrics
}

func New(deps Deps, store *storage.Store, limits Limits, m *metrics.Metrics) *Pipeline {
	return &Pipeline{deps: deps, store: store, limits: limits, metrics: m}
}

func (p *Pipeline) transcribe(ctx context.Context, path, hint string) (*stt.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	start := time.Now()
	res, err := p.deps.STT.Transcribe(ctx, stt.Audio{Data: data, Filename: path}, hint)
	p.metrics.ObserveStep("transcribe", start, err)
	if err != nil {
		var sttErr *stt.Error
		if !errors.As(err, &sttErr) {
			err = &stt.Error{Provider: p.deps.STT.Name(), Err: err}
		}
		return nil, fmt.Errorf("transcribing audio: %w", err)
	}
	if res == nil || strings.TrimSpace(res.Transcript) == "" {
		return nil, fmt.Errorf("transcribing audio: %w", &stt.Error{Provider: p.deps.STT.Name(), Err: errors.New("no speech detected in audio")})
	}

	log.Printf("[Pipeline] Transcribed %d chars with %s", len(res.Transcript), res.Provider)
	return res, nil
}

func (p *Pipeline) translate(ctx context.Context, text, target string) string {
	start := time.Now()
	res := p.deps.Translator.Translate(ctx, text, target)
	p.metrics.ObserveStep("translate", start, res.Err)
	if res.Fallback {
		p.metrics.Fallback("translate")
	}
	return res.Text
}

func (p *Pipeline) respond(ctx context.Context, userInput string) string {
	start := time.Now()
	reply := p.deps.Therapist.Respond(ctx, userInput)
	p.metrics.ObserveStep("therapist", start, reply.Err)
	if reply.Fallback {
		p.metrics.Fallback("therapist")
	}
	return reply.Text
}

func (p *Pipeline) diagnose(ctx context.Context, query string, image *ai.Image) string {
	start := time.Now()
	reply := p.deps.Doctor.Diagnose(ctx, query, image)
	p.metrics.ObserveStep("doctor", start, reply.Err)
	if reply.Fallback {
		p.metrics.Fallback("doctor")
	}
	return reply.Text
}

// speak synthesizes text into a new artifact in the output directory.
func (p *Pipeline) speak(ctx context.Context, prefix, text, language string, opts tts.Options) (*tts.Artifact, error) {
	outPath := p.store.NewOutputPath(prefix, ".mp3")

	start := time.Now()
	art, err := p.deps.Speech.Synthesize(ctx, text, language, outPath, opts)
	p.metrics.ObserveStep("synthesize", start, err)
	if err != nil {
		storage.Remove(outPath)
		var ttsErr *tts.Error
		if !errors.As(err, &ttsErr) {
			err = &tts.Error{Err: err}
		}
		return nil, fmt.Errorf("synthesizing reply: %w", err)
	}
	return art, nil
}

func loadImage(path, mimeType string) (*ai.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &ai.Image{Data: data, MIMEType: mimeType}, nil
}
