package pipeline

import (
	"context"
	"log"
	"strings"

	"medibuddy/internal/lang"
	"medibuddy/internal/model"
	"medibuddy/internal/storage"
	"medibuddy/internal/tts"
)

// TherapistVoice transcribes a spoken message, answers it in the speaker's
// language and returns a spoken reply.
func (p *Pipeline) TherapistVoice(ctx context.Context, in model.TherapistVoiceInput) (*model.TherapistResponse, error) {
	audioPath, err := p.saveAudio(in.Audio)
	if err != nil {
		return nil, err
	}
	defer storage.Remove(audioPath)

	hint := strings.ToLower(strings.TrimSpace(in.Lang))
	if hint == "" {
		hint = lang.Auto
	}

	res, err := p.transcribe(ctx, audioPath, hint)
	if err != nil {
		return nil, err
	}

	if hint == lang.Auto {
		hint = res.Language
	}
	userLang := lang.Resolve(lang.Detect(res.Transcript), hint)

	resp := p.converse(ctx, res.Transcript, userLang)

	art, err := p.speak(ctx, "therapist", resp.TherapistResponse, userLang, tts.Options{Natural: true})
	if err != nil {
		return nil, err
	}
	resp.AudioFile = "/download/" + art.Name
	return resp, nil
}

// TherapistText answers a typed message without synthesizing speech.
func (p *Pipeline) TherapistText(ctx context.Context, in model.TherapistTextRequest) (*model.TherapistResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, invalid("text is required")
	}

	userLang := lang.Resolve(lang.Detect(text), in.Lang)
	return p.converse(ctx, text, userLang), nil
}

// converse runs translate in, therapist reply, translate out.
func (p *Pipeline) converse(ctx context.Context, userInput, userLang string) *model.TherapistResponse {
	log.Printf("[Therapist] User language: %s", userLang)

	userInputEn := userInput
	if userLang != lang.English {
		userInputEn = p.translate(ctx, userInput, lang.English)
	}

	responseEn := p.respond(ctx, userInputEn)

	response := responseEn
	if userLang != lang.English {
		response = p.translate(ctx, responseEn, userLang)
	}

	return &model.TherapistResponse{
		UserInput:           userInput,
		UserInputEn:         userInputEn,
		TherapistResponse:   response,
		TherapistResponseEn: responseEn,
	}
}
