package pipeline

import (
	"context"
	"strings"

	"medibuddy/internal/ai"
	"medibuddy/internal/lang"
	"medibuddy/internal/model"
	"medibuddy/internal/storage"
	"medibuddy/internal/tts"
)

// DoctorConsult answers a spoken question about an image.
func (p *Pipeline) DoctorConsult(ctx context.Context, in model.DoctorConsultInput) (*model.DoctorResponse, error) {
	audioPath, err := p.saveAudio(in.Audio)
	if err != nil {
		return nil, err
	}
	defer storage.Remove(audioPath)

	imagePath, mimeType, err := p.saveImage(in.Image)
	if err != nil {
		return nil, err
	}
	defer storage.Remove(imagePath)

	res, err := p.transcribe(ctx, audioPath, lang.English)
	if err != nil {
		return nil, err
	}

	image, err := loadImage(imagePath, mimeType)
	if err != nil {
		return nil, err
	}
	reply := p.diagnose(ctx, res.Transcript, image)

	art, err := p.speak(ctx, "doctor", reply, lang.English, tts.Options{})
	if err != nil {
		return nil, err
	}

	return &model.DoctorResponse{
		Transcription:  res.Transcript,
		DoctorResponse: reply,
		VoiceOutput:    art.Name,
	}, nil
}

// DoctorImage looks at an image alone and recommends doctors.
func (p *Pipeline) DoctorImage(ctx context.Context, in model.DoctorImageInput) (*model.DoctorResponse, error) {
	imagePath, mimeType, err := p.saveImage(in.Image)
	if err != nil {
		return nil, err
	}
	defer storage.Remove(imagePath)

	image, err := loadImage(imagePath, mimeType)
	if err != nil {
		return nil, err
	}
	reply := p.diagnose(ctx, ai.DefaultImageQuery, image)

	art, err := p.speak(ctx, "doctor", reply, lang.English, tts.Options{})
	if err != nil {
		return nil, err
	}

	return &model.DoctorResponse{
		DoctorResponse:     reply,
		VoiceOutput:        art.Name,
		RecommendedDoctors: p.deps.Doctors.Recommend(reply),
	}, nil
}

// DoctorAudio answers a spoken description of symptoms.
func (p *Pipeline) DoctorAudio(ctx context.Context, in model.DoctorAudioInput) (*model.DoctorResponse, error) {
	audioPath, err := p.saveAudio(in.Audio)
	if err != nil {
		return nil, err
	}
	defer storage.Remove(audioPath)

	res, err := p.transcribe(ctx, audioPath, lang.English)
	if err != nil {
		return nil, err
	}

	reply := p.diagnose(ctx, res.Transcript, nil)

	art, err := p.speak(ctx, "doctor", reply, lang.English, tts.Options{})
	if err != nil {
		return nil, err
	}

	return &model.DoctorResponse{
		Transcription:      res.Transcript,
		DoctorResponse:     reply,
		VoiceOutput:        art.Name,
		RecommendedDoctors: p.deps.Doctors.Recommend(reply),
	}, nil
}

// DoctorText answers typed symptoms in the writer's language.
func (p *Pipeline) DoctorText(ctx context.Context, in model.DoctorTextRequest) (*model.DoctorResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, invalid("text is required")
	}

	userLang := lang.Detect(text)

	textEn := text
	if userLang != lang.English {
		textEn = p.translate(ctx, text, lang.English)
	}

	replyEn := p.diagnose(ctx, textEn, nil)

	reply := replyEn
	if userLang != lang.English {
		reply = p.translate(ctx, replyEn, userLang)
	}

	art, err := p.speak(ctx, "doctor", reply, userLang, tts.Options{})
	if err != nil {
		return nil, err
	}

	return &model.DoctorResponse{
		UserInput:          text,
		DoctorResponse:     reply,
		DoctorResponseEn:   replyEn,
		VoiceOutput:        art.Name,
		RecommendedDoctors: p.deps.Doctors.Recommend(replyEn),
	}, nil
}
