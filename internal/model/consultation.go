package model

import (
	"mime/multipart"

	"medibuddy/internal/doctors"
)

// TherapistVoiceInput is the multipart form of POST /therapist.
type TherapistVoiceInput struct {
	Audio *multipart.FileHeader
	Lang  string // optional language hint, e.g. "hi"
}

// TherapistTextRequest is the JSON body of POST /therapist.
type TherapistTextRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang"`
}

// DoctorConsultInput is the multipart form of POST /doctor.
type DoctorConsultInput struct {
	Audio *multipart.FileHeader
	Image *multipart.FileHeader
}

// DoctorImageInput is the multipart form of POST /doctor_image.
type DoctorImageInput struct {
	Image *multipart.FileHeader
}

// DoctorAudioInput is the multipart form of POST /doctor_audio.
type DoctorAudioInput struct {
	Audio *multipart.FileHeader
}

// DoctorTextRequest is the JSON body of POST /doctor_text.
type DoctorTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type TherapistResponse struct {
	UserInput           string `json:"user_input"`
	UserInputEn         string `json:"user_input_en"`
	TherapistResponse   string `json:"therapist_response"`
	TherapistResponseEn string `json:"therapist_response_en"`
	AudioFile           string `json:"audio_file,omitempty"`
}

type DoctorResponse struct {
	Transcription      string           `json:"transcription,omitempty"`
	UserInput          string           `json:"user_input,omitempty"`
	DoctorResponse     string           `json:"doctor_response"`
	DoctorResponseEn   string           `json:"doctor_response_en,omitempty"`
	VoiceOutput        string           `json:"voice_output"`
	RecommendedDoctors []doctors.Doctor `json:"recommended_doctors,omitempty"`
}

// TranslateRequest is the JSON body of POST /translate.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}
