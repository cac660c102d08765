package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"medibuddy/internal/googleauth"
)

// GoogleProvider implements STT using Google Cloud Speech-to-Text REST API
type GoogleProvider struct {
	auth     *googleauth.Client
	endpoint string
}

// NewGoogleProvider creates a new Google STT provider. endpoint is the full
// speech:recognize URL.
func NewGoogleProvider(auth *googleauth.Client, endpoint string) *GoogleProvider {
	if endpoint == "" {
		endpoint = "https://speech.googleapis.com/v1/speech:recognize"
	}
	return &GoogleProvider{auth: auth, endpoint: endpoint}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// GoogleSTTRequest represents Google Speech-to-Text API request
type GoogleSTTRequest struct {
	Config GoogleSTTConfig `json:"config"`
	Audio  GoogleSTTAudio  `json:"audio"`
}

// GoogleSTTConfig represents recognition config
type GoogleSTTConfig struct {
	Encoding                   string   `json:"encoding,omitempty"`
	SampleRateHertz            int      `json:"sampleRateHertz,omitempty"`
	LanguageCode               string   `json:"languageCode"`
	AlternativeLanguageCodes   []string `json:"alternativeLanguageCodes,omitempty"`
	EnableAutomaticPunctuation bool     `json:"enableAutomaticPunctuation"`
}

// GoogleSTTAudio represents audio data
type GoogleSTTAudio struct {
	Content string `json:"content"` // Base64 encoded
}

// GoogleSTTResponse represents Google Speech-to-Text API response
type GoogleSTTResponse struct {
	Results []GoogleSTTResult `json:"results"`
	Error   *GoogleSTTError   `json:"error,omitempty"`
}

// GoogleSTTResult represents a recognition result
type GoogleSTTResult struct {
	Alternatives []GoogleSTTAlternative `json:"alternatives"`
	LanguageCode string                 `json:"languageCode"`
}

// GoogleSTTAlternative represents a transcript alternative
type GoogleSTTAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// GoogleSTTError represents an API error
type GoogleSTTError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

var googleLanguageCodes = map[string]string{
	"en": "en-US",
	"hi": "hi-IN",
	"mr": "mr-IN",
}

// Transcribe transcribes audio using Google Cloud Speech-to-Text REST API
func (p *GoogleProvider) Transcribe(ctx context.Context, audio Audio, language string) (*Result, error) {
	startTime := time.Now()

	fileExt := filepath.Ext(audio.Filename)
	log.Printf("[Google STT] Processing audio: %s, size: %d bytes, extension: %s",
		audio.Filename, len(audio.Data), fileExt)

	encoding, sampleRate := getGoogleAudioConfig(fileExt)
	recognition := GoogleSTTConfig{
		Encoding:                   encoding,
		SampleRateHertz:            sampleRate,
		EnableAutomaticPunctuation: true,
	}

	language = requestLanguage(language)
	if language == "" {
		recognition.LanguageCode = "en-US"
		recognition.AlternativeLanguageCodes = []string{"hi-IN", "mr-IN"}
	} else if code, ok := googleLanguageCodes[language]; ok {
		recognition.LanguageCode = code
	} else {
		recognition.LanguageCode = language
	}

	reqJSON, err := json.Marshal(GoogleSTTRequest{
		Config: recognition,
		Audio:  GoogleSTTAudio{Content: base64.StdEncoding.EncodeToString(audio.Data)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL, err := p.auth.Endpoint(p.endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[Google STT] Calling Google Speech-to-Text API (languageCode: %s)...", recognition.LanguageCode)
	resp, err := p.auth.HTTP.Do(req)
	if err != nil {
		log.Printf("[Google STT] HTTP error: %v", err)
		return nil, newError(p.Name(), "failed to send request to Google Speech-to-Text: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(p.Name(), "failed to read response body: %w", err)
	}

	responsePreview := string(body)
	if len(responsePreview) > 500 {
		responsePreview = responsePreview[:500] + "..."
	}
	log.Printf("[Google STT] Response preview: %s", responsePreview)

	if resp.StatusCode != http.StatusOK {
		var apiErr GoogleSTTResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
			log.Printf("[Google STT] API error: Code %d, Status %s, Message: %s", apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
			return nil, newError(p.Name(), "Google Speech-to-Text API error: %s", apiErr.Error.Message)
		}
		return nil, newError(p.Name(), "Google Speech-to-Text API returned status %d", resp.StatusCode)
	}

	var sttResp GoogleSTTResponse
	if err := json.Unmarshal(body, &sttResp); err != nil {
		log.Printf("[Google STT] Failed to parse response. Raw body: %s", string(body))
		return nil, newError(p.Name(), "failed to parse Google Speech-to-Text response: %w", err)
	}

	if sttResp.Error != nil {
		return nil, newError(p.Name(), "Google Speech-to-Text API error: %s", sttResp.Error.Message)
	}

	// Long audio comes back as consecutive results; join their best alternatives.
	var parts []string
	var confidence float64
	var detected string
	for _, result := range sttResp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		alternative := result.Alternatives[0]
		if text := strings.TrimSpace(alternative.Transcript); text != "" {
			parts = append(parts, text)
		}
		if confidence == 0 {
			confidence = alternative.Confidence
		}
		if detected == "" && result.LanguageCode != "" {
			detected = shortLanguage(result.LanguageCode)
		}
	}

	transcript := strings.Join(parts, " ")
	if transcript == "" {
		log.Printf("[Google STT] Empty transcript returned")
		return nil, newError(p.Name(), "no speech detected in audio")
	}

	if detected == "" {
		detected = language
	}

	log.Printf("[Google STT] Transcription successful: confidence=%.2f, length=%d, duration=%v",
		confidence, len(transcript), time.Since(startTime))

	return &Result{
		Transcript:  transcript,
		Language:    detected,
		Confidence:  confidence,
		Provider:    p.Name(),
		RawResponse: string(body),
	}, nil
}

// shortLanguage turns "hi-in" or "hi-IN" into "hi".
func shortLanguage(code string) string {
	code = strings.ToLower(code)
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}

// getGoogleAudioConfig determines encoding and sample rate based on file
// extension. WAV and FLAC carry their own header, so both are left unset.
func getGoogleAudioConfig(fileExt string) (string, int) {
	switch strings.ToLower(fileExt) {
	case ".mp3":
		return "MP3", 44100
	case ".ogg":
		return "OGG_OPUS", 48000
	default:
		return "", 0
	}
}
