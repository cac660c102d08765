package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"medibuddy/internal/googleauth"
)

// GoogleBackend uses the Cloud Text-to-Speech v1 REST API.
type GoogleBackend struct {
	auth     *googleauth.Client
	endpoint string
}

func NewGoogleBackend(auth *googleauth.Client, endpoint string) *GoogleBackend {
	if endpoint == "" {
		endpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"
	}
	return &GoogleBackend{auth: auth, endpoint: endpoint}
}

func (b *GoogleBackend) Name() string {
	return "google"
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (b *GoogleBackend) Synthesize(ctx context.Context, text, variant string) ([]byte, error) {
	var body synthesizeRequest
	body.Input.Text = text
	body.Voice.LanguageCode = variant
	body.AudioConfig.AudioEncoding = "MP3"

	reqJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL, err := b.auth.Endpoint(b.endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.auth.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Google Text-to-Speech: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed synthesizeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Google Text-to-Speech returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to parse Google Text-to-Speech response: %w", err)
	}
	if parsed.Error != nil {
		log.Printf("[Google TTS] API error: Code %d, Message: %s", parsed.Error.Code, parsed.Error.Message)
		return nil, fmt.Errorf("Google Text-to-Speech API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Text-to-Speech returned status %d", resp.StatusCode)
	}
	if parsed.AudioContent == "" {
		return nil, errors.New("Google Text-to-Speech returned no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}
