package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"medibuddy/internal/googleauth"
)

// Result is the outcome of a translation. When Fallback is set, Text is the
// unchanged input and Err says why the service could not be used.
type Result struct {
	Text     string
	Fallback bool
	Err      error
}

// Translator converts text between languages.
type Translator interface {
	Translate(ctx context.Context, text, target string) Result
}

// GoogleTranslator calls the Google Cloud Translation v2 REST API.
type GoogleTranslator struct {
	auth     *googleauth.Client
	endpoint string
}

func NewGoogleTranslator(auth *googleauth.Client, endpoint string) *GoogleTranslator {
	if endpoint == "" {
		endpoint = "https://translation.googleapis.com/language/translate/v2"
	}
	return &GoogleTranslator{auth: auth, endpoint: endpoint}
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate never fails: any problem returns the original text with Fallback set.
func (t *GoogleTranslator) Translate(ctx context.Context, text, target string) Result {
	translated, err := t.translate(ctx, text, target)
	if err != nil {
		log.Printf("[Translate] Falling back to original text (target=%s): %v", target, err)
		return Result{Text: text, Fallback: true, Err: err}
	}
	return Result{Text: translated}
}

func (t *GoogleTranslator) translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty input")
	}
	if t.auth == nil {
		return "", errors.New("translation credentials are not configured")
	}

	apiURL, err := t.auth.Endpoint(t.endpoint)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("q", text)
	form.Set("target", target)
	form.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.auth.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Google Translate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Google Translate returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Google Translate response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("Google Translate API error: %s", parsed.Error.Message)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", errors.New("no translations returned")
	}

	translated := strings.TrimSpace(parsed.Data.Translations[0].TranslatedText)
	if translated == "" {
		return "", errors.New("empty translation returned")
	}
	return translated, nil
}
