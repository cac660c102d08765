package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Reply is a generated answer. When Fallback is set, Text is the fixed
// persona fallback and Err holds the cause. Text is never empty.
type Reply struct {
	Text     string
	Fallback bool
	Err      error
}

// Image is an uploaded picture passed to the vision model.
type Image struct {
	Data     []byte
	MIMEType string
}

// DataURL encodes the image as a base64 data URL.
func (i Image) DataURL() string {
	mime := i.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ClientConfig points a generator at an OpenAI-compatible chat endpoint.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func newClient(cfg ClientConfig) *openai.Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return openai.NewClientWithConfig(oc)
}

// Therapist answers as the warm conversational persona.
type Therapist struct {
	client *openai.Client
	model  string
}

func NewTherapist(cfg ClientConfig) *Therapist {
	return &Therapist{client: newClient(cfg), model: cfg.Model}
}

// Respond generates the therapist's reply to English user input.
func (t *Therapist) Respond(ctx context.Context, userInput string) Reply {
	log.Printf("[Therapist] Calling model %s (input length: %d)", t.model, len(userInput))

	content, err := complete(ctx, t.client, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: TherapistPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildTherapistInput(userInput)},
		},
		Temperature: 0.8,
	})
	if err != nil {
		log.Printf("[Therapist] Model error, using fallback reply: %v", err)
		return Reply{Text: TherapistFallback, Fallback: true, Err: err}
	}
	return Reply{Text: content}
}

// Doctor answers as the diagnostic persona, optionally looking at an image.
type Doctor struct {
	client *openai.Client
	model  string
}

func NewDoctor(cfg ClientConfig) *Doctor {
	return &Doctor{client: newClient(cfg), model: cfg.Model}
}

// Diagnose generates the doctor's reply to query. image may be nil.
func (d *Doctor) Diagnose(ctx context.Context, query string, image *Image) Reply {
	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if image != nil {
		user.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: query},
			{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: image.DataURL()},
			},
		}
	} else {
		user.Content = query
	}

	log.Printf("[Doctor] Calling model %s (query length: %d, image: %t)", d.model, len(query), image != nil)

	content, err := complete(ctx, d.client, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: DoctorPrompt},
			user,
		},
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("[Doctor] Model error, using fallback reply: %v", err)
		return Reply{Text: DoctorFallback, Fallback: true, Err: err}
	}
	return Reply{Text: withDisclaimer(plainSpeech(content))}
}

func complete(ctx context.Context, client *openai.Client, req openai.ChatCompletionRequest) (string, error) {
	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	log.Printf("Usage - Prompt tokens: %d, Completion tokens: %d, Total tokens: %d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("model returned an empty reply")
	}
	return content, nil
}
