package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"medibuddy/internal/config"
	"medibuddy/internal/googleauth"
)

func TestGoogleBackend(t *testing.T) {
	t.Parallel()

	var got synthesizeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/text:synthesize", r.URL.Path)
		require.Equal(t, "k", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString([]byte("mp3")),
		})
	}))
	defer srv.Close()

	b := NewGoogleBackend(googleauth.NewWithHTTPClient(srv.Client(), "k"), srv.URL+"/v1/text:synthesize")
	audio, err := b.Synthesize(context.Background(), "namaste", "hi-IN")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3"), audio)
	require.Equal(t, "namaste", got.Input.Text)
	require.Equal(t, "hi-IN", got.Voice.LanguageCode)
	require.Equal(t, "MP3", got.AudioConfig.AudioEncoding)
}

func TestGoogleBackendErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]http.HandlerFunc{
		"api error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"unsupported voice"}}`))
		},
		"plain failure": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
		},
		"no audio": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(handler)
			defer srv.Close()

			b := NewGoogleBackend(googleauth.NewWithHTTPClient(srv.Client(), "k"), srv.URL)
			_, err := b.Synthesize(context.Background(), "hello", "en-US")
			require.Error(t, err)
		})
	}
}

func TestOpenAIBackend(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/speech", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-audio"))
	}))
	defer srv.Close()

	b := NewOpenAIBackend("key", srv.URL, "", "nova", 5*time.Second)
	audio, err := b.Synthesize(context.Background(), "hello there", "en-GB")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3-audio"), audio)
	require.Equal(t, "tts-1", got["model"])
	require.Equal(t, "nova", got["voice"])
	require.Equal(t, "hello there", got["input"])
	require.Equal(t, "mp3", got["response_format"])
}

func TestCreateBackend(t *testing.T) {
	t.Parallel()

	b, err := CreateBackend(&config.Config{TTSProvider: "google"}, googleauth.NewWithHTTPClient(nil, "k"))
	require.NoError(t, err)
	require.Equal(t, "google", b.Name())

	b, err = CreateBackend(&config.Config{TTSProvider: "openai", OpenAIAPIKey: "k"}, nil)
	require.NoError(t, err)
	require.Equal(t, "openai", b.Name())

	_, err = CreateBackend(&config.Config{TTSProvider: "google"}, nil)
	require.Error(t, err)

	_, err = CreateBackend(&config.Config{TTSProvider: "gtts"}, nil)
	require.Error(t, err)
}
