package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "STT_PROVIDER", "TTS_PROVIDER", "GROQ_API_KEY", "GEMINI_API_KEY",
	"GOOGLE_API_KEY", "GOOGLE_CREDENTIALS", "OPENAI_API_KEY", "MIN_UPLOAD_BYTES",
	"MAX_UPLOAD_BYTES", "RANDOM_SEED", "HTTP_TIMEOUT",
}

// clearEnv blanks every key Load reads so the developer's shell does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GEMINI_API_KEY", "gemini-test")
	t.Setenv("GOOGLE_API_KEY", "google-test")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, "audio_output", cfg.OutputDir)
	require.EqualValues(t, 1024, cfg.MinUploadBytes)
	require.EqualValues(t, 25*1024*1024, cfg.MaxUploadBytes)
	require.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "groq", cfg.STTProvider)
	require.Equal(t, "google", cfg.TTSProvider)
	require.Equal(t, "gsk-test", cfg.GroqAPIKey)
	require.True(t, cfg.HasGoogleAuth())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GEMINI_API_KEY", "gemini-test")
	t.Setenv("TTS_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("HTTP_TIMEOUT", "15s")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.EqualValues(t, 42, cfg.RandomSeed)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "openai", cfg.TTSProvider)
	require.False(t, cfg.HasGoogleAuth())
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-test")

	path := filepath.Join(t.TempDir(), "medibuddy.yaml")
	content := "port: \"7070\"\ngroq_api_key: gsk-file\ngoogle_api_key: google-file\nupload_dir: /tmp/mb-uploads\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, "gsk-file", cfg.GroqAPIKey)
	require.Equal(t, "/tmp/mb-uploads", cfg.UploadDir)
}

func TestLoadMissingKeys(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "GROQ_API_KEY")
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
	require.Contains(t, err.Error(), "GOOGLE_API_KEY or GOOGLE_CREDENTIALS")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			STTProvider:    "groq",
			TTSProvider:    "google",
			GroqAPIKey:     "gsk",
			GeminiAPIKey:   "gemini",
			GoogleAPIKey:   "google",
			MinUploadBytes: 1024,
			MaxUploadBytes: 2048,
		}
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.STTProvider = "fpt"
	require.ErrorContains(t, cfg.Validate(), "unsupported STT_PROVIDER")

	cfg = base()
	cfg.TTSProvider = "gtts"
	require.ErrorContains(t, cfg.Validate(), "unsupported TTS_PROVIDER")

	cfg = base()
	cfg.GoogleAPIKey = ""
	require.ErrorContains(t, cfg.Validate(), "GOOGLE_API_KEY or GOOGLE_CREDENTIALS")

	cfg = base()
	cfg.GoogleAPIKey = ""
	cfg.GoogleCredentials = "/etc/medibuddy/sa.json"
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.STTProvider = "google"
	cfg.GroqAPIKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	require.Equal(t, "missing required configuration: GROQ_API_KEY", err.Error())

	cfg = base()
	cfg.MaxUploadBytes = 512
	require.ErrorContains(t, cfg.Validate(), "invalid upload limits")
}
