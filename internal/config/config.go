package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"port"`

	UploadDir      string `mapstructure:"upload_dir"`
	OutputDir      string `mapstructure:"output_dir"`
	MinUploadBytes int64  `mapstructure:"min_upload_bytes"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`

	// RandomSeed seeds accent, filler and doctor sampling. Zero means time based.
	RandomSeed int64 `mapstructure:"random_seed"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	STTProvider string `mapstructure:"stt_provider"`
	STTModel    string `mapstructure:"stt_model"`

	GroqAPIKey  string `mapstructure:"groq_api_key"`
	GroqBaseURL string `mapstructure:"groq_base_url"`
	VisionModel string `mapstructure:"vision_model"`

	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	GeminiBaseURL  string `mapstructure:"gemini_base_url"`
	TherapistModel string `mapstructure:"therapist_model"`

	// GoogleAPIKey or GoogleCredentials (key file path or inline JSON) authorize
	// Translate, Text-to-Speech and Speech-to-Text.
	GoogleAPIKey      string `mapstructure:"google_api_key"`
	GoogleCredentials string `mapstructure:"google_credentials"`
	TranslateURL      string `mapstructure:"google_translate_url"`
	GoogleTTSURL      string `mapstructure:"google_tts_url"`
	GoogleSTTURL      string `mapstructure:"google_stt_url"`

	TTSProvider    string `mapstructure:"tts_provider"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	OpenAIBaseURL  string `mapstructure:"openai_base_url"`
	OpenAITTSVoice string `mapstructure:"openai_tts_voice"`
	OpenAITTSModel string `mapstructure:"openai_tts_model"`
}

var defaults = map[string]any{
	"port":                 "8080",
	"upload_dir":           "uploads",
	"output_dir":           "audio_output",
	"min_upload_bytes":     1024,
	"max_upload_bytes":     25 * 1024 * 1024,
	"random_seed":          0,
	"http_timeout":         90 * time.Second,
	"stt_provider":         "groq",
	"stt_model":            "whisper-large-v3",
	"groq_api_key":         "",
	"groq_base_url":        "https://api.groq.com/openai/v1",
	"vision_model":         "meta-llama/llama-4-scout-17b-16e-instruct",
	"gemini_api_key":       "",
	"gemini_base_url":      "https://generativelanguage.googleapis.com/v1beta/openai",
	"therapist_model":      "gemini-1.5-flash",
	"google_api_key":       "",
	"google_credentials":   "",
	"google_translate_url": "https://translation.googleapis.com/language/translate/v2",
	"google_tts_url":       "https://texttospeech.googleapis.com/v1/text:synthesize",
	"google_stt_url":       "https://speech.googleapis.com/v1/speech:recognize",
	"tts_provider":         "google",
	"openai_api_key":       "",
	"openai_base_url":      "https://api.openai.com/v1",
	"openai_tts_voice":     "alloy",
	"openai_tts_model":     "tts-1",
}

// Load loads configuration from defaults, an optional medibuddy.yaml and
// environment variables. Environment names are the upper-cased keys
// (PORT, GROQ_API_KEY, GOOGLE_API_KEY, ...).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("medibuddy")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Println("No config file found, using defaults and environment variables")
	} else {
		log.Printf("Loaded config file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every configured provider has its credentials.
func (c *Config) Validate() error {
	var missing []string

	switch strings.ToLower(c.STTProvider) {
	case "groq":
		if c.GroqAPIKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
	case "google":
		if !c.HasGoogleAuth() {
			missing = append(missing, "GOOGLE_API_KEY or GOOGLE_CREDENTIALS")
		}
	default:
		return fmt.Errorf("unsupported STT_PROVIDER: %s. Supported: groq, google", c.STTProvider)
	}

	switch strings.ToLower(c.TTSProvider) {
	case "google":
		if !c.HasGoogleAuth() {
			missing = append(missing, "GOOGLE_API_KEY or GOOGLE_CREDENTIALS")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported TTS_PROVIDER: %s. Supported: google, openai", c.TTSProvider)
	}

	// The doctor persona always runs on the vision service.
	if c.GroqAPIKey == "" && !contains(missing, "GROQ_API_KEY") {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	// Translation failures pass through, so missing Google auth is only logged.
	if !c.HasGoogleAuth() {
		log.Println("Warning: GOOGLE_API_KEY/GOOGLE_CREDENTIALS not set, translation will pass text through unchanged")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(dedupe(missing), ", "))
	}
	if c.MinUploadBytes < 0 || (c.MaxUploadBytes > 0 && c.MaxUploadBytes < c.MinUploadBytes) {
		return fmt.Errorf("invalid upload limits: min=%d max=%d", c.MinUploadBytes, c.MaxUploadBytes)
	}
	return nil
}

// HasGoogleAuth reports whether any Google credential is configured.
func (c *Config) HasGoogleAuth() bool {
	return strings.TrimSpace(c.GoogleAPIKey) != "" || strings.TrimSpace(c.GoogleCredentials) != ""
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if !contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}
