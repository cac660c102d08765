package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"medibuddy/internal/ai"
	"medibuddy/internal/api"
	"medibuddy/internal/config"
	"medibuddy/internal/doctors"
	"medibuddy/internal/googleauth"
	"medibuddy/internal/metrics"
	"medibuddy/internal/pipeline"
	"medibuddy/internal/random"
	"medibuddy/internal/storage"
	"medibuddy/internal/stt"
	"medibuddy/internal/translate"
	"medibuddy/internal/tts"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	var google *googleauth.Client
	if cfg.HasGoogleAuth() {
		google, err = googleauth.New(context.Background(), cfg.GoogleAPIKey, cfg.GoogleCredentials, cfg.HTTPTimeout)
		if err != nil {
			log.Fatalf("Failed to initialize Google credentials: %v", err)
		}
	}

	sttProvider, err := stt.CreateProvider(cfg, google)
	if err != nil {
		log.Fatalf("Failed to create STT provider: %v", err)
	}
	ttsBackend, err := tts.CreateBackend(cfg, google)
	if err != nil {
		log.Fatalf("Failed to create TTS backend: %v", err)
	}
	log.Printf("Using STT provider %s and TTS backend %s", sttProvider.Name(), ttsBackend.Name())

	store, err := storage.NewStore(cfg.UploadDir, cfg.OutputDir)
	if err != nil {
		log.Fatalf("Failed to prepare storage: %v", err)
	}

	rng := random.New(cfg.RandomSeed)
	m := metrics.New()

	p := pipeline.New(pipeline.Deps{
		STT:        sttProvider,
		Translator: translate.NewGoogleTranslator(google, cfg.TranslateURL),
		Therapist: ai.NewTherapist(ai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.TherapistModel,
			Timeout: cfg.HTTPTimeout,
		}),
		Doctor: ai.NewDoctor(ai.ClientConfig{
			APIKey:  cfg.GroqAPIKey,
			BaseURL: cfg.GroqBaseURL,
			Model:   cfg.VisionModel,
			Timeout: cfg.HTTPTimeout,
		}),
		Speech:  tts.NewSynthesizer(ttsBackend, rng),
		Doctors: doctors.NewRecommender(rng),
	}, store, pipeline.Limits{
		MinUploadBytes: cfg.MinUploadBytes,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, m)

	r := gin.Default()

	// Add CORS middleware for browser and mobile clients
	r.Use(corsMiddleware())
	r.Use(m.Middleware())
	r.Use(api.LimitBody(bodyLimit(cfg.MaxUploadBytes), r.MaxMultipartMemory))

	api.NewHandler(p, store, m).RegisterRoutes(r)

	log.Printf("MediBuddy backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// bodyLimit leaves room for two files (POST /doctor) plus form overhead.
func bodyLimit(maxUpload int64) int64 {
	if maxUpload <= 0 {
		return 0
	}
	return 2*maxUpload + 1<<20
}

// corsMiddleware adds permissive CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
