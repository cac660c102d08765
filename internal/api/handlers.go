package api

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"medibuddy/internal/metrics"
	"medibuddy/internal/model"
	"medibuddy/internal/pipeline"
	"medibuddy/internal/storage"
	"medibuddy/internal/stt"
	"medibuddy/internal/tts"
	"medibuddy/internal/utils"
)

// Handler serves the consultation routes.
type Handler struct {
	pipeline *pipeline.Pipeline
	store    *storage.Store
	metrics  *metrics.Metrics
}

func NewHandler(p *pipeline.Pipeline, store *storage.Store, m *metrics.Metrics) *Handler {
	return &Handler{pipeline: p, store: store, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.healthCheck)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	r.POST("/therapist", h.therapist)
	r.POST("/doctor", h.doctor)
	r.POST("/doctor_image", h.doctorImage)
	r.POST("/doctor_audio", h.doctorAudio)
	r.POST("/doctor_text", h.doctorText)
	r.POST("/translate", h.translateText)
	r.GET("/download/:filename", h.download)
}

// healthCheck returns server health status
func (h *Handler) healthCheck(c *gin.Context) {
	utils.OK(c, gin.H{
		"status":  "ok",
		"service": "medibuddy-backend",
	})
}

// therapist accepts either a JSON text message or a multipart voice message.
func (h *Handler) therapist(c *gin.Context) {
	if c.ContentType() == binding.MIMEJSON {
		var req model.TherapistTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "text is required")
			return
		}
		resp, err := h.pipeline.TherapistText(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		utils.OK(c, resp)
		return
	}

	resp, err := h.pipeline.TherapistVoice(c.Request.Context(), model.TherapistVoiceInput{
		Audio: formFile(c, "audio"),
		Lang:  c.PostForm("lang"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	utils.OK(c, resp)
}

func (h *Handler) doctor(c *gin.Context) {
	resp, err := h.pipeline.DoctorConsult(c.Request.Context(), model.DoctorConsultInput{
		Audio: formFile(c, "audio"),
		Image: formFile(c, "image"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	utils.OK(c, resp)
}

func (h *Handler) doctorImage(c *gin.Context) {
	resp, err := h.pipeline.DoctorImage(c.Request.Context(), model.DoctorImageInput{
		Image: formFile(c, "image"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	utils.OK(c, resp)
}

func (h *Handler) doctorAudio(c *gin.Context) {
	resp, err := h.pipeline.DoctorAudio(c.Request.Context(), model.DoctorAudioInput{
		Audio: formFile(c, "audio"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	utils.OK(c, resp)
}

func (h *Handler) doctorText(c *gin.Context) {
	var req model.DoctorTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "text is required")
		return
	}

	resp, err := h.pipeline.DoctorText(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.OK(c, resp)
}

// translateText answers {<text>: <translation>}. When the translation
// service fails the original text comes back under the same key.
func (h *Handler) translateText(c *gin.Context) {
	var req model.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.pipeline.TranslateText(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	if res.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  res.Err.Error(),
			req.Text: res.Text,
		})
		return
	}
	utils.OK(c, gin.H{req.Text: res.Text})
}

// download serves a synthesized audio file from the output directory.
func (h *Handler) download(c *gin.Context) {
	name := c.Param("filename")

	path, err := h.store.ResolveOutput(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			utils.Error(c, http.StatusNotFound, "file not found")
			return
		}
		log.Printf("[Download] Failed to resolve %s: %v", name, err)
		utils.Error(c, http.StatusInternalServerError, "failed to read file")
		return
	}

	c.Header("Content-Type", storage.ContentType(path))
	c.FileAttachment(path, name)
}

// formFile returns the named upload, or nil when the form has none.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Printf("[Upload] FormFile %s error: %v", field, err)
		}
		return nil
	}
	return file
}

// writeError maps pipeline failures onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var validationErr *pipeline.ValidationError
	var sttErr *stt.Error
	var ttsErr *tts.Error

	switch {
	case errors.As(err, &validationErr):
		utils.Error(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &sttErr):
		log.Printf("[%s] %v", c.FullPath(), err)
		utils.Error(c, http.StatusBadRequest, "Could not understand the audio")
	case errors.As(err, &ttsErr):
		log.Printf("[%s] %v", c.FullPath(), err)
		utils.Error(c, http.StatusInternalServerError, "Failed to generate speech file")
	default:
		log.Printf("[%s] %v", c.FullPath(), err)
		utils.Error(c, http.StatusInternalServerError, err.Error())
	}
}
