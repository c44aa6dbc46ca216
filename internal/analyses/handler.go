package analyses

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/affect/recommend"
	"mindscore-backend/internal/shared/server/middleware"
	"mindscore-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyzeReadings)
	rg.POST("/analyze/text", h.analyzeText)
	rg.POST("/analyze/emotion", h.analyzeSignal(affect.KindTextEmotion))
	rg.POST("/analyze/stress", h.analyzeSignal(affect.KindStress))
	rg.POST("/adaptive", h.adaptiveContent)
	rg.POST("/wellness", h.wellnessSuggestions)
	rg.GET("/emotions", h.listEmotions)
	rg.GET("/stress/levels", h.listStressLevels)
}

type readingPayload struct {
	Kind       string   `json:"kind"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
}

type readingsPayload struct {
	Readings []readingPayload `json:"readings"`
	Seed     *uint64          `json:"seed"`
}

type textPayload struct {
	Text             string  `json:"text"`
	IncludeSentiment *bool   `json:"includeSentiment"`
	Seed             *uint64 `json:"seed"`
}

func (h *Handler) analyzeReadings(c *gin.Context) {
	var payload readingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}

	readings, issues := toReadings(payload.Readings)
	if len(issues) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid readings", issues)
		return
	}

	result, err := h.Svc.AnalyzeReadings(c.Request.Context(), ReadingsRequest{Readings: readings, Seed: payload.Seed})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.AnalysisIDKey, result.ID)
	respond.OK(c, result)
}

func (h *Handler) analyzeText(c *gin.Context) {
	var payload textPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	includeSentiment := true
	if payload.IncludeSentiment != nil {
		includeSentiment = *payload.IncludeSentiment
	}

	result, err := h.Svc.AnalyzeText(c.Request.Context(), TextRequest{
		Text:             payload.Text,
		IncludeSentiment: includeSentiment,
		Seed:             payload.Seed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.AnalysisIDKey, result.ID)
	respond.OK(c, result)
}

type signalPayload struct {
	Text string `json:"text"`
}

func (h *Handler) analyzeSignal(kind affect.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload signalPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
			return
		}
		result, err := h.Svc.AnalyzeSignal(c.Request.Context(), SignalRequest{Kind: kind, Text: payload.Text})
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, result)
	}
}

type emotionPayload struct {
	Emotion   string   `json:"emotion"`
	Intensity *float64 `json:"intensity"`
}

func bindEmotion(c *gin.Context) (emotionPayload, string, bool) {
	var payload emotionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return payload, "", false
	}
	if strings.TrimSpace(payload.Emotion) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "emotion is required", nil)
		return payload, "", false
	}
	if i := payload.Intensity; i != nil && (math.IsNaN(*i) || *i < 0 || *i > 1) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "intensity must be within [0,1]", nil)
		return payload, "", false
	}
	canonical, _ := affect.CanonicalEmotion(payload.Emotion)
	return payload, canonical, true
}

func (h *Handler) adaptiveContent(c *gin.Context) {
	payload, canonical, ok := bindEmotion(c)
	if !ok {
		return
	}
	intensity := 0.0
	if payload.Intensity != nil {
		intensity = *payload.Intensity
	}
	respond.OK(c, gin.H{
		"emotion":   canonical,
		"intensity": intensity,
		"items":     recommend.AdaptiveContent(payload.Emotion, intensity),
	})
}

func (h *Handler) wellnessSuggestions(c *gin.Context) {
	payload, canonical, ok := bindEmotion(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{
		"emotion":     canonical,
		"suggestions": recommend.WellnessSuggestions(payload.Emotion),
	})
}

type facialLabel struct {
	Label     string `json:"label"`
	Canonical string `json:"canonical"`
}

func (h *Handler) listEmotions(c *gin.Context) {
	facial := make([]facialLabel, 0, len(affect.FacialEmotions()))
	for _, label := range affect.FacialEmotions() {
		canonical, _ := affect.CanonicalEmotion(label)
		facial = append(facial, facialLabel{Label: label, Canonical: canonical})
	}
	respond.OK(c, gin.H{
		"textEmotions":   affect.TextEmotions(),
		"facialEmotions": facial,
	})
}

func (h *Handler) listStressLevels(c *gin.Context) {
	respond.OK(c, gin.H{
		"levels": affect.StressLevels(),
	})
}

func toReadings(in []readingPayload) ([]affect.Reading, []map[string]string) {
	var issues []map[string]string
	out := make([]affect.Reading, 0, len(in))
	for i, p := range in {
		field := fmt.Sprintf("readings[%d]", i)
		kind, ok := affect.ParseKind(p.Kind)
		if !ok {
			issues = append(issues, map[string]string{"field": field + ".kind", "issue": "unknown kind"})
			continue
		}
		if p.Confidence == nil {
			issues = append(issues, map[string]string{"field": field + ".confidence", "issue": "required"})
			continue
		}
		out = append(out, affect.Reading{Kind: kind, Category: p.Category, Confidence: *p.Confidence})
	}
	return out, issues
}

func writeError(c *gin.Context, err error) {
	var missing *affect.MissingSignalError
	var classifierErr *ClassifierError
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, affect.ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &missing):
		respond.Error(c, http.StatusUnprocessableEntity, "missing_signal", err.Error(), gin.H{"need": missing.Need})
	// A cancelled request is ours even when a classifier surfaced it; an
	// upstream timeout with a live request stays a classifier error.
	case errors.Is(err, context.Canceled), c.Request.Context().Err() != nil:
		respond.Error(c, http.StatusServiceUnavailable, "unavailable", "request cancelled", nil)
	case errors.As(err, &classifierErr):
		respond.Error(c, http.StatusBadGateway, "classifier_error", "classifier unavailable", gin.H{"kind": classifierErr.Kind})
	case errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusServiceUnavailable, "unavailable", "request cancelled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze", nil)
	}
}
