package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/affect/recommend"
	"mindscore-backend/internal/classifier"
	"mindscore-backend/internal/feedback"
	"mindscore-backend/internal/shared/server/middleware"
)

type errorEnvelope struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T, set classifier.Set) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	NewHandler(NewService(set, feedback.DefaultOptions())).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return env
}

func TestAnalyzeReadingsEndpoint(t *testing.T) {
	r := setupRouter(t, classifier.Set{})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze", map[string]any{
		"readings": []map[string]any{
			{"kind": "emotion", "category": "joy", "confidence": 0.95},
			{"kind": "facial", "category": "Happy", "confidence": 0.8},
			{"kind": "stress", "category": "low", "confidence": 0.1},
		},
		"seed": 3,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		AnalysisID string `json:"analysisId"`
		MindScore  struct {
			Value    float64 `json:"value"`
			Category string  `json:"category"`
			Emoji    string  `json:"emoji"`
		} `json:"mindScore"`
		Alignment *struct {
			Aligned bool   `json:"aligned"`
			Pair    string `json:"pair"`
		} `json:"alignment"`
		Recommendations struct {
			Rule       string   `json:"rule"`
			Strategies []string `json:"strategies"`
		} `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.AnalysisID == "" {
		t.Fatalf("expected analysisId")
	}
	if body.MindScore.Category != "good" || body.MindScore.Emoji == "" {
		t.Fatalf("unexpected mind score %+v", body.MindScore)
	}
	if body.Alignment == nil || !body.Alignment.Aligned || body.Alignment.Pair != "emotion/emotion" {
		t.Fatalf("unexpected alignment %+v", body.Alignment)
	}
	if body.Recommendations.Rule != "joy/low" || len(body.Recommendations.Strategies) == 0 {
		t.Fatalf("unexpected recommendations %+v", body.Recommendations)
	}
}

func TestAnalyzeReadingsErrors(t *testing.T) {
	r := setupRouter(t, classifier.Set{})
	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{
			name:   "unknown kind",
			body:   map[string]any{"readings": []map[string]any{{"kind": "heart_rate", "category": "x", "confidence": 0.5}}},
			status: http.StatusBadRequest,
			code:   "validation_error",
		},
		{
			name:   "missing confidence",
			body:   map[string]any{"readings": []map[string]any{{"kind": "stress", "category": "low"}}},
			status: http.StatusBadRequest,
			code:   "validation_error",
		},
		{
			name: "confidence out of range",
			body: map[string]any{"readings": []map[string]any{
				{"kind": "text_emotion", "category": "joy", "confidence": 1.5},
				{"kind": "stress", "category": "low", "confidence": 0.2},
			}},
			status: http.StatusBadRequest,
			code:   "validation_error",
		},
		{
			name:   "no stress",
			body:   map[string]any{"readings": []map[string]any{{"kind": "text_emotion", "category": "joy", "confidence": 0.9}}},
			status: http.StatusUnprocessableEntity,
			code:   "missing_signal",
		},
		{
			name:   "empty",
			body:   map[string]any{"readings": []map[string]any{}},
			status: http.StatusBadRequest,
			code:   "validation_error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze", tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if env := decodeError(t, resp); env.Error.Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, env.Error.Code)
			}
		})
	}
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	r := setupRouter(t, classifier.NewLexiconSet())
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze/text", map[string]any{
		"text":             "I'm happy and excited, feeling calm and relaxed",
		"includeSentiment": false,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Readings  []affect.Reading `json:"readings"`
		Sentiment *affect.Signal   `json:"sentiment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Readings) != 2 || body.Sentiment != nil {
		t.Fatalf("expected no sentiment when excluded, got %+v", body)
	}
}

func TestAnalyzeTextClassifierErrorIs502(t *testing.T) {
	failing := classifier.Func(func(ctx context.Context, input classifier.Input) (affect.Reading, error) {
		return affect.Reading{}, errors.New("upstream down")
	})
	r := setupRouter(t, classifier.Set{TextEmotion: failing, Stress: failing})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze/text", map[string]any{"text": "hello"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "classifier_error" {
		t.Fatalf("expected classifier_error, got %s", env.Error.Code)
	}
}

func TestAnalyzeTextInvalidBody(t *testing.T) {
	r := setupRouter(t, classifier.NewLexiconSet())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/text", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := setupRouter(t, classifier.Set{})

	resp := doJSON(t, r, http.MethodGet, "/api/v1/emotions", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var emotions struct {
		TextEmotions   []string      `json:"textEmotions"`
		FacialEmotions []facialLabel `json:"facialEmotions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&emotions); err != nil {
		t.Fatalf("decode emotions: %v", err)
	}
	if len(emotions.TextEmotions) != 8 || len(emotions.FacialEmotions) != 7 {
		t.Fatalf("unexpected vocabularies %+v", emotions)
	}
	if emotions.FacialEmotions[0] != (facialLabel{Label: "Happy", Canonical: "joy"}) {
		t.Fatalf("expected Happy->joy first, got %+v", emotions.FacialEmotions[0])
	}

	resp = doJSON(t, r, http.MethodGet, "/api/v1/stress/levels", nil)
	var levels struct {
		Levels []affect.StressLevelInfo `json:"levels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&levels); err != nil {
		t.Fatalf("decode levels: %v", err)
	}
	if len(levels.Levels) != 3 || levels.Levels[0].Level != affect.StressLow {
		t.Fatalf("unexpected levels %+v", levels.Levels)
	}
}

func TestAnalyzeTextCancellationIs503(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "cancelled", err: context.Canceled, status: http.StatusServiceUnavailable, code: "unavailable"},
		{name: "upstream timeout", err: fmt.Errorf("classifier request timeout: %w", context.DeadlineExceeded), status: http.StatusBadGateway, code: "classifier_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing := classifier.Func(func(ctx context.Context, input classifier.Input) (affect.Reading, error) {
				return affect.Reading{}, tt.err
			})
			r := setupRouter(t, classifier.Set{TextEmotion: failing, Stress: failing})
			resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze/text", map[string]any{"text": "hello"})
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if env := decodeError(t, resp); env.Error.Code != tt.code {
				t.Fatalf("expected %s, got %s", tt.code, env.Error.Code)
			}
		})
	}
}

func TestAnalyzeSignalEndpoints(t *testing.T) {
	r := setupRouter(t, classifier.NewLexiconSet())

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze/emotion", map[string]any{"text": "I am so happy and excited today"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var emotion SignalResult
	if err := json.NewDecoder(resp.Body).Decode(&emotion); err != nil {
		t.Fatalf("decode emotion: %v", err)
	}
	if emotion.Reading.Kind != affect.KindTextEmotion || emotion.Signal.Label != affect.EmotionJoy || emotion.CreatedAt.IsZero() {
		t.Fatalf("unexpected emotion result %+v", emotion)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/v1/analyze/stress", map[string]any{"text": "deadlines and exams, so much pressure, I'm overwhelmed"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var stress SignalResult
	if err := json.NewDecoder(resp.Body).Decode(&stress); err != nil {
		t.Fatalf("decode stress: %v", err)
	}
	if stress.Reading.Kind != affect.KindStress || stress.Signal.StressLevel != affect.StressHigh {
		t.Fatalf("unexpected stress result %+v", stress)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/v1/analyze/stress", map[string]any{"text": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", resp.Code)
	}
}

func TestAnalyzeSignalMissingClassifierIs502(t *testing.T) {
	r := setupRouter(t, classifier.Set{TextEmotion: fixed(affect.KindTextEmotion, "joy", 0.9)})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze/stress", map[string]any{"text": "hello"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	env := decodeError(t, resp)
	if env.Error.Code != "classifier_error" || !strings.Contains(string(env.Error.Details), "stress") {
		t.Fatalf("unexpected error %+v", env.Error)
	}
}

func TestAdaptiveContentEndpoint(t *testing.T) {
	r := setupRouter(t, classifier.Set{})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/adaptive", map[string]any{"emotion": "Angry", "intensity": 0.9})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Emotion   string                  `json:"emotion"`
		Intensity float64                 `json:"intensity"`
		Items     []recommend.ContentItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode adaptive: %v", err)
	}
	if body.Emotion != affect.EmotionAnger || body.Intensity != 0.9 {
		t.Fatalf("unexpected echo %+v", body)
	}
	if len(body.Items) != 1 || body.Items[0].Difficulty != recommend.DifficultyEasy {
		t.Fatalf("expected softened anger lesson, got %+v", body.Items)
	}

	for _, bad := range []map[string]any{
		{"emotion": ""},
		{"emotion": "joy", "intensity": 1.5},
		{"emotion": "joy", "intensity": -0.1},
	} {
		resp := doJSON(t, r, http.MethodPost, "/api/v1/adaptive", bad)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", bad, resp.Code)
		}
	}
}

func TestWellnessSuggestionsEndpoint(t *testing.T) {
	r := setupRouter(t, classifier.Set{})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/wellness", map[string]any{"emotion": "sad"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Emotion     string                 `json:"emotion"`
		Suggestions []recommend.Suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode wellness: %v", err)
	}
	if body.Emotion != affect.EmotionSadness || len(body.Suggestions) != 2 || body.Suggestions[0].DurationMinutes != 2 {
		t.Fatalf("unexpected wellness response %+v", body)
	}
}
