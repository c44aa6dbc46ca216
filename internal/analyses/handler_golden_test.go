package analyses

import (
	"encoding/json"
	"net/http"
	"os"
	"reflect"
	"slices"
	"testing"

	"mindscore-backend/internal/classifier"
)

// Fields drawn from the seeded source; the golden file pins everything else.
var randomizedRecommendationFields = []string{
	"acknowledgment", "learningTip", "suggestedActivity", "strategies", "motivationalQuote",
}

func loadGolden(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden %s: %v", path, err)
	}
	return out
}

func postGoldenReadings(t *testing.T) map[string]any {
	t.Helper()
	r := setupRouter(t, classifier.Set{})
	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze", map[string]any{
		"readings": []map[string]any{
			{"kind": "text_emotion", "category": "joy", "confidence": 0.5},
			{"kind": "stress", "category": "low", "confidence": 0.25},
			{"kind": "sentiment", "category": "positive", "confidence": 0.5},
		},
		"seed": 42,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAnalyzeReadingsMatchesGolden(t *testing.T) {
	body := postGoldenReadings(t)

	for _, key := range []string{"analysisId", "createdAt"} {
		if v, _ := body[key].(string); v == "" {
			t.Fatalf("expected %s in response", key)
		}
		delete(body, key)
	}
	recs, ok := body["recommendations"].(map[string]any)
	if !ok {
		t.Fatalf("expected recommendations object")
	}
	for _, key := range randomizedRecommendationFields {
		if _, ok := recs[key]; !ok {
			t.Fatalf("expected recommendations.%s in response", key)
		}
		delete(recs, key)
	}

	want := loadGolden(t, "testdata/analyze_readings.golden.json")
	if !reflect.DeepEqual(body, want) {
		got, _ := json.MarshalIndent(body, "", "  ")
		t.Fatalf("response does not match golden file:\n%s", got)
	}
}

func TestAnalyzeReadingsSeedPinsRandomizedFields(t *testing.T) {
	first := postGoldenReadings(t)["recommendations"].(map[string]any)
	second := postGoldenReadings(t)["recommendations"].(map[string]any)
	for _, key := range randomizedRecommendationFields {
		if !reflect.DeepEqual(first[key], second[key]) {
			t.Fatalf("recommendations.%s differs for the same seed: %v vs %v", key, first[key], second[key])
		}
	}

	strategies, ok := first["strategies"].([]any)
	if !ok || len(strategies) != 3 {
		t.Fatalf("expected three strategies, got %v", first["strategies"])
	}
	seen := make([]string, 0, len(strategies))
	for _, s := range strategies {
		str, _ := s.(string)
		if str == "" || slices.Contains(seen, str) {
			t.Fatalf("expected distinct non-empty strategies, got %v", strategies)
		}
		seen = append(seen, str)
	}
}
