package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mindscore-backend/internal/affect"
)

func TestParseScoringPartialOverride(t *testing.T) {
	s, err := ParseScoring([]byte("weights:\n  pair:\n    emotion: 0.7\n    stress: 0.3\n"))
	if err != nil {
		t.Fatalf("ParseScoring: %v", err)
	}
	if s.Weights.Pair.Emotion != 0.7 || s.Weights.Pair.Stress != 0.3 {
		t.Fatalf("expected pair override, got %+v", s.Weights.Pair)
	}
	def := affect.DefaultWeights()
	if s.Weights.Triple != def.Triple || s.Weights.Mood != def.Mood {
		t.Fatalf("expected untouched sets to keep defaults, got %+v", s.Weights)
	}
	if s.StressThresholds != affect.DefaultStressThresholds() {
		t.Fatalf("expected default thresholds, got %+v", s.StressThresholds)
	}
}

func TestParseScoringRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "sum", yaml: "weights:\n  pair: {emotion: 0.7, stress: 0.7}\n", want: "pair weights must total 1"},
		{name: "negative", yaml: "weights:\n  mood: {emotion: 1.2, sentiment: -0.2}\n", want: "non-negative"},
		{name: "thresholds", yaml: "stress_thresholds: {low: 0.7, moderate: 0.5}\n", want: "stress thresholds"},
		{name: "syntax", yaml: "weights: [", want: "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScoring([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadReadsEnvAndScoringFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.yaml")
	if err := os.WriteFile(path, []byte("stress_thresholds: {low: 0.25, moderate: 0.75}\n"), 0o600); err != nil {
		t.Fatalf("write scoring file: %v", err)
	}
	t.Setenv("SCORING_CONFIG_PATH", path)
	t.Setenv("CLASSIFIER_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENV", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scoring.StressThresholds.Low != 0.25 || cfg.Scoring.StressThresholds.Moderate != 0.75 {
		t.Fatalf("expected thresholds from file, got %+v", cfg.Scoring.StressThresholds)
	}
	if cfg.ClassifierTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.ClassifierTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.Env != "production" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.UseRemoteClassifier() {
		t.Fatalf("expected lexicon classifier without CLASSIFIER_URL")
	}
}

func TestLoadMissingScoringFile(t *testing.T) {
	t.Setenv("SCORING_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing scoring file")
	}
}

func TestScoringFeedbackOptionsCarriesOverrides(t *testing.T) {
	s, err := ParseScoring([]byte("weights:\n  pair: {emotion: 0.5, stress: 0.5}\nstress_thresholds: {low: 0.2, moderate: 0.8}\n"))
	if err != nil {
		t.Fatalf("ParseScoring: %v", err)
	}
	opts := s.FeedbackOptions()
	if opts.Weights.Pair.Emotion != 0.5 || opts.Weights.Pair.Stress != 0.5 {
		t.Fatalf("expected pair weights to carry over, got %+v", opts.Weights.Pair)
	}
	if opts.Thresholds.Low != 0.2 || opts.Thresholds.Moderate != 0.8 {
		t.Fatalf("expected thresholds to carry over, got %+v", opts.Thresholds)
	}
	if got := opts.Thresholds.LevelFor(0.7); got != affect.StressModerate {
		t.Fatalf("expected 0.7 to band moderate with widened thresholds, got %s", got)
	}
}
