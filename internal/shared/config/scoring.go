package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/feedback"
)

// Scoring holds the tunable constants of the MindScore core.
//
//	weights:
//	  pair:   {emotion: 0.6, stress: 0.4}
//	  triple: {emotion: 0.5, stress: 0.3, sentiment: 0.2}
//	  mood:   {emotion: 0.6, sentiment: 0.4}
//	stress_thresholds: {low: 0.33, moderate: 0.66}
type Scoring struct {
	Weights          affect.Weights          `yaml:"weights"`
	StressThresholds affect.StressThresholds `yaml:"stress_thresholds"`
}

// DefaultScoring returns the built-in weights and thresholds.
func DefaultScoring() Scoring {
	return Scoring{
		Weights:          affect.DefaultWeights(),
		StressThresholds: affect.DefaultStressThresholds(),
	}
}

// FeedbackOptions hands the scoring constants to the composer.
func (s Scoring) FeedbackOptions() feedback.Options {
	return feedback.Options{Weights: s.Weights, Thresholds: s.StressThresholds}
}

// LoadScoring reads a YAML scoring file. Keys absent from the file keep their
// defaults.
func LoadScoring(path string) (Scoring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scoring{}, fmt.Errorf("failed to read scoring config: %w", err)
	}
	return ParseScoring(data)
}

// ParseScoring decodes and validates YAML scoring data.
func ParseScoring(data []byte) (Scoring, error) {
	s := DefaultScoring()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scoring{}, fmt.Errorf("failed to parse scoring config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scoring{}, fmt.Errorf("invalid scoring config: %w", err)
	}
	return s, nil
}

// Validate checks weights and thresholds.
func (s Scoring) Validate() error {
	if err := s.Weights.Validate(); err != nil {
		return err
	}
	t := s.StressThresholds
	if math.IsNaN(t.Low) || math.IsNaN(t.Moderate) || t.Low <= 0 || t.Moderate >= 1 || t.Low >= t.Moderate {
		return fmt.Errorf("stress thresholds must satisfy 0 < low < moderate < 1")
	}
	return nil
}
