package classifier

import (
	"context"
	"errors"

	"mindscore-backend/internal/affect"
)

// Classifier abstracts emotion, stress, and sentiment models. Implementations
// may be ML services, rule engines, or stubs; the scoring core only sees the
// readings they return.
type Classifier interface {
	Classify(ctx context.Context, input Input) (affect.Reading, error)
}

// Input is the raw material a classifier works on.
type Input struct {
	Text string
}

// Set groups the classifiers used for text analysis.
type Set struct {
	TextEmotion Classifier
	Stress      Classifier
	Sentiment   Classifier
}

var (
	// ErrEmptyInput is returned when there is nothing to classify.
	ErrEmptyInput = errors.New("classifier input is empty")
	// ErrNotConfigured is returned when no classifier is wired for a kind.
	ErrNotConfigured = errors.New("classifier not configured")
)

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, input Input) (affect.Reading, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, input Input) (affect.Reading, error) {
	return f(ctx, input)
}
