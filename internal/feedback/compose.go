// Package feedback assembles the fused MindScore, the cross-modality alignment
// and the recommendation bundle into one response. It performs no I/O.
package feedback

import (
	"fmt"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/affect/recommend"
)

// Options carries the configurable scoring constants.
type Options struct {
	Weights    affect.Weights
	Thresholds affect.StressThresholds
}

// DefaultOptions uses the default weights and stress thresholds.
func DefaultOptions() Options {
	return Options{Weights: affect.DefaultWeights(), Thresholds: affect.DefaultStressThresholds()}
}

// Feedback is the composed result for one request.
type Feedback struct {
	MindScore       affect.MindScore        `json:"mindScore"`
	Alignment       *affect.AlignmentResult `json:"alignment"`
	Recommendations recommend.Bundle        `json:"recommendations"`
	Emotion         affect.Signal           `json:"emotion"`
	Stress          affect.Signal           `json:"stress"`
	Sentiment       *affect.Signal          `json:"sentiment,omitempty"`
	// Warnings lists readings whose labels were not recognized and were
	// normalized to neutral.
	Warnings []string `json:"warnings,omitempty"`
}

type signalSet struct {
	text      *affect.Signal
	facial    *affect.Signal
	stress    *affect.Signal
	sentiment *affect.Signal
	warnings  []string
}

// Compose normalizes the readings and builds the Feedback.
//
// At least one emotion reading (text or facial) and one stress reading are
// required. The text emotion drives scoring and recommendations when present,
// the facial one otherwise. When several readings share a kind the first wins.
// Alignment compares facial and text emotion when both exist, otherwise the
// primary emotion and the sentiment; it is nil when neither pair exists.
func Compose(readings []affect.Reading, opts Options, rng recommend.Rand) (Feedback, error) {
	set, err := collect(readings, affect.Normalizer{Thresholds: opts.Thresholds})
	if err != nil {
		return Feedback{}, err
	}

	emotion := set.text
	if emotion == nil {
		emotion = set.facial
	}
	if emotion == nil {
		return Feedback{}, &affect.MissingSignalError{Need: "emotion"}
	}
	if set.stress == nil {
		return Feedback{}, &affect.MissingSignalError{Need: "stress"}
	}

	var polarity *float64
	if set.sentiment != nil {
		p := set.sentiment.Valence
		polarity = &p
	}
	score := opts.Weights.ComputeMindScore(emotion.Valence, set.stress.StressScore, polarity)

	alignment, err := align(set, emotion, opts.Weights)
	if err != nil {
		return Feedback{}, err
	}

	bundle := recommend.Select(recommend.Input{
		Emotion:     emotion.Label,
		Confidence:  emotion.Confidence,
		StressLevel: set.stress.StressLevel,
		MindScore:   score.Value,
	}, rng)

	return Feedback{
		MindScore:       score,
		Alignment:       alignment,
		Recommendations: bundle,
		Emotion:         *emotion,
		Stress:          *set.stress,
		Sentiment:       set.sentiment,
		Warnings:        set.warnings,
	}, nil
}

func collect(readings []affect.Reading, n affect.Normalizer) (signalSet, error) {
	var set signalSet
	for _, r := range readings {
		sig, err := n.Normalize(r)
		if err != nil {
			return signalSet{}, err
		}
		if !sig.Known {
			set.warnings = append(set.warnings, fmt.Sprintf("unrecognized %s label %q treated as %s", r.Kind, r.Category, sig.Label))
		}
		slot := set.slot(sig.Kind)
		if *slot == nil {
			s := sig
			*slot = &s
		}
	}
	return set, nil
}

func (s *signalSet) slot(kind affect.Kind) **affect.Signal {
	switch kind {
	case affect.KindTextEmotion:
		return &s.text
	case affect.KindFacialEmotion:
		return &s.facial
	case affect.KindStress:
		return &s.stress
	default:
		return &s.sentiment
	}
}

func align(set signalSet, emotion *affect.Signal, w affect.Weights) (*affect.AlignmentResult, error) {
	var other *affect.Signal
	switch {
	case set.text != nil && set.facial != nil:
		emotion, other = set.facial, set.text
	case set.sentiment != nil:
		other = set.sentiment
	default:
		return nil, nil
	}
	res, err := w.DetectAlignment(*emotion, *other)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
