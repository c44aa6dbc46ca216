package affect

import (
	"math"
	"strings"
)

// Normalizer maps classifier readings onto canonical signals.
type Normalizer struct {
	Thresholds StressThresholds
}

// NewNormalizer returns a Normalizer with the default stress thresholds.
func NewNormalizer() Normalizer {
	return Normalizer{Thresholds: DefaultStressThresholds()}
}

// Normalize converts r with the default thresholds.
func Normalize(r Reading) (Signal, error) {
	return NewNormalizer().Normalize(r)
}

// Normalize validates the confidence and maps the reading per its kind.
// Unrecognized labels normalize to neutral with Known=false; they are never an error.
func (n Normalizer) Normalize(r Reading) (Signal, error) {
	if err := validateConfidence(r); err != nil {
		return Signal{}, err
	}
	switch {
	case r.Kind.IsEmotion():
		return normalizeEmotion(r), nil
	case r.Kind == KindSentiment:
		return normalizeSentiment(r), nil
	case r.Kind == KindStress:
		return n.normalizeStress(r), nil
	default:
		return Signal{}, &ValidationError{Reading: r, Reason: "unknown reading kind"}
	}
}

func validateConfidence(r Reading) error {
	c := r.Confidence
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return &ValidationError{Reading: r, Reason: "confidence must be a finite number"}
	}
	if c < 0 || c > 1 {
		return &ValidationError{Reading: r, Reason: "confidence must be within [0,1]"}
	}
	return nil
}

func normalizeEmotion(r Reading) Signal {
	label, known := CanonicalEmotion(r.Category)
	return Signal{
		Kind:        r.Kind,
		Label:       label,
		SourceLabel: strings.TrimSpace(r.Category),
		Bucket:      EmotionBucket(label),
		Confidence:  r.Confidence,
		Valence:     BaseValence(label) * r.Confidence,
		Known:       known,
	}
}

func normalizeSentiment(r Reading) Signal {
	raw := strings.ToLower(strings.TrimSpace(r.Category))
	s := Signal{
		Kind:        r.Kind,
		Label:       string(BucketNeutral),
		SourceLabel: strings.TrimSpace(r.Category),
		Bucket:      BucketNeutral,
		Confidence:  r.Confidence,
	}
	bucket, ok := sentimentLabels[raw]
	if !ok {
		return s
	}
	s.Label, s.Bucket, s.Known = string(bucket), bucket, true
	switch bucket {
	case BucketPositive:
		s.Valence = r.Confidence
	case BucketNegative:
		s.Valence = -r.Confidence
	}
	return s
}

// sentimentLabels matches whole labels only, so "not positive" stays unknown.
var sentimentLabels = map[string]Bucket{
	"positive": BucketPositive,
	"negative": BucketNegative,
	"neutral":  BucketNeutral,
}

// normalizeStress reads the score from the confidence. A category naming a
// band wins; otherwise the band is derived from the score. A blank category
// is a score-only reading, not an unknown label.
func (n Normalizer) normalizeStress(r Reading) Signal {
	score := clamp(r.Confidence, 0, 1)
	level, known := ParseStressLevel(r.Category)
	if !known {
		level = n.Thresholds.LevelFor(score)
		known = strings.TrimSpace(r.Category) == ""
	}
	return Signal{
		Kind:        r.Kind,
		Label:       string(level),
		SourceLabel: strings.TrimSpace(r.Category),
		Bucket:      BucketNeutral,
		Confidence:  r.Confidence,
		StressScore: score,
		StressLevel: level,
		Known:       known,
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
