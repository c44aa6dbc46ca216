package affect

import "strings"

// Canonical text-emotion labels.
const (
	EmotionJoy      = "joy"
	EmotionSurprise = "surprise"
	EmotionLove     = "love"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionDisgust  = "disgust"
	EmotionNeutral  = "neutral"
)

type emotionEntry struct {
	valence float64
	bucket  Bucket
}

var emotionTable = map[string]emotionEntry{
	EmotionJoy:      {valence: 0.8, bucket: BucketPositive},
	EmotionSurprise: {valence: 0.5, bucket: BucketPositive},
	EmotionLove:     {valence: 0.7, bucket: BucketPositive},
	EmotionSadness:  {valence: -0.7, bucket: BucketNegative},
	EmotionAnger:    {valence: -0.6, bucket: BucketNegative},
	EmotionFear:     {valence: -0.6, bucket: BucketNegative},
	EmotionDisgust:  {valence: -0.5, bucket: BucketNegative},
	EmotionNeutral:  {valence: 0, bucket: BucketNeutral},
}

// facialVocabulary bridges the facial classifier's labels onto the text vocabulary.
var facialVocabulary = map[string]string{
	"Happy":    EmotionJoy,
	"Sad":      EmotionSadness,
	"Angry":    EmotionAnger,
	"Fear":     EmotionFear,
	"Surprise": EmotionSurprise,
	"Disgust":  EmotionDisgust,
	"Neutral":  EmotionNeutral,
}

// TextEmotions lists the text classifier vocabulary in display order.
func TextEmotions() []string {
	return []string{EmotionJoy, EmotionSadness, EmotionAnger, EmotionFear, EmotionSurprise, EmotionLove, EmotionDisgust, EmotionNeutral}
}

// FacialEmotions lists the facial classifier vocabulary in display order.
func FacialEmotions() []string {
	return []string{"Happy", "Sad", "Angry", "Fear", "Surprise", "Disgust", "Neutral"}
}

// BaseValence returns the table valence for a canonical emotion, 0 when unknown.
func BaseValence(emotion string) float64 {
	return emotionTable[emotion].valence
}

// CanonicalEmotion maps a raw label from either vocabulary to the text vocabulary.
// The second result is false when the label was not recognized and "neutral" was substituted.
func CanonicalEmotion(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if mapped, ok := facialVocabulary[trimmed]; ok {
		return mapped, true
	}
	lower := strings.ToLower(trimmed)
	if _, ok := emotionTable[lower]; ok {
		return lower, true
	}
	for facial, mapped := range facialVocabulary {
		if strings.EqualFold(facial, lower) {
			return mapped, true
		}
	}
	return EmotionNeutral, false
}

// EmotionBucket returns the canonical bucket for a text-vocabulary emotion.
func EmotionBucket(emotion string) Bucket {
	if entry, ok := emotionTable[emotion]; ok {
		return entry.bucket
	}
	return BucketNeutral
}

// StressLevel is the discrete stress band used by the rule tables.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressOptimal  StressLevel = "optimal"
)

// ParseStressLevel accepts low, moderate, high, and optimal (case-insensitive).
func ParseStressLevel(raw string) (StressLevel, bool) {
	switch StressLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case StressLow:
		return StressLow, true
	case StressModerate, "medium":
		return StressModerate, true
	case StressHigh:
		return StressHigh, true
	case StressOptimal:
		return StressOptimal, true
	default:
		return "", false
	}
}

// StressThresholds are the inclusive upper bounds of the low and moderate bands.
type StressThresholds struct {
	Low      float64 `yaml:"low" json:"low"`
	Moderate float64 `yaml:"moderate" json:"moderate"`
}

// DefaultStressThresholds matches the published stress level ranges.
func DefaultStressThresholds() StressThresholds {
	return StressThresholds{Low: 0.33, Moderate: 0.66}
}

// LevelFor bands a stress score.
func (t StressThresholds) LevelFor(score float64) StressLevel {
	switch {
	case score <= t.Low:
		return StressLow
	case score <= t.Moderate:
		return StressModerate
	default:
		return StressHigh
	}
}

// StressLevelInfo describes a stress band for display.
type StressLevelInfo struct {
	Level       StressLevel `json:"level"`
	Range       string      `json:"range"`
	Description string      `json:"description"`
}

// StressLevels describes the three scored bands.
func StressLevels() []StressLevelInfo {
	return []StressLevelInfo{
		{Level: StressLow, Range: "0.0 - 0.33", Description: "Calm and relaxed state"},
		{Level: StressModerate, Range: "0.34 - 0.66", Description: "Some stress indicators present"},
		{Level: StressHigh, Range: "0.67 - 1.0", Description: "Significant stress markers detected"},
	}
}
