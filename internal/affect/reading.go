package affect

import "strings"

// Kind tags which classifier produced a reading.
type Kind string

const (
	KindTextEmotion   Kind = "text_emotion"
	KindFacialEmotion Kind = "facial_emotion"
	KindStress        Kind = "stress"
	KindSentiment     Kind = "sentiment"
)

// ParseKind accepts the canonical kind names plus a few short aliases.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text_emotion", "text-emotion", "emotion", "text":
		return KindTextEmotion, true
	case "facial_emotion", "facial-emotion", "facial", "face", "image":
		return KindFacialEmotion, true
	case "stress":
		return KindStress, true
	case "sentiment":
		return KindSentiment, true
	default:
		return "", false
	}
}

// IsEmotion reports whether k carries an emotion label.
func (k Kind) IsEmotion() bool {
	return k == KindTextEmotion || k == KindFacialEmotion
}

// Reading is a single classifier output.
type Reading struct {
	Kind       Kind    `json:"kind"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Bucket is the coarse affect group used to compare readings across vocabularies.
type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketNegative Bucket = "negative"
	BucketNeutral  Bucket = "neutral"
)

// Signal is a normalized reading.
//
// Emotion signals carry Valence in [-1,1], sentiment signals carry it as the
// polarity, and stress signals carry StressScore in [0,1] with a StressLevel.
type Signal struct {
	Kind        Kind        `json:"kind"`
	Label       string      `json:"label"`
	SourceLabel string      `json:"sourceLabel"`
	Bucket      Bucket      `json:"bucket"`
	Confidence  float64     `json:"confidence"`
	Valence     float64     `json:"valence"`
	StressScore float64     `json:"stressScore"`
	StressLevel StressLevel `json:"stressLevel,omitempty"`
	Known       bool        `json:"known"`
}
