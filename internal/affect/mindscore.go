package affect

import (
	"fmt"
	"math"
)

// Category is the discrete MindScore band.
type Category string

const (
	CategoryCritical Category = "critical"
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryGood     Category = "good"
)

// CategoryFor bands a MindScore. Each band includes its lower bound.
func CategoryFor(value float64) Category {
	switch {
	case value >= 80:
		return CategoryGood
	case value >= 60:
		return CategoryModerate
	case value >= 40:
		return CategoryLow
	default:
		return CategoryCritical
	}
}

// Emoji returns the display emoji for the band.
func (c Category) Emoji() string {
	switch c {
	case CategoryGood:
		return "🟢"
	case CategoryModerate:
		return "🟡"
	case CategoryLow:
		return "🟠"
	default:
		return "🔴"
	}
}

// Label returns the display label for the band.
func (c Category) Label() string {
	switch c {
	case CategoryGood:
		return "Thriving"
	case CategoryModerate:
		return "Balanced"
	case CategoryLow:
		return "Struggling"
	default:
		return "Needs Attention"
	}
}

// Weights configures the MindScore blend and the combined-mood blend.
type Weights struct {
	// Pair is used when no sentiment is supplied.
	Pair struct {
		Emotion float64 `yaml:"emotion" json:"emotion"`
		Stress  float64 `yaml:"stress" json:"stress"`
	} `yaml:"pair" json:"pair"`
	// Triple is used when sentiment is supplied.
	Triple struct {
		Emotion   float64 `yaml:"emotion" json:"emotion"`
		Stress    float64 `yaml:"stress" json:"stress"`
		Sentiment float64 `yaml:"sentiment" json:"sentiment"`
	} `yaml:"triple" json:"triple"`
	// Mood blends emotion valence and sentiment polarity for alignment reports.
	Mood struct {
		Emotion   float64 `yaml:"emotion" json:"emotion"`
		Sentiment float64 `yaml:"sentiment" json:"sentiment"`
	} `yaml:"mood" json:"mood"`
}

// DefaultWeights returns 0.6/0.4, 0.5/0.3/0.2, and a 0.6/0.4 mood blend.
func DefaultWeights() Weights {
	var w Weights
	w.Pair.Emotion, w.Pair.Stress = 0.6, 0.4
	w.Triple.Emotion, w.Triple.Stress, w.Triple.Sentiment = 0.5, 0.3, 0.2
	w.Mood.Emotion, w.Mood.Sentiment = 0.6, 0.4
	return w
}

const weightTolerance = 1e-6

// Validate checks that every weight set is non-negative and sums to 1.
func (w Weights) Validate() error {
	sets := []struct {
		name   string
		values []float64
	}{
		{"pair", []float64{w.Pair.Emotion, w.Pair.Stress}},
		{"triple", []float64{w.Triple.Emotion, w.Triple.Stress, w.Triple.Sentiment}},
		{"mood", []float64{w.Mood.Emotion, w.Mood.Sentiment}},
	}
	for _, set := range sets {
		total := 0.0
		for _, v := range set.values {
			if v < 0 || math.IsNaN(v) {
				return fmt.Errorf("%s weights must be non-negative", set.name)
			}
			total += v
		}
		if math.Abs(total-1) > weightTolerance {
			return fmt.Errorf("%s weights must total 1, got %.3f", set.name, total)
		}
	}
	return nil
}

// MindScore is the unified 0-100 wellness metric.
type MindScore struct {
	Value     float64   `json:"value"`
	Category  Category  `json:"category"`
	Emoji     string    `json:"emoji"`
	Label     string    `json:"label"`
	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown explains how Value was assembled. Each contribution is its
// component score (0-100) times its weight; the contributions sum to Value
// before rounding.
type Breakdown struct {
	EmotionScore          float64  `json:"emotionScore"`
	StressScore           float64  `json:"stressScore"`
	SentimentScore        *float64 `json:"sentimentScore,omitempty"`
	EmotionWeight         float64  `json:"emotionWeight"`
	StressWeight          float64  `json:"stressWeight"`
	SentimentWeight       *float64 `json:"sentimentWeight,omitempty"`
	EmotionContribution   float64  `json:"emotionContribution"`
	StressContribution    float64  `json:"stressContribution"`
	SentimentContribution *float64 `json:"sentimentContribution,omitempty"`
}

// ComputeMindScore blends with DefaultWeights.
func ComputeMindScore(valence, stress float64, sentiment *float64) MindScore {
	return DefaultWeights().ComputeMindScore(valence, stress, sentiment)
}

// ComputeMindScore blends emotion valence [-1,1], stress [0,1] and an optional
// sentiment polarity [-1,1] into a 0-100 score. Inputs are clamped, so the
// result never leaves [0,100].
func (w Weights) ComputeMindScore(valence, stress float64, sentiment *float64) MindScore {
	emotionScore := polarityToScale(valence)
	stressScore := (1 - clamp(stress, 0, 1)) * 100

	var b Breakdown
	b.EmotionScore = round(emotionScore, 2)
	b.StressScore = round(stressScore, 2)

	var total float64
	if sentiment == nil {
		b.EmotionWeight, b.StressWeight = w.Pair.Emotion, w.Pair.Stress
		b.EmotionContribution = emotionScore * w.Pair.Emotion
		b.StressContribution = stressScore * w.Pair.Stress
		total = b.EmotionContribution + b.StressContribution
	} else {
		sentimentScore := polarityToScale(*sentiment)
		sentimentWeight := w.Triple.Sentiment
		sentimentContribution := sentimentScore * sentimentWeight
		b.EmotionWeight, b.StressWeight = w.Triple.Emotion, w.Triple.Stress
		b.EmotionContribution = emotionScore * w.Triple.Emotion
		b.StressContribution = stressScore * w.Triple.Stress
		total = b.EmotionContribution + b.StressContribution + sentimentContribution

		roundedScore := round(sentimentScore, 2)
		roundedContribution := round(sentimentContribution, 2)
		b.SentimentScore = &roundedScore
		b.SentimentWeight = &sentimentWeight
		b.SentimentContribution = &roundedContribution
	}
	b.EmotionContribution = round(b.EmotionContribution, 2)
	b.StressContribution = round(b.StressContribution, 2)

	value := round(clamp(total, 0, 100), 1)
	category := CategoryFor(value)
	return MindScore{
		Value:     value,
		Category:  category,
		Emoji:     category.Emoji(),
		Label:     category.Label(),
		Breakdown: b,
	}
}

// CombinedMood blends emotion valence and sentiment polarity, rounded to 3 decimals.
func (w Weights) CombinedMood(valence, polarity float64) float64 {
	return round(clamp(valence, -1, 1)*w.Mood.Emotion+clamp(polarity, -1, 1)*w.Mood.Sentiment, 3)
}

func polarityToScale(v float64) float64 {
	return (clamp(v, -1, 1) + 1) / 2 * 100
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
