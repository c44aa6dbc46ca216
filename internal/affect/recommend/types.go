package recommend

import "mindscore-backend/internal/affect"

// Input captures what the selector needs from the fused readings.
type Input struct {
	Emotion     string
	Confidence  float64
	StressLevel affect.StressLevel
	MindScore   float64
}

// Rand is the random source used to pick among equally valid candidates.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// StudyPlan is the session shape recommended for the current state.
type StudyPlan struct {
	Duration       string `json:"duration"`
	Approach       string `json:"approach"`
	Breaks         string `json:"breaks"`
	Recommendation string `json:"recommendation"`
}

// Bundle is the full set of human-facing guidance. Every field is populated.
type Bundle struct {
	Rule              string    `json:"rule"`
	Acknowledgment    string    `json:"acknowledgment"`
	LearningTip       string    `json:"learningTip"`
	SuggestedActivity string    `json:"suggestedActivity"`
	Strategies        []string  `json:"strategies"`
	StudyPlan         StudyPlan `json:"studyPlan"`
	LearningMode      string    `json:"learningMode"`
	WellnessActions   []string  `json:"wellnessActions"`
	MotivationalQuote string    `json:"motivationalQuote"`
	ConfidenceNote    string    `json:"confidenceNote"`
	Encouragement     string    `json:"encouragement"`
}

type emotionResponses struct {
	acknowledgments []string
	learningTips    []string
	activities      []string
}

// rule is one entry of either the combination table or the stress-only table.
type rule struct {
	name       string
	studyPlan  StudyPlan
	strategies []string
}

type comboKey struct {
	emotion string
	stress  affect.StressLevel
}
