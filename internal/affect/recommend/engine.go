package recommend

import (
	"math/rand/v2"

	"mindscore-backend/internal/affect"
)

const (
	strategyCount      = 3
	maxWellnessActions = 6
)

// Select builds a Bundle for the given state.
//
// The rule match is deterministic: the curated (emotion, stress) table first,
// then the stress-only table, then the moderate stress entry. Only the choice
// among candidates inside the matched pools uses rng; a nil rng falls back to
// the process-wide source.
func Select(in Input, rng Rand) Bundle {
	if rng == nil {
		rng = globalRand{}
	}
	emotion, _ := affect.CanonicalEmotion(in.Emotion)
	responses, ok := responsesByEmotion[emotion]
	if !ok {
		responses = responsesByEmotion[affect.EmotionNeutral]
	}
	matched := matchRule(emotion, in.StressLevel)

	return Bundle{
		Rule:              matched.name,
		Acknowledgment:    pick(responses.acknowledgments, rng),
		LearningTip:       pick(responses.learningTips, rng),
		SuggestedActivity: pick(responses.activities, rng),
		Strategies:        sample(matched.strategies, strategyCount, rng),
		StudyPlan:         matched.studyPlan,
		LearningMode:      LearningMode(emotion, in.StressLevel),
		WellnessActions:   WellnessActions(in.MindScore, emotion),
		MotivationalQuote: pick(motivationalQuotes, rng),
		ConfidenceNote:    ConfidenceNote(in.Confidence),
		Encouragement:     Encouragement(in.MindScore),
	}
}

func matchRule(emotion string, stress affect.StressLevel) rule {
	if r, ok := comboRules[comboKey{emotion: emotion, stress: stress}]; ok {
		return r
	}
	if r, ok := stressRules[stress]; ok {
		return r
	}
	return stressRules[affect.StressModerate]
}

// WellnessActions returns the score-tier actions followed by any
// emotion-specific actions, truncated to six.
func WellnessActions(mindScore float64, emotion string) []string {
	tier := wellnessByCategory[affect.CategoryFor(mindScore)]
	out := make([]string, 0, len(tier)+2)
	out = append(out, tier...)
	out = append(out, wellnessByEmotion[emotion]...)
	if len(out) > maxWellnessActions {
		out = out[:maxWellnessActions]
	}
	return out
}

// ConfidenceNote phrases how sure the emotion reading is.
func ConfidenceNote(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "I'm very confident about this assessment."
	case confidence >= 0.6:
		return "This assessment seems reliable."
	case confidence >= 0.4:
		return "This is my best estimate - let me know if it feels off."
	default:
		return "I'm somewhat uncertain - please provide more context if needed."
	}
}

// Encouragement returns a closing message for the MindScore band.
func Encouragement(mindScore float64) string {
	switch {
	case mindScore >= 80:
		return "You're doing amazingly well! Keep up this fantastic momentum! 🌟"
	case mindScore >= 60:
		return "You're on a good path! Stay consistent and you'll see great results! 💪"
	case mindScore >= 40:
		return "You're making progress! Every step forward counts! 🌱"
	default:
		return "Be gentle with yourself. Tomorrow is a new opportunity! 💙"
	}
}

// LearningMode recommends a study intensity from emotion energy and stress.
func LearningMode(emotion string, stress affect.StressLevel) string {
	switch {
	case highEnergyEmotions[emotion] && stress == affect.StressLow:
		return learningModeIntensive
	case lowEnergyEmotions[emotion] || stress == affect.StressHigh:
		return learningModeGentle
	case stress == affect.StressModerate:
		return learningModeBalanced
	default:
		return learningModeStandard
	}
}

func pick(pool []string, rng Rand) string {
	return pool[rng.IntN(len(pool))]
}

// sample draws n distinct items uniformly without mutating pool.
func sample(pool []string, n int, rng Rand) []string {
	if n > len(pool) {
		n = len(pool)
	}
	work := append([]string(nil), pool...)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n]
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
