package recommend

import "mindscore-backend/internal/affect"

// Content difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
)

// softenIntensity is the emotion intensity at which medium content is swapped
// for easy content.
const softenIntensity = 0.8

// ContentItem is one lesson or quiz offered by the adaptive catalog.
type ContentItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// Suggestion is one short wellness exercise.
type Suggestion struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

var contentByEmotion = map[string][]ContentItem{
	affect.EmotionJoy: {
		{ID: "r1", Type: "lesson", Title: "Level up: Positive reinforcement", Description: "Short lesson on leveraging positive emotions", Difficulty: DifficultyEasy},
		{ID: "r2", Type: "quiz", Title: "Quick quiz: Confidence booster", Description: "5-question quiz", Difficulty: DifficultyEasy},
	},
	affect.EmotionSadness: {
		{ID: "r3", Type: "lesson", Title: "Growth mindset tips", Description: "Gentle lesson focusing on progress", Difficulty: DifficultyEasy},
		{ID: "r4", Type: "quiz", Title: "Reflection quiz", Description: "Self-reflection prompts", Difficulty: DifficultyEasy},
	},
	affect.EmotionAnger: {
		{ID: "r5", Type: "lesson", Title: "Managing frustration", Description: "Coping strategies lesson", Difficulty: DifficultyMedium},
	},
	affect.EmotionNeutral: {
		{ID: "r6", Type: "lesson", Title: "Adaptive practice", Description: "Balanced practice session", Difficulty: DifficultyMedium},
	},
}

var suggestionsByEmotion = map[string][]Suggestion{
	affect.EmotionSadness: {
		{ID: "w1", Title: "2-min breathing", Description: "Short deep breathing exercise", DurationMinutes: 2},
		{ID: "w2", Title: "Gratitude journal", Description: "Write 3 things you're grateful for", DurationMinutes: 5},
	},
	affect.EmotionAnger: {
		{ID: "w3", Title: "Boxing breathing", Description: "4-4-4-4 breathing exercise", DurationMinutes: 3},
		{ID: "w4", Title: "Progressive muscle relax", Description: "Tense and release muscle groups", DurationMinutes: 8},
	},
	affect.EmotionJoy: {
		{ID: "w5", Title: "Mindful savoring", Description: "Notice pleasant details around you", DurationMinutes: 3},
	},
	affect.EmotionNeutral: {
		{ID: "w6", Title: "5-min stretch", Description: "Light full-body stretching", DurationMinutes: 5},
	},
}

// AdaptiveContent returns the lessons and quizzes for emotion, which may come
// from either vocabulary. Emotions without a catalog entry get the neutral
// items. At intensity 0.8 and above, medium items are offered as easy.
func AdaptiveContent(emotion string, intensity float64) []ContentItem {
	canonical, _ := affect.CanonicalEmotion(emotion)
	items, ok := contentByEmotion[canonical]
	if !ok {
		items = contentByEmotion[affect.EmotionNeutral]
	}
	out := make([]ContentItem, len(items))
	copy(out, items)
	if intensity >= softenIntensity {
		for i := range out {
			if out[i].Difficulty == DifficultyMedium {
				out[i].Difficulty = DifficultyEasy
			}
		}
	}
	return out
}

// WellnessSuggestions returns the exercises for emotion, falling back to the
// neutral set.
func WellnessSuggestions(emotion string) []Suggestion {
	canonical, _ := affect.CanonicalEmotion(emotion)
	items, ok := suggestionsByEmotion[canonical]
	if !ok {
		items = suggestionsByEmotion[affect.EmotionNeutral]
	}
	return append([]Suggestion(nil), items...)
}
