package classifier

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"mindscore-backend/internal/affect"
)

// Lexicon is a keyword rule engine. It is deterministic and dependency free,
// which makes it the default when no model service is configured.
type Lexicon struct {
	kind affect.Kind
}

// NewLexiconSet returns lexicon classifiers for every text kind.
func NewLexiconSet() Set {
	return Set{
		TextEmotion: Lexicon{kind: affect.KindTextEmotion},
		Stress:      Lexicon{kind: affect.KindStress},
		Sentiment:   Lexicon{kind: affect.KindSentiment},
	}
}

// NewLexicon returns a lexicon classifier for kind.
func NewLexicon(kind affect.Kind) Lexicon {
	return Lexicon{kind: kind}
}

var emotionKeywords = map[string][]string{
	affect.EmotionJoy:      {"happy", "glad", "great", "excited", "joy", "awesome", "proud", "fun", "wonderful", "delighted"},
	affect.EmotionSadness:  {"sad", "down", "lonely", "unhappy", "depressed", "miserable", "cry", "hopeless", "tired", "empty"},
	affect.EmotionAnger:    {"angry", "furious", "annoyed", "mad", "frustrated", "irritated", "hate", "unfair"},
	affect.EmotionFear:     {"afraid", "scared", "anxious", "worried", "nervous", "panic", "terrified", "fear"},
	affect.EmotionSurprise: {"surprised", "unexpected", "shocked", "wow", "amazed", "suddenly"},
	affect.EmotionLove:     {"love", "adore", "grateful", "caring", "affection", "cherish"},
	affect.EmotionDisgust:  {"disgusted", "gross", "awful", "nasty", "revolting", "sick"},
}

var stressKeywords = []string{
	"deadline", "deadlines", "exam", "exams", "pressure", "overwhelmed", "stressed", "stress",
	"behind", "too", "much", "can't", "cannot", "worried", "anxious", "panic", "late", "fail", "failing",
}

var calmKeywords = []string{"calm", "relaxed", "rested", "easy", "peaceful", "fine", "chill", "ready"}

var (
	positiveKeywords = []string{"good", "great", "happy", "love", "excellent", "glad", "nice", "enjoy", "proud", "awesome", "wonderful", "thanks"}
	negativeKeywords = []string{"bad", "terrible", "sad", "hate", "awful", "angry", "worried", "fail", "failing", "horrible", "worst", "scared"}
)

// Classify scores input.Text by keyword hits.
func (l Lexicon) Classify(ctx context.Context, input Input) (affect.Reading, error) {
	if err := ctx.Err(); err != nil {
		return affect.Reading{}, err
	}
	if strings.TrimSpace(input.Text) == "" {
		return affect.Reading{}, ErrEmptyInput
	}
	words := tokenize(input.Text)
	switch l.kind {
	case affect.KindStress:
		return classifyStress(words), nil
	case affect.KindSentiment:
		return classifySentiment(words), nil
	default:
		return classifyEmotion(words), nil
	}
}

func classifyEmotion(words map[string]int) affect.Reading {
	labels := make([]string, 0, len(emotionKeywords))
	for label := range emotionKeywords {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best, bestHits, total := affect.EmotionNeutral, 0, 0
	for _, label := range labels {
		hits := countHits(words, emotionKeywords[label])
		total += hits
		if hits > bestHits {
			best, bestHits = label, hits
		}
	}
	if bestHits == 0 {
		return affect.Reading{Kind: affect.KindTextEmotion, Category: affect.EmotionNeutral, Confidence: 0.5}
	}
	share := float64(bestHits) / float64(total)
	return affect.Reading{Kind: affect.KindTextEmotion, Category: best, Confidence: round3(0.4 + 0.55*share)}
}

func classifyStress(words map[string]int) affect.Reading {
	stress := countHits(words, stressKeywords)
	calm := countHits(words, calmKeywords)
	score := 0.3 + 0.12*float64(stress) - 0.1*float64(calm)
	score = math.Max(0, math.Min(1, score))
	return affect.Reading{Kind: affect.KindStress, Confidence: round3(score)}
}

func classifySentiment(words map[string]int) affect.Reading {
	pos := countHits(words, positiveKeywords)
	neg := countHits(words, negativeKeywords)
	switch {
	case pos > neg:
		return affect.Reading{Kind: affect.KindSentiment, Category: "positive", Confidence: round3(0.5 + 0.5*float64(pos-neg)/float64(pos+neg))}
	case neg > pos:
		return affect.Reading{Kind: affect.KindSentiment, Category: "negative", Confidence: round3(0.5 + 0.5*float64(neg-pos)/float64(pos+neg))}
	default:
		return affect.Reading{Kind: affect.KindSentiment, Category: "neutral", Confidence: 0.5}
	}
}

func tokenize(text string) map[string]int {
	out := make(map[string]int)
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, f := range fields {
		if w := strings.Trim(f, "'"); w != "" {
			out[w]++
		}
	}
	return out
}

func countHits(words map[string]int, keywords []string) int {
	hits := 0
	for _, k := range keywords {
		hits += words[k]
	}
	return hits
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
