package affect

import "fmt"

// AlignmentResult reports whether two affect readings agree.
type AlignmentResult struct {
	Aligned        bool     `json:"aligned"`
	Status         string   `json:"status"`
	Interpretation string   `json:"interpretation"`
	Pair           string   `json:"pair"`
	OverallMood    *float64 `json:"overallMood,omitempty"`
}

const (
	pairEmotion   = "emotion/emotion"
	pairSentiment = "emotion/sentiment"
)

// DetectAlignment compares with DefaultWeights.
func DetectAlignment(a, b Signal) (AlignmentResult, error) {
	return DefaultWeights().DetectAlignment(a, b)
}

// DetectAlignment compares two emotion signals, or one emotion and one
// sentiment signal, by canonical bucket rather than by label text. Any other
// pairing is an IncompatibleSignalError.
func (w Weights) DetectAlignment(a, b Signal) (AlignmentResult, error) {
	switch {
	case a.Kind.IsEmotion() && b.Kind.IsEmotion():
		return emotionAlignment(a, b), nil
	case a.Kind.IsEmotion() && b.Kind == KindSentiment:
		return w.sentimentAlignment(a, b), nil
	case a.Kind == KindSentiment && b.Kind.IsEmotion():
		return w.sentimentAlignment(b, a), nil
	default:
		return AlignmentResult{}, &IncompatibleSignalError{A: a.Kind, B: b.Kind}
	}
}

func emotionAlignment(a, b Signal) AlignmentResult {
	// Present the facial reading first when there is one.
	if b.Kind == KindFacialEmotion && a.Kind != KindFacialEmotion {
		a, b = b, a
	}
	aligned := a.Bucket == b.Bucket
	res := AlignmentResult{Aligned: aligned, Status: alignmentStatus(aligned), Pair: pairEmotion}
	if a.Kind == KindFacialEmotion && b.Kind == KindTextEmotion {
		verb := "suggests complexity in"
		if aligned {
			verb = "confirms"
		}
		res.Interpretation = fmt.Sprintf("Facial expression shows %s while text conveys %s. This %s your emotional state.",
			displayLabel(a), displayLabel(b), verb)
		return res
	}
	if aligned {
		res.Interpretation = fmt.Sprintf("Both readings, %s and %s, point to the same %s state.", displayLabel(a), displayLabel(b), a.Bucket)
	} else {
		res.Interpretation = fmt.Sprintf("The readings disagree: %s reads as %s while %s reads as %s.",
			displayLabel(a), a.Bucket, displayLabel(b), b.Bucket)
	}
	return res
}

func (w Weights) sentimentAlignment(emotion, sentiment Signal) AlignmentResult {
	aligned := emotion.Bucket == sentiment.Bucket
	mood := w.CombinedMood(emotion.Valence, sentiment.Valence)
	res := AlignmentResult{
		Aligned:     aligned,
		Status:      alignmentStatus(aligned),
		Pair:        pairSentiment,
		OverallMood: &mood,
	}
	if aligned {
		res.Interpretation = fmt.Sprintf("Your %s emotion aligns with %s sentiment, indicating a clear emotional state.",
			emotion.Label, sentiment.Label)
	} else {
		res.Interpretation = fmt.Sprintf("There's a complexity in your emotional state - feeling %s with %s undertones.",
			emotion.Label, sentiment.Label)
	}
	return res
}

func alignmentStatus(aligned bool) string {
	if aligned {
		return "aligned"
	}
	return "misaligned"
}

func displayLabel(s Signal) string {
	if s.SourceLabel != "" {
		return s.SourceLabel
	}
	return s.Label
}
