package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/feedback"
)

type scoreFlags struct {
	emotion   string
	facial    string
	stress    string
	sentiment string
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	flags := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score classifier readings given as label:confidence pairs",
		Long: `Score classifier readings given as label:confidence pairs, for example

  mindscore score --emotion sadness:0.9 --stress high:0.85
  mindscore score --facial Happy:0.7 --stress 0.4 --sentiment positive:0.8

A stress value without a label is a score; its level is derived from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			readings, err := flags.readings()
			if err != nil {
				return err
			}
			fopts, err := opts.feedbackOptions()
			if err != nil {
				return err
			}
			fb, err := feedback.Compose(readings, fopts, opts.rng())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), fb)
			}
			printFeedback(cmd.OutOrStdout(), fb)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.emotion, "emotion", "e", "", "Text emotion reading, label:confidence")
	cmd.Flags().StringVarP(&flags.facial, "facial", "f", "", "Facial emotion reading, label:confidence")
	cmd.Flags().StringVarP(&flags.stress, "stress", "s", "", "Stress reading, level:score or score")
	cmd.Flags().StringVar(&flags.sentiment, "sentiment", "", "Sentiment reading, polarity:confidence")
	return cmd
}

func (f *scoreFlags) readings() ([]affect.Reading, error) {
	var out []affect.Reading
	for _, item := range []struct {
		kind affect.Kind
		raw  string
	}{
		{affect.KindTextEmotion, f.emotion},
		{affect.KindFacialEmotion, f.facial},
		{affect.KindStress, f.stress},
		{affect.KindSentiment, f.sentiment},
	} {
		if strings.TrimSpace(item.raw) == "" {
			continue
		}
		r, err := parseReading(item.kind, item.raw)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// parseReading accepts "label:confidence", or a bare confidence.
func parseReading(kind affect.Kind, raw string) (affect.Reading, error) {
	label, value := "", strings.TrimSpace(raw)
	if i := strings.LastIndex(value, ":"); i >= 0 {
		label, value = strings.TrimSpace(value[:i]), strings.TrimSpace(value[i+1:])
	}
	confidence, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return affect.Reading{}, fmt.Errorf("%s reading %q: confidence must be a number", kind, raw)
	}
	return affect.Reading{Kind: kind, Category: label, Confidence: confidence}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printFeedback(w io.Writer, fb feedback.Feedback) {
	ms := fb.MindScore
	fmt.Fprintf(w, "MindScore: %.1f %s %s (%s)\n", ms.Value, ms.Emoji, ms.Label, ms.Category)
	fmt.Fprintf(w, "  emotion %s (%.2f), stress %s (%.2f)\n", fb.Emotion.Label, fb.Emotion.Confidence, fb.Stress.StressLevel, fb.Stress.StressScore)
	if fb.Alignment != nil {
		fmt.Fprintf(w, "Alignment: %s\n  %s\n", fb.Alignment.Status, fb.Alignment.Interpretation)
	}
	rec := fb.Recommendations
	fmt.Fprintf(w, "\n%s\n", rec.Acknowledgment)
	fmt.Fprintf(w, "Study plan (%s): %s, %s\n", rec.Rule, rec.StudyPlan.Duration, rec.StudyPlan.Approach)
	fmt.Fprintf(w, "Learning mode: %s\n", rec.LearningMode)
	fmt.Fprintln(w, "Strategies:")
	for _, s := range rec.Strategies {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintln(w, "Wellness:")
	for _, a := range rec.WellnessActions {
		fmt.Fprintf(w, "  - %s\n", a)
	}
	fmt.Fprintf(w, "\n%s\n%s\n", rec.Encouragement, rec.MotivationalQuote)
	for _, warn := range fb.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}
