package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"mindscore-backend/internal/analyses"
	"mindscore-backend/internal/bootstrap"
	"mindscore-backend/internal/shared/config"
)

func newTextCmd(opts *rootOptions) *cobra.Command {
	var (
		noSentiment   bool
		classifierURL string
	)
	cmd := &cobra.Command{
		Use:   "text [words...]",
		Short: "Classify free text and score it",
		Long: `Classify free text with the lexicon classifiers, or a model service when
--classifier-url is set, and print the resulting MindScore.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fopts, err := opts.feedbackOptions()
			if err != nil {
				return err
			}
			set, err := bootstrap.BuildClassifiers(config.Config{ClassifierURL: classifierURL, ClassifierTimeout: config.DefaultClassifierTimeout})
			if err != nil {
				return err
			}
			svc := analyses.NewService(set, fopts)
			req := analyses.TextRequest{
				Text:             strings.Join(args, " "),
				IncludeSentiment: !noSentiment,
			}
			if opts.seeded {
				seed := opts.seed
				req.Seed = &seed
			}
			result, err := svc.AnalyzeText(context.Background(), req)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printFeedback(cmd.OutOrStdout(), result.Feedback)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSentiment, "no-sentiment", false, "Skip the sentiment classifier")
	cmd.Flags().StringVar(&classifierURL, "classifier-url", "", "Model service base URL (default: lexicon classifiers)")
	return cmd
}
