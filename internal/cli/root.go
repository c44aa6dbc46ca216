package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"mindscore-backend/internal/affect/recommend"
	"mindscore-backend/internal/feedback"
	"mindscore-backend/internal/shared/config"
	"mindscore-backend/internal/shared/telemetry"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
	seed       uint64
	seeded     bool
	asJSON     bool
}

// NewRootCmd builds the mindscore command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "mindscore",
		Short: "Score emotion and stress readings offline",
		Long: `mindscore fuses emotion, stress and sentiment readings into a 0-100 MindScore,
checks whether the modalities agree, and prints study and wellness recommendations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.seeded = cmd.Flags().Changed("seed")
			// Results go to stdout, logs to stderr.
			telemetry.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML scoring file overriding weights and stress thresholds")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible recommendations")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print the full result as JSON")

	root.AddCommand(newScoreCmd(opts), newTextCmd(opts), newLabelsCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) feedbackOptions() (feedback.Options, error) {
	if o.configPath == "" {
		return feedback.DefaultOptions(), nil
	}
	scoring, err := config.LoadScoring(o.configPath)
	if err != nil {
		return feedback.Options{}, err
	}
	return scoring.FeedbackOptions(), nil
}

func (o *rootOptions) rng() recommend.Rand {
	if !o.seeded {
		return nil
	}
	return rand.New(rand.NewPCG(o.seed, o.seed^0x5851f42d4c957f2d))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mindscore version %s\n", Version)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build date: %s\n", BuildDate)
		},
	}
}
