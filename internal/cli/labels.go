package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindscore-backend/internal/affect"
)

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the recognized emotion labels and stress levels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Text emotions:")
			for _, e := range affect.TextEmotions() {
				fmt.Fprintf(out, "  %-9s valence %+.1f\n", e, affect.BaseValence(e))
			}
			fmt.Fprintln(out, "Facial emotions:")
			for _, f := range affect.FacialEmotions() {
				canonical, _ := affect.CanonicalEmotion(f)
				fmt.Fprintf(out, "  %-9s -> %s\n", f, canonical)
			}
			fmt.Fprintln(out, "Stress levels:")
			for _, l := range affect.StressLevels() {
				fmt.Fprintf(out, "  %-9s %s  %s\n", l.Level, l.Range, l.Description)
			}
		},
	}
}
