package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dmtk/hmm"
	"github.com/katalvlaran/dmtk/internal/plotting"
)

func (c *CLI) newDecodeCommand() *cobra.Command {
	var (
		in       inputFlags
		plotFile string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Most probable state path for an observation sequence (Viterbi)",
		Args:  cobra.NoArgs,
		Example: `  dmtk decode -m casino.yaml -o rolls.csv
  dmtk decode -m casino.yaml -o rolls.csv --plot path.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, obs, err := in.load()
			if err != nil {
				return err
			}

			slog.Info("Decoding", "length", len(obs))
			start := time.Now()
			dec, err := hmm.Viterbi(obs, m)
			if err != nil {
				return err
			}
			slog.Debug("Decoding completed", "duration", time.Since(start))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(dec.Path, " "))
			fmt.Fprintf(out, "log2 probability: %.6f\n", dec.LogProbability)

			if plotFile == "" {
				return nil
			}
			p, err := plotting.DecodedPath(filepath.Base(in.observations), dec.Path, m.States())
			if err != nil {
				return err
			}
			if err := plotting.SavePlot(p, plotFile); err != nil {
				return err
			}
			slog.Info("Plot saved", "path", plotFile)

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&plotFile, "plot", "", "Write a timeline of the decoded path (png, svg, pdf, ...)")

	return cmd
}
