package cli

import (
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dmtk/hmm"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var (
		in            inputFlags
		maxIterations int
		normalizer    string
		progress      bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit model tables to an observation sequence by Viterbi training",
		Args:  cobra.NoArgs,
		Example: `  dmtk train -m casino.yaml -o rolls.csv
  dmtk train -m casino.yaml -o rolls.csv --max-iterations 20 --normalizer occupancy --progress`,
		RunE: func(cmd *cobra.Command, args []string) error {
			norm, err := hmm.ParseNormalizer(normalizer)
			if err != nil {
				return err
			}
			m, obs, err := in.load()
			if err != nil {
				return err
			}

			opts := []hmm.Option{
				hmm.WithContext(cmd.Context()),
				hmm.WithMaxIterations(maxIterations),
				hmm.WithNormalizer(norm),
			}
			var bar *progressbar.ProgressBar
			if progress && !c.silent {
				bar = progressbar.NewOptions(maxIterations,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("training"),
				)
			}
			opts = append(opts, hmm.WithOnIteration(func(r hmm.IterationReport) error {
				slog.Debug("Iteration", "n", r.Iteration, "changed", r.Changed, "log2p", r.LogProbability)
				if bar != nil {
					return bar.Add(1)
				}

				return nil
			}))

			slog.Info("Training", "length", len(obs), "max-iterations", maxIterations, "normalizer", norm)
			start := time.Now()
			res, err := hmm.Train(obs, m, opts...)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start), "termination", res.Termination)

			return writeTrainReport(cmd.OutOrStdout(), res)
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&maxIterations, "max-iterations", hmm.DefaultMaxIterations, "Upper bound on training iterations")
	cmd.Flags().StringVar(&normalizer, "normalizer", "incoming", "Emission denominator: incoming or occupancy")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")

	return cmd
}
