package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dmtk/hmm"
)

func (c *CLI) newLikelihoodCommand() *cobra.Command {
	var (
		in       inputFlags
		pathFile string
		scale    string
	)

	cmd := &cobra.Command{
		Use:   "likelihood",
		Short: "Joint probability of a state path and an observation sequence",
		Args:  cobra.NoArgs,
		Example: `  dmtk likelihood -m casino.yaml -o rolls.csv --path dice.csv
  dmtk likelihood -m casino.yaml -o rolls.csv --path dice.csv --scale log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := hmm.ParseScale(scale)
			if err != nil {
				return err
			}
			m, obs, err := in.load()
			if err != nil {
				return err
			}
			path, err := in.readSequence(pathFile)
			if err != nil {
				return err
			}

			slog.Info("Evaluating likelihood", "length", len(obs), "scale", sc)
			p, err := hmm.LikelihoodOf(path, obs, m, hmm.WithScale(sc))
			if err != nil {
				return err
			}
			if sc == hmm.Logarithmic {
				fmt.Fprintf(cmd.OutOrStdout(), "log2 likelihood: %.6f\n", p)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "likelihood: %.6e\n", p)
			}

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&pathFile, "path", "", "State path (CSV/TSV, one per row)")
	cmd.Flags().StringVar(&scale, "scale", "linear", "Probability scale: linear or log")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
