package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dmtk/dataset"
	"github.com/katalvlaran/dmtk/hmm"
	"github.com/katalvlaran/dmtk/internal/modelfile"
)

// inputFlags are shared by every command that reads a model and a sequence.
type inputFlags struct {
	model        string
	observations string
	header       bool
	column       int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Model definition (YAML)")
	cmd.Flags().StringVarP(&f.observations, "observations", "o", "", "Observation sequence (CSV/TSV, one per row)")
	cmd.Flags().BoolVar(&f.header, "header", false, "Skip the first row of data files")
	cmd.Flags().IntVar(&f.column, "column", 0, "Column of data files holding the sequence")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("observations")
}

func (f *inputFlags) readSequence(path string) ([]string, error) {
	return dataset.Load(path, dataset.WithHeader(f.header), dataset.WithColumn(f.column))
}

func (f *inputFlags) load() (hmm.Model[string, string], []string, error) {
	m, err := modelfile.Load(f.model)
	if err != nil {
		return m, nil, err
	}
	slog.Debug("Loaded model", "path", f.model, "states", len(m.Emission), "transitions", len(m.Transition))

	obs, err := f.readSequence(f.observations)
	if err != nil {
		return m, nil, err
	}
	slog.Debug("Loaded observations", "path", f.observations, "length", len(obs))

	return m, obs, nil
}
