package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/dmtk/hmm"
)

// writeTrainReport prints the outcome of a training run as aligned text.
func writeTrainReport(w io.Writer, res hmm.TrainResult[string, string]) error {
	states := res.Model.States()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "termination:\t%s\n", res.Termination)
	fmt.Fprintf(tw, "iterations:\t%d\n", res.Iterations)
	fmt.Fprintf(tw, "path:\t%s\n", strings.Join(res.Path, " "))

	fmt.Fprintln(tw, "\ntransition\tfrom\tto\tp")
	for _, from := range states {
		for _, to := range states {
			p, ok := res.Model.Transition[hmm.Transition[string]{From: from, To: to}]
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "\t%s\t%s\t%.6f\n", from, to, p)
		}
	}

	fmt.Fprintln(tw, "\nemission\tstate\tsymbol\tp")
	for _, s := range states {
		row := res.Model.Emission[s]
		symbols := make([]string, 0, len(row))
		for e := range row {
			symbols = append(symbols, e)
		}
		sort.Strings(symbols)
		for _, e := range symbols {
			fmt.Fprintf(tw, "\t%s\t%s\t%.6f\n", s, e, row[e])
		}
	}

	return tw.Flush()
}
