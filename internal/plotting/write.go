package plotting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrUnsupportedFormat indicates a file extension no vg backend renders.
var ErrUnsupportedFormat = errors.New("plotting: unsupported format")

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// Default canvas size of SavePlot.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 3 * vg.Inch
)

// WritePlot renders p in format ("png", "svg", "pdf", ...) to output.
func WritePlot(p *plot.Plot, width, height vg.Length, output io.Writer, format string) error {
	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = w.WriteTo(output)

	return err
}

func combineErrors(errs ...error) (err error) {
	for _, e := range errs {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}

	return err
}

// WriteClosePlot is WritePlot followed by output.Close; both errors are kept.
func WriteClosePlot(p *plot.Plot, width, height vg.Length, output io.WriteCloser, format string) (err error) {
	defer func() {
		err = combineErrors(err, output.Close())
	}()

	return WritePlot(p, width, height, output, format)
}

// SavePlot writes p to path at the default size. The format follows the
// file extension.
func SavePlot(p *plot.Plot, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	return WriteClosePlot(p, DefaultWidth, DefaultHeight, output, format)
}
