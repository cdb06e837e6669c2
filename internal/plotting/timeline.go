// Package plotting renders decoded state paths as timelines.
package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrEmptyPath indicates a timeline request without any decoded step.
	ErrEmptyPath = errors.New("plotting: empty path")

	// ErrUnknownState indicates a path entry missing from the state rows.
	ErrUnknownState = errors.New("plotting: unknown state")
)

// Run is a maximal stretch of consecutive steps spent in one state,
// covering the half-open step interval [Start, End).
type Run struct {
	State string
	Start int
	End   int
}

// Runs collapses a path into its runs.
func Runs(path []string) []Run {
	var out []Run
	for i, s := range path {
		if n := len(out); n > 0 && out[n-1].State == s {
			out[n-1].End = i + 1

			continue
		}
		out = append(out, Run{State: s, Start: i, End: i + 1})
	}

	return out
}

// Timeline draws each run as a filled box on the row of its state.
type Timeline struct {
	Runs      []Run
	Rows      map[string]int
	Steps     int
	Height    vg.Length
	BoxStyle  draw.LineStyle
	TextStyle draw.TextStyle
}

var (
	_ plot.Plotter    = &Timeline{}
	_ plot.DataRanger = &Timeline{}
)

// NewTimeline lays path out on one row per entry of states.
func NewTimeline(path, states []string) (*Timeline, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	rows := make(map[string]int, len(states))
	for i, s := range states {
		rows[s] = i
	}
	for i, s := range path {
		if _, ok := rows[s]; !ok {
			return nil, fmt.Errorf("%w: %q at step %d", ErrUnknownState, s, i)
		}
	}

	return &Timeline{
		Runs:     Runs(path),
		Rows:     rows,
		Steps:    len(path),
		Height:   vg.Points(15),
		BoxStyle: plotter.DefaultLineStyle,
		TextStyle: text.Style{
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		},
	}, nil
}

// Plot implements plot.Plotter.
func (t *Timeline) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, r := range t.Runs {
		row := t.Rows[r.State]
		y := trY(float64(row))
		if !c.ContainsY(y) {
			continue
		}
		xStart, xEnd := trX(float64(r.Start)), trX(float64(r.End))
		pts := []vg.Point{
			{X: xStart, Y: y - t.Height/2},
			{X: xEnd, Y: y - t.Height/2},
			{X: xEnd, Y: y + t.Height/2},
			{X: xStart, Y: y + t.Height/2},
			{X: xStart, Y: y - t.Height/2},
		}
		c.FillPolygon(rowColor(row), c.ClipPolygonX(pts[0:4]))
		c.StrokeLines(t.BoxStyle, c.ClipLinesX(pts)...)
		if t.TextStyle.Width(r.State)+xStart <= xEnd && c.ContainsX(xStart) {
			c.FillText(t.TextStyle, vg.Point{X: (xStart + xEnd) / 2, Y: y}, r.State)
		}
	}
}

// DataRange implements plot.DataRanger.
func (t *Timeline) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(t.Steps), 0, float64(len(t.Rows) - 1)
}

func rowColor(row int) color.Color {
	c := plotutil.Color(row)
	r, g, b, _ := c.RGBA()

	// lighten so labels stay readable
	return color.RGBA{
		R: uint8((r>>8 + 255) / 2),
		G: uint8((g>>8 + 255) / 2),
		B: uint8((b>>8 + 255) / 2),
		A: 255,
	}
}

// DecodedPath builds a titled plot of path with one nominal Y row per state.
func DecodedPath(title string, path, states []string) (*plot.Plot, error) {
	tl, err := NewTimeline(path, states)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Observation"
	p.Y.Label.Text = "State"
	p.Add(tl)
	p.NominalY(states...)

	return p, nil
}
