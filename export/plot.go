package export

import (
	"fmt"
	"log/slog"

	"github.com/alexozer/nurbs"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSize is the width and height of saved plots.
const PlotSize = 5 * vg.Inch

// PlotLaw draws a law's samples as a line and saves the figure at path. The
// image format follows the file extension (.png, .svg, .pdf, ...).
func PlotLaw(path, title string, samples []nurbs.LawSample) error {
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X, xys[i].Y = s.U, s.Value
	}

	return savePlot(path, title, "u", "value", xys)
}

// PlotCurve draws the x-y projection of a curve's samples.
func PlotCurve(path, title string, samples []nurbs.CurvePoint) error {
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X, xys[i].Y = s.Pt[0], s.Pt[1]
	}

	return savePlot(path, title, "x axis", "y axis", xys)
}

func savePlot(path, title, xLabel, yLabel string, xys plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plotting %s: %w", title, err)
	}
	p.Add(line)

	if err := p.Save(PlotSize, PlotSize, path); err != nil {
		return err
	}

	slog.Info("wrote plot", "path", path, "points", len(xys))
	return nil
}
