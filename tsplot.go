package statplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/statplot/internal/resample"
)

// TimeSeriesOptions configures TimeSeries. The zero value (or a nil
// pointer) gives a mean central trace with a 16-84 bootstrap confidence
// band from 10000 iterations.
type TimeSeriesOptions struct {
	// ErrStyles lists the uncertainty renderings to draw under the
	// central trace. Defaults to CIBand alone.
	ErrStyles []ErrorStyle

	// CI holds the low and high bootstrap percentiles (0-100).
	CI [2]float64

	// Central reduces the values at one timepoint to the central trace.
	// Defaults to the mean; it is also the bootstrap statistic.
	Central func([]float64) float64

	// NBoot is the number of bootstrap iterations.
	NBoot int

	// Smooth resamples with KDE-bandwidth noise (smoothed bootstrap).
	Smooth bool

	Color     color.Color
	LineWidth vg.Length

	// Seed fixes the bootstrap RNG for reproducible bands.
	Seed uint64
}

// TimeSeries plots the central tendency of a set of observed timeseries
// with bootstrap uncertainty. data is observations x timepoints; every row
// must be as long as x. The uncertainty styles are drawn first and the
// central trace last, so it stays prominent.
func TimeSeries(ax *plot.Plot, x []float64, data [][]float64, o *TimeSeriesOptions) (*plot.Plot, error) {
	if o == nil {
		o = &TimeSeriesOptions{}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrShapeMismatch)
	}
	for i, row := range data {
		if len(row) != len(x) {
			return nil, fmt.Errorf("%w: observation %d has %d timepoints, x has %d",
				ErrShapeMismatch, i, len(row), len(x))
		}
	}

	styles := o.ErrStyles
	if len(styles) == 0 {
		styles = []ErrorStyle{CIBand}
	}
	ci := o.CI
	if ci == [2]float64{} {
		ci = [2]float64{16, 84}
	}
	if ci[0] >= ci[1] || ci[0] < 0 || ci[1] > 100 {
		return nil, fmt.Errorf("%w: ci percentiles %v", ErrBadRange, ci)
	}
	nboot := o.NBoot
	if nboot <= 0 {
		nboot = 10000
	}
	central := o.Central
	if central == nil {
		central = resample.Mean
	}
	clr := pickColor(o.Color)
	width := o.LineWidth
	if width == 0 {
		width = vg.Points(1.5)
	}

	ax = ensureAxis(ax)

	boot := resample.Bootstrap(data, nboot, o.Smooth, central, o.Seed)
	low, high := resample.Percentiles(boot, ci[0], ci[1])
	mid := resample.ColumnStat(data, central)

	for _, style := range styles {
		var err error
		switch style {
		case CIBand:
			err = tsCIBand(ax, x, low, high, clr)
		case CIBars:
			err = tsCIBars(ax, x, mid, low, high, clr)
		case BootTraces:
			err = tsBootTraces(ax, x, boot, clr)
		case ObsTraces:
			err = tsObsTraces(ax, x, data, clr)
		case ObsPoints:
			err = tsObsPoints(ax, x, data, clr)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
		}
		if err != nil {
			return nil, err
		}
	}

	line, err := plotter.NewLine(xyPairs(x, mid))
	if err != nil {
		return nil, err
	}
	line.Color = clr
	line.Width = width
	ax.Add(line)

	return ax, nil
}

func tsCIBand(ax *plot.Plot, x, low, high []float64, clr color.Color) error {
	band := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		band = append(band, plotter.XY{X: x[i], Y: high[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: x[i], Y: low[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(clr, 0.2)
	poly.LineStyle.Color = color.Transparent
	ax.Add(poly)
	return nil
}

func tsCIBars(ax *plot.Plot, x, mid, low, high []float64, clr color.Color) error {
	below, above := ciToErrSize(low, high, mid)
	pts := struct {
		plotter.XYs
		plotter.YErrors
	}{
		XYs:     xyPairs(x, mid),
		YErrors: make(plotter.YErrors, len(x)),
	}
	for i := range x {
		pts.YErrors[i].Low = below[i]
		pts.YErrors[i].High = above[i]
	}
	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	bars.LineStyle.Color = clr
	ax.Add(bars)
	return nil
}

// tsBootTraces draws at most 250 traces regardless of the iteration count.
func tsBootTraces(ax *plot.Plot, x []float64, boot [][]float64, clr color.Color) error {
	n := len(boot)
	if n > 250 {
		n = 250
	}
	faint := withAlpha(clr, 0.25)
	for _, trace := range boot[:n] {
		line, err := plotter.NewLine(xyPairs(x, trace))
		if err != nil {
			return err
		}
		line.Color = faint
		line.Width = vg.Points(0.25)
		ax.Add(line)
	}
	return nil
}

func tsObsTraces(ax *plot.Plot, x []float64, data [][]float64, clr color.Color) error {
	faint := withAlpha(clr, 0.2)
	for _, row := range data {
		line, err := plotter.NewLine(xyPairs(x, row))
		if err != nil {
			return err
		}
		line.Color = faint
		line.Width = vg.Points(0.75)
		ax.Add(line)
	}
	return nil
}

func tsObsPoints(ax *plot.Plot, x []float64, data [][]float64, clr color.Color) error {
	faint := withAlpha(clr, 0.5)
	for _, row := range data {
		sc, err := plotter.NewScatter(xyPairs(x, row))
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = faint
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		ax.Add(sc)
	}
	return nil
}

func xyPairs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}
