package statplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// KDEOptions configures KDE.
type KDEOptions struct {
	// NPts is the resolution of the density curve; defaults to 1000.
	NPts int

	// Hist underlays a histogram normalized to unit area.
	Hist bool

	// NBins is the histogram bin count; defaults to 20.
	NBins int

	// Rug adds vertical ticks at the data points.
	Rug bool

	// Shade fills under the density curve.
	Shade bool

	Color     color.Color
	LineWidth vg.Length
}

// KDE plots a Gaussian kernel density estimate of sample, optionally with a
// normalized histogram underlay, a rug, and shading under the curve. The
// curve is drawn over the data range padded by itself on both sides,
// trimmed where the density falls below 1e-4 of its peak.
func KDE(ax *plot.Plot, sample []float64, o *KDEOptions) (*plot.Plot, error) {
	if o == nil {
		o = &KDEOptions{}
	}
	if len(sample) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 values for a density estimate, got %d", ErrShapeMismatch, len(sample))
	}
	npts := o.NPts
	if npts <= 0 {
		npts = 1000
	}
	nbins := o.NBins
	if nbins <= 0 {
		nbins = 20
	}
	clr := pickColor(o.Color)
	width := o.LineWidth
	if width == 0 {
		width = vg.Points(1.5)
	}

	ax = ensureAxis(ax)

	kde := newKDE(sample)
	xs := kdeSupport(sample, kde.PDF, npts)
	ys := make([]float64, len(xs))
	peak := 0.0
	for i, x := range xs {
		ys[i] = kde.PDF(x)
		peak = math.Max(peak, ys[i])
	}

	if o.Hist {
		h, err := plotter.NewHist(plotter.Values(sample), nbins)
		if err != nil {
			return nil, err
		}
		h.Normalize(1)
		h.FillColor = withAlpha(clr, 0.4)
		h.LineStyle.Color = color.Transparent
		ax.Add(h)
	}

	if o.Shade {
		if err := shadeUnder(ax, xs, ys, clr); err != nil {
			return nil, err
		}
	}

	line, err := plotter.NewLine(xyPairs(xs, ys))
	if err != nil {
		return nil, err
	}
	line.Color = clr
	line.Width = width
	ax.Add(line)

	if o.Rug {
		_, err := Rug(ax, sample, &RugOptions{
			Height: peak * 0.05,
			Color:  withAlpha(clr, 0.7),
			Width:  vg.Points(2),
		})
		if err != nil {
			return nil, err
		}
	}

	return ax, nil
}

func shadeUnder(ax *plot.Plot, xs, ys []float64, clr color.Color) error {
	band := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		band = append(band, plotter.XY{X: xs[i], Y: ys[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: xs[i], Y: 0})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(clr, 0.25)
	poly.LineStyle.Color = color.Transparent
	ax.Add(poly)
	return nil
}

// RugOptions configures Rug.
type RugOptions struct {
	// Height of the ticks in data units. Defaults to 5% of the current
	// y range.
	Height float64

	Color color.Color
	Width vg.Length
}

// Rug draws the sample values as vertical ticks rising from the bottom of
// the y range.
func Rug(ax *plot.Plot, sample []float64, o *RugOptions) (*plot.Plot, error) {
	if o == nil {
		o = &RugOptions{}
	}
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrShapeMismatch)
	}
	ax = ensureAxis(ax)

	ymin := ax.Y.Min
	if math.IsInf(ymin, 0) {
		ymin = 0
	}
	height := o.Height
	if height <= 0 {
		height = axisSpan(ax.Y.Min, ax.Y.Max, 1) * 0.05
	}
	clr := pickColor(o.Color)
	width := o.Width
	if width == 0 {
		width = vg.Points(1)
	}

	for _, v := range sample {
		tick, err := plotter.NewLine(plotter.XYs{
			{X: v, Y: ymin},
			{X: v, Y: ymin + height},
		})
		if err != nil {
			return nil, err
		}
		tick.Color = clr
		tick.Width = width
		ax.Add(tick)
	}

	return ax, nil
}
