package statplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RegressionOptions configures Regression.
type RegressionOptions struct {
	XLabel, YLabel string

	// Marker draws the scatter points; defaults to filled circles.
	Marker draw.GlyphDrawer

	// Corr computes the correlation coefficient and its p-value for the
	// title annotation. Defaults to PearsonR.
	Corr func(x, y []float64) (r, p float64)

	Color     color.Color
	LineWidth vg.Length
}

// Regression draws a scatter of y against x with the least-squares line
// across the x range, and annotates the title with the correlation
// coefficient, its p-value and significance stars.
func Regression(ax *plot.Plot, x, y []float64, o *RegressionOptions) (*plot.Plot, error) {
	if o == nil {
		o = &RegressionOptions{}
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrShapeMismatch, len(x))
	}
	corr := o.Corr
	if corr == nil {
		corr = PearsonR
	}
	clr := pickColor(o.Color)

	ax = ensureAxis(ax)

	sc, err := plotter.NewScatter(xyPairs(x, y))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = clr
	sc.GlyphStyle.Radius = vg.Points(2)
	if o.Marker != nil {
		sc.GlyphStyle.Shape = o.Marker
	} else {
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
	}
	ax.Add(sc)

	// Adding the scatter ranged the axes, so the fit line can span the
	// full x extent the way the points will be framed.
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	xlim := []float64{ax.X.Min, ax.X.Max}
	fit := []float64{alpha + beta*xlim[0], alpha + beta*xlim[1]}
	line, err := plotter.NewLine(xyPairs(xlim, fit))
	if err != nil {
		return nil, err
	}
	line.Color = clr
	if o.LineWidth != 0 {
		line.Width = o.LineWidth
	} else {
		line.Width = vg.Points(1.5)
	}
	ax.Add(line)

	r, p := corr(x, y)
	ax.Title.Text = fmt.Sprintf("r = %.3f; p = %.3g%s", r, p, SigStars(p))
	ax.X.Label.Text = o.XLabel
	ax.Y.Label.Text = o.YLabel

	return ax, nil
}

// PearsonR returns the Pearson correlation of x and y together with the
// two-sided p-value from the Student's-t distribution with n-2 degrees of
// freedom.
func PearsonR(x, y []float64) (r, p float64) {
	r = stat.Correlation(x, y, nil)
	n := float64(len(x))
	if n < 3 || math.Abs(r) >= 1 {
		if math.Abs(r) >= 1 {
			return r, 0
		}
		return r, 1
	}
	t := r * math.Sqrt((n-2)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}
	p = 2 * dist.CDF(-math.Abs(t))
	return r, p
}
