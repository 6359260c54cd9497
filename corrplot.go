package statplot

import (
	"fmt"
	"math"

	xfont "golang.org/x/image/font"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/banshee-data/statplot/internal/resample"
)

// Tail selects the direction of the correlation significance test.
type Tail = resample.Tail

const (
	TailBoth  = resample.TailBoth
	TailUpper = resample.TailUpper
	TailLower = resample.TailLower
)

// CorrMatrixOptions configures CorrMatrix.
type CorrMatrixOptions struct {
	// Names labels the variables on the diagonal; defaults to var0..varN.
	Names []string

	// SkipSig disables the permutation significance test, leaving the
	// r values unstarred.
	SkipSig bool

	// Tail is the test direction; defaults to TailBoth.
	Tail Tail

	// Uncorrected disables the familywise (max-statistic) correction of
	// the permutation p-values.
	Uncorrected bool

	// NPerm is the permutation count; defaults to 1000.
	NPerm int

	// Seed fixes the permutation RNG.
	Seed uint64

	// FullRange maps the colormap over (-1, 1) instead of truncating it
	// at the largest off-diagonal |r|.
	FullRange bool

	// Range gives explicit (low, high) colormap bounds, overriding the
	// automatic truncation.
	Range []float64
}

// CorrMatrix plots the Pearson correlation matrix of data (variables x
// observations) as a lower-triangle heatmap, the r values with
// significance stars in the upper triangle, and variable names on the
// diagonal.
func CorrMatrix(ax *plot.Plot, data [][]float64, o *CorrMatrixOptions) (*plot.Plot, error) {
	if o == nil {
		o = &CorrMatrixOptions{}
	}
	corr, pvals, vmin, vmax, err := corrStats(data, o)
	if err != nil {
		return nil, err
	}
	return SymMatrix(ax, corr, pvals, o.Names, &SymMatrixOptions{Range: []float64{vmin, vmax}})
}

// corrStats computes the correlation matrix, the optional permutation
// p-values and the colormap bounds shared by the PNG and HTML renderers.
func corrStats(data [][]float64, o *CorrMatrixOptions) (corr *mat.SymDense, pvals *mat.Dense, vmin, vmax float64, err error) {
	nvars := len(data)
	if nvars < 2 {
		return nil, nil, 0, 0, fmt.Errorf("%w: need at least 2 variables, got %d", ErrShapeMismatch, nvars)
	}
	nobs := len(data[0])
	for i, row := range data {
		if len(row) != nobs {
			return nil, nil, 0, 0, fmt.Errorf("%w: variable %d has %d observations, variable 0 has %d",
				ErrShapeMismatch, i, len(row), nobs)
		}
	}
	if o.Names != nil && len(o.Names) != nvars {
		return nil, nil, 0, 0, fmt.Errorf("%w: %d names for %d variables", ErrShapeMismatch, len(o.Names), nvars)
	}

	// gonum's correlation matrix wants observations in rows.
	xmat := mat.NewDense(nobs, nvars, nil)
	for i, row := range data {
		for j, v := range row {
			xmat.Set(j, i, v)
		}
	}
	corr = mat.NewSymDense(nvars, nil)
	stat.CorrelationMatrix(corr, xmat, nil)

	if !o.SkipSig {
		tail := o.Tail
		switch tail {
		case "":
			tail = TailBoth
		case TailBoth, TailUpper, TailLower:
		default:
			return nil, nil, 0, 0, fmt.Errorf("%w: tail %q", ErrUnknownStyle, tail)
		}
		pvals, err = resample.CorrMatrixPerm(data, o.NPerm, tail, !o.Uncorrected, o.Seed)
		if err != nil {
			return nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
		}
	}

	switch {
	case o.Range != nil:
		if len(o.Range) != 2 || o.Range[0] >= o.Range[1] {
			return nil, nil, 0, 0, fmt.Errorf("%w: colormap range %v", ErrBadRange, o.Range)
		}
		vmin, vmax = o.Range[0], o.Range[1]
	case o.FullRange:
		vmin, vmax = -1, 1
	default:
		// Truncate the colormap at the largest off-diagonal magnitude
		// so weak structure is still visible.
		peak := 0.0
		for i := 0; i < nvars; i++ {
			for j := i + 1; j < nvars; j++ {
				peak = math.Max(peak, math.Abs(corr.At(i, j)))
			}
		}
		vmax = math.Min(1, peak*1.15)
		if vmax == 0 {
			vmax = 1
		}
		vmin = -vmax
	}
	return corr, pvals, vmin, vmax, nil
}

// SymMatrixOptions configures SymMatrix.
type SymMatrixOptions struct {
	// Range gives the (low, high) colormap bounds; defaults to the data
	// extremes padded by 15%.
	Range []float64
}

// SymMatrix renders a symmetric matrix as a lower-triangle heatmap with the
// upper-triangle cells annotated with their values and, when pvals is
// non-nil, significance stars. names go on the diagonal.
func SymMatrix(ax *plot.Plot, m *mat.SymDense, pvals *mat.Dense, names []string, o *SymMatrixOptions) (*plot.Plot, error) {
	if o == nil {
		o = &SymMatrixOptions{}
	}
	n := m.SymmetricDim()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	if names != nil && len(names) != n {
		return nil, fmt.Errorf("%w: %d names for %d variables", ErrShapeMismatch, len(names), n)
	}
	if names == nil {
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("var%d", i)
		}
	}

	var vmin, vmax float64
	if o.Range != nil {
		if len(o.Range) != 2 || o.Range[0] >= o.Range[1] {
			return nil, fmt.Errorf("%w: colormap range %v", ErrBadRange, o.Range)
		}
		vmin, vmax = o.Range[0], o.Range[1]
	} else {
		vmin, vmax = math.Inf(1), math.Inf(-1)
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				vmin = math.Min(vmin, m.At(i, j))
				vmax = math.Max(vmax, m.At(i, j))
			}
		}
		if vmin > vmax {
			vmin, vmax = -1, 1
		}
		vmin, vmax = vmin*1.15, vmax*1.15
		if vmin >= vmax {
			vmin, vmax = vmin-1, vmax+1
		}
	}

	ax = ensureAxis(ax)

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(vmin)
	cmap.SetMax(vmax)
	h := plotter.NewHeatMap(lowerTriGrid{m: m, n: n}, cmap.Palette(255))
	h.Min = vmin
	h.Max = vmax
	ax.Add(h)

	// r values and stars in the upper triangle.
	var cells plotter.XYLabels
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			stars := ""
			if pvals != nil {
				stars = SigStars(pvals.At(i, j))
			}
			cells.XYs = append(cells.XYs, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			cells.Labels = append(cells.Labels, fmt.Sprintf("%.3g\n%s", m.At(i, j), stars))
		}
	}
	if len(cells.Labels) > 0 {
		labels, err := plotter.NewLabels(cells)
		if err != nil {
			return nil, err
		}
		centerLabels(labels, xfont.WeightNormal)
		ax.Add(labels)
	}

	var diag plotter.XYLabels
	for i, name := range names {
		diag.XYs = append(diag.XYs, plotter.XY{X: float64(i), Y: float64(n - 1 - i)})
		diag.Labels = append(diag.Labels, name)
	}
	nameLabels, err := plotter.NewLabels(diag)
	if err != nil {
		return nil, err
	}
	centerLabels(nameLabels, xfont.WeightBold)
	ax.Add(nameLabels)

	ax.X.Tick.Marker = plot.ConstantTicks(nil)
	ax.Y.Tick.Marker = plot.ConstantTicks(nil)

	return ax, nil
}

func centerLabels(labels *plotter.Labels, w xfont.Weight) {
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Weight = w
	}
}

// lowerTriGrid exposes the lower triangle of a symmetric matrix as a
// heatmap grid, with row 0 at the top the way matrix plots are read.
// Cells on and above the diagonal are NaN, which HeatMap leaves undrawn.
type lowerTriGrid struct {
	m *mat.SymDense
	n int
}

func (g lowerTriGrid) Dims() (c, r int) { return g.n, g.n }
func (g lowerTriGrid) X(c int) float64  { return float64(c) }
func (g lowerTriGrid) Y(r int) float64  { return float64(r) }

func (g lowerTriGrid) Z(c, r int) float64 {
	i := g.n - 1 - r
	if c >= i {
		return math.NaN()
	}
	return g.m.At(i, c)
}
