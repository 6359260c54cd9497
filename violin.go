package statplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// InnerStyle names the decoration drawn inside a violin.
type InnerStyle string

const (
	InnerBox   InnerStyle = "box"   // dotted quartiles and a dashed median
	InnerStick InnerStyle = "stick" // one line per sample value
	InnerNone  InnerStyle = "none"
)

// ViolinOptions configures Violin.
type ViolinOptions struct {
	// Inner selects the decoration inside each violin; defaults to
	// InnerBox.
	Inner InnerStyle

	// Positions places each violin on the x axis; defaults to 0..n-1.
	// A single value places the first violin there with unit spacing.
	Positions []float64

	// Width is the violin width in x units at maximum density;
	// defaults to 0.3.
	Width float64

	// Names labels the violins; its length must match the group count.
	Names []string

	// JoinObservations joins the i-th value of every group with a line.
	JoinObservations bool

	Color color.Color

	// Colors fills each violin with its own color, overriding Color.
	// Its length must match the group count.
	Colors []color.Color
}

// Violin draws a violin (mirrored kernel density outline) per group. Each
// group's KDE is scaled so its peak spans half the configured width, filled
// in the group color with a gray outline and inner quartile decoration.
func Violin(ax *plot.Plot, groups [][]float64, o *ViolinOptions) (*plot.Plot, error) {
	if o == nil {
		o = &ViolinOptions{}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrShapeMismatch)
	}
	for i, g := range groups {
		if len(g) < 2 {
			return nil, fmt.Errorf("%w: group %d needs at least 2 values for a density estimate", ErrShapeMismatch, i)
		}
	}
	if o.Names != nil && len(o.Names) != len(groups) {
		return nil, fmt.Errorf("%w: %d names for %d groups", ErrShapeMismatch, len(o.Names), len(groups))
	}
	if o.Colors != nil && len(o.Colors) != len(groups) {
		return nil, fmt.Errorf("%w: %d colors for %d groups", ErrShapeMismatch, len(o.Colors), len(groups))
	}
	inner := o.Inner
	if inner == "" {
		inner = InnerBox
	}
	switch inner {
	case InnerBox, InnerStick, InnerNone:
	default:
		return nil, fmt.Errorf("%w: inner %q", ErrUnknownStyle, inner)
	}
	if o.JoinObservations {
		for i, g := range groups[1:] {
			if len(g) != len(groups[0]) {
				return nil, fmt.Errorf("%w: group %d has %d values, group 0 has %d",
					ErrShapeMismatch, i+1, len(g), len(groups[0]))
			}
		}
	}

	positions, err := violinPositions(o.Positions, len(groups))
	if err != nil {
		return nil, err
	}
	width := o.Width
	if width <= 0 {
		width = 0.3
	}
	clr := pickColor(o.Color)

	ax = ensureAxis(ax)

	for i, g := range groups {
		fill := clr
		if o.Colors != nil {
			fill = o.Colors[i]
		}
		if err := drawViolin(ax, g, positions[i], width, inner, fill); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
	}

	if o.JoinObservations {
		join := withAlpha(clr, 2.0/3.0)
		for j := range groups[0] {
			pts := make(plotter.XYs, len(groups))
			for i, g := range groups {
				pts[i] = plotter.XY{X: positions[i], Y: g[j]}
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			line.Color = join
			ax.Add(line)
		}
	}

	if o.Names != nil {
		if defaultSpaced(positions) {
			ax.NominalX(o.Names...)
		} else {
			// Custom positions sit away from the nominal 0..n-1 slots,
			// so pin each label to its violin.
			ticks := make([]plot.Tick, len(positions))
			for i, p := range positions {
				ticks[i] = plot.Tick{Value: p, Label: o.Names[i]}
			}
			ax.X.Tick.Marker = plot.ConstantTicks(ticks)
		}
	}
	ax.X.Min = positions[0] - 0.5
	ax.X.Max = positions[len(positions)-1] + 0.5

	return ax, nil
}

// defaultSpaced reports whether positions are the 0..n-1 slots NominalX
// labels.
func defaultSpaced(pos []float64) bool {
	for i, p := range pos {
		if p != float64(i) {
			return false
		}
	}
	return true
}

func violinPositions(pos []float64, n int) ([]float64, error) {
	switch len(pos) {
	case 0:
		pos = make([]float64, n)
		for i := range pos {
			pos[i] = float64(i)
		}
		return pos, nil
	case 1:
		start := pos[0]
		pos = make([]float64, n)
		for i := range pos {
			pos[i] = start + float64(i)
		}
		return pos, nil
	case n:
		return pos, nil
	}
	return nil, fmt.Errorf("%w: %d positions for %d groups", ErrShapeMismatch, len(pos), n)
}

func drawViolin(ax *plot.Plot, sample []float64, x, width float64, inner InnerStyle, clr color.Color) error {
	kde := newKDE(sample)
	ys := kdeSupport(sample, kde.PDF, 1000)
	dens := make([]float64, len(ys))
	peak := 0.0
	for i, y := range ys {
		dens[i] = kde.PDF(y)
		peak = math.Max(peak, dens[i])
	}
	if peak <= 0 {
		return fmt.Errorf("%w: degenerate density", ErrShapeMismatch)
	}
	// Scale so the peak density spans half the violin width.
	scl := (width / 2) / peak
	for i := range dens {
		dens[i] *= scl
	}

	outline := make(plotter.XYs, 0, 2*len(ys))
	for i := range ys {
		outline = append(outline, plotter.XY{X: x - dens[i], Y: ys[i]})
	}
	for i := len(ys) - 1; i >= 0; i-- {
		outline = append(outline, plotter.XY{X: x + dens[i], Y: ys[i]})
	}
	body, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	body.Color = withAlpha(clr, 0.7)
	body.LineStyle.Color = color.Transparent
	ax.Add(body)

	for _, side := range []float64{-1, 1} {
		edge := make(plotter.XYs, len(ys))
		for i := range ys {
			edge[i] = plotter.XY{X: x + side*dens[i], Y: ys[i]}
		}
		line, err := plotter.NewLine(edge)
		if err != nil {
			return err
		}
		line.Color = gray
		line.Width = vg.Points(1)
		ax.Add(line)
	}

	switch inner {
	case InnerBox:
		for _, pct := range []float64{25, 75} {
			q := quantile(sample, pct)
			half := kde.PDF(q) * scl
			if err := innerLine(ax, x, q, half, vg.Points(1.5), []vg.Length{vg.Points(1), vg.Points(2)}); err != nil {
				return err
			}
		}
		med := quantile(sample, 50)
		half := kde.PDF(med) * scl
		if err := innerLine(ax, x, med, half, vg.Points(1.2), []vg.Length{vg.Points(4), vg.Points(2)}); err != nil {
			return err
		}
	case InnerStick:
		for _, v := range sample {
			half := kde.PDF(v) * scl
			if err := innerLine(ax, x, v, half, vg.Points(0.7), nil); err != nil {
				return err
			}
		}
	}

	return nil
}

func innerLine(ax *plot.Plot, x, y, half float64, w vg.Length, dashes []vg.Length) error {
	line, err := plotter.NewLine(plotter.XYs{
		{X: x - half, Y: y},
		{X: x + half, Y: y},
	})
	if err != nil {
		return err
	}
	line.Color = gray
	line.Width = w
	line.Dashes = dashes
	ax.Add(line)
	return nil
}
