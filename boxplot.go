package statplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxOptions configures Box.
type BoxOptions struct {
	// Names labels the groups on the x axis; its length must match the
	// number of groups. Without names the groups are numbered from 1.
	Names []string

	// JoinObservations treats index i of every group as one repeated
	// measure and joins them with lines across the boxes. All groups
	// must then be the same length.
	JoinObservations bool

	// Color fills the boxes; edge and whisker styling stays gray.
	Color color.Color

	// Colors fills each box with its own color, overriding Color. Its
	// length must match the number of groups.
	Colors []color.Color

	// Width is the box width; defaults to 25 points.
	Width vg.Length
}

// Box draws one styled box-and-whisker per group: a translucent color fill
// with gray edges, whiskers, medians and diamond-ish outliers.
func Box(ax *plot.Plot, groups [][]float64, o *BoxOptions) (*plot.Plot, error) {
	if o == nil {
		o = &BoxOptions{}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrShapeMismatch)
	}
	if o.Names != nil && len(o.Names) != len(groups) {
		return nil, fmt.Errorf("%w: %d names for %d groups", ErrShapeMismatch, len(o.Names), len(groups))
	}
	if o.Colors != nil && len(o.Colors) != len(groups) {
		return nil, fmt.Errorf("%w: %d colors for %d groups", ErrShapeMismatch, len(o.Colors), len(groups))
	}
	if o.JoinObservations {
		for i, g := range groups[1:] {
			if len(g) != len(groups[0]) {
				return nil, fmt.Errorf("%w: group %d has %d values, group 0 has %d",
					ErrShapeMismatch, i+1, len(g), len(groups[0]))
			}
		}
	}
	clr := pickColor(o.Color)
	width := o.Width
	if width == 0 {
		width = vg.Points(25)
	}

	ax = ensureAxis(ax)

	grayFaint := withAlpha(gray, 0.7)
	for i, g := range groups {
		box, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g))
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		fill := clr
		if o.Colors != nil {
			fill = o.Colors[i]
		}
		box.FillColor = withAlpha(fill, 0.7)
		box.BoxStyle.Color = gray
		box.BoxStyle.Width = vg.Points(1.5)
		box.MedianStyle.Color = gray
		box.MedianStyle.Width = vg.Points(1.5)
		box.WhiskerStyle.Color = grayFaint
		box.WhiskerStyle.Width = vg.Points(2)
		box.GlyphStyle.Color = withAlpha(gray, 0.6)
		box.GlyphStyle.Shape = draw.PyramidGlyph{}
		ax.Add(box)
	}

	if o.JoinObservations {
		if err := joinMeasures(ax, groups, clr); err != nil {
			return nil, err
		}
	}

	if o.Names != nil {
		ax.NominalX(o.Names...)
	} else {
		ax.NominalX(groupNumbers(len(groups))...)
	}

	return ax, nil
}

// joinMeasures connects the i-th value of every group with a line, for
// repeated-measures data.
func joinMeasures(ax *plot.Plot, groups [][]float64, clr color.Color) error {
	join := withAlpha(clr, 2.0/3.0)
	for j := range groups[0] {
		pts := make(plotter.XYs, len(groups))
		for i, g := range groups {
			pts[i] = plotter.XY{X: float64(i), Y: g[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = join
		ax.Add(line)
	}
	return nil
}

func groupNumbers(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprint(i + 1)
	}
	return names
}
