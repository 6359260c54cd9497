package statplot

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"

	"github.com/banshee-data/statplot/internal/palette"
)

// Sentinel errors returned by the plotting functions. Callers can test for
// them with errors.Is; the wrapped message carries the specifics.
var (
	// ErrUnknownStyle reports an error style name outside the supported set.
	ErrUnknownStyle = errors.New("statplot: unknown error style")

	// ErrShapeMismatch reports data whose dimensions disagree, such as a
	// names list that does not match the number of groups.
	ErrShapeMismatch = errors.New("statplot: shape mismatch")

	// ErrBadRange reports an invalid colormap or percentile range.
	ErrBadRange = errors.New("statplot: bad range")
)

// ErrorStyle names one way of drawing uncertainty across observations in
// TimeSeries.
type ErrorStyle string

const (
	CIBand     ErrorStyle = "ci_band"     // translucent band between CI bounds
	CIBars     ErrorStyle = "ci_bars"     // error bars at each timepoint
	BootTraces ErrorStyle = "boot_traces" // faint traces from the bootstrap distribution
	ObsTraces  ErrorStyle = "obs_traces"  // faint trace per observation
	ObsPoints  ErrorStyle = "obs_points"  // small marker per observation
)

// defaultColor is used when options carry no explicit color.
var defaultColor = color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}

// gray is the accent color for box edges, whiskers and violin outlines.
var gray = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}

// GroupColors returns n visually distinct colors for coloring groups, one
// per box or violin.
func GroupColors(n int) []color.Color {
	return palette.Distinct(n)
}

// ensureAxis returns ax, creating a new plot when ax is nil.
func ensureAxis(ax *plot.Plot) *plot.Plot {
	if ax == nil {
		ax = plot.New()
	}
	return ax
}

// withAlpha returns c with its alpha scaled to a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		c = defaultColor
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(a * 255)),
	}
}

// pickColor resolves an optional color to a concrete one.
func pickColor(c color.Color) color.Color {
	if c == nil {
		return defaultColor
	}
	return c
}

// axisSpan returns the finite span of [min, max], or fallback when the axis
// has not been ranged yet (gonum/plot initialises fresh axes to ±Inf).
func axisSpan(min, max, fallback float64) float64 {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return fallback
	}
	return max - min
}
