package statplot

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

// SigStars formats a p-value as significance stars: *** below .001,
// ** below .01, * below .05 and a dot below .1.
func SigStars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	case p < 0.1:
		return "."
	}
	return ""
}

// ciToErrSize converts CI bounds into error-bar extents below and above the
// central values.
func ciToErrSize(low, high, central []float64) (below, above []float64) {
	below = make([]float64, len(central))
	above = make([]float64, len(central))
	for i, c := range central {
		below[i] = c - low[i]
		above[i] = high[i] - c
	}
	return below, above
}

// kdeSupport establishes the support for a kernel density estimate: the
// data range padded by itself on both sides, trimmed to where the density
// exceeds 1e-4 of its peak.
func kdeSupport(sample []float64, pdf func(float64) float64, npts int) []float64 {
	lo, hi := sample[0], sample[0]
	for _, v := range sample {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	n := 2 * npts
	xs := make([]float64, n)
	ys := make([]float64, n)
	peak := 0.0
	for i := 0; i < n; i++ {
		x := (lo - span) + (3*span)*float64(i)/float64(n-1)
		xs[i] = x
		ys[i] = pdf(x)
		peak = math.Max(peak, ys[i])
	}

	keep := xs[:0]
	for i, y := range ys {
		if y > peak*1e-4 {
			keep = append(keep, xs[i])
		}
	}
	return keep
}

// newKDE builds a Gaussian KDE over sample with the library's default
// bandwidth selection.
func newKDE(sample []float64) *mstats.KDE {
	xs := make([]float64, len(sample))
	copy(xs, sample)
	s := mstats.Sample{Xs: xs}
	s.Sort()
	return &mstats.KDE{Sample: s}
}

// quantile returns the pct percentile (0-100) of sample.
func quantile(sample []float64, pct float64) float64 {
	xs := make([]float64, len(sample))
	copy(xs, sample)
	s := mstats.Sample{Xs: xs}
	s.Sort()
	return s.Quantile(pct / 100)
}
