// Package resample provides the bootstrap and permutation machinery behind
// the statplot confidence bands and significance stars. All randomness is
// seeded so plots are reproducible.
package resample

import (
	"math"
	"math/rand/v2"

	mstats "github.com/aclements/go-moremath/stats"
)

// StatFunc reduces one column of values to a single statistic.
type StatFunc func([]float64) float64

// Mean is the default central statistic.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// Bootstrap resamples the rows of data (observations x timepoints) with
// replacement iters times and applies stat to each timepoint column of each
// resample. When smooth is set, Gaussian noise at the Silverman bandwidth of
// each column is added to the drawn values (a smoothed bootstrap, equivalent
// to resampling from the column KDE).
func Bootstrap(data [][]float64, iters int, smooth bool, stat StatFunc, seed uint64) [][]float64 {
	nobs := len(data)
	if nobs == 0 || iters <= 0 {
		return nil
	}
	ntp := len(data[0])
	if stat == nil {
		stat = Mean
	}

	var bw []float64
	if smooth {
		bw = make([]float64, ntp)
		col := make([]float64, nobs)
		for t := 0; t < ntp; t++ {
			for i, row := range data {
				col[i] = row[t]
			}
			bw[t] = silverman(col)
		}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([][]float64, iters)
	col := make([]float64, nobs)
	idx := make([]int, nobs)
	for it := 0; it < iters; it++ {
		for i := range idx {
			idx[i] = rng.IntN(nobs)
		}
		row := make([]float64, ntp)
		for t := 0; t < ntp; t++ {
			for i, j := range idx {
				v := data[j][t]
				if smooth && bw[t] > 0 {
					v += rng.NormFloat64() * bw[t]
				}
				col[i] = v
			}
			row[t] = stat(col)
		}
		out[it] = row
	}
	return out
}

// ColumnStat applies stat to each timepoint column of data.
func ColumnStat(data [][]float64, stat StatFunc) []float64 {
	if len(data) == 0 {
		return nil
	}
	if stat == nil {
		stat = Mean
	}
	ntp := len(data[0])
	out := make([]float64, ntp)
	col := make([]float64, len(data))
	for t := 0; t < ntp; t++ {
		for i, row := range data {
			col[i] = row[t]
		}
		out[t] = stat(col)
	}
	return out
}

// Percentiles returns the columnwise lo and hi percentiles (0-100) of the
// bootstrap distribution boot (iters x timepoints).
func Percentiles(boot [][]float64, lo, hi float64) (low, high []float64) {
	if len(boot) == 0 {
		return nil, nil
	}
	ntp := len(boot[0])
	low = make([]float64, ntp)
	high = make([]float64, ntp)
	col := make([]float64, len(boot))
	for t := 0; t < ntp; t++ {
		for i, row := range boot {
			col[i] = row[t]
		}
		s := mstats.Sample{Xs: col}
		s.Sort()
		low[t] = s.Quantile(lo / 100)
		high[t] = s.Quantile(hi / 100)
	}
	return low, high
}

// silverman is the rule-of-thumb KDE bandwidth used for the smoothed
// bootstrap: 0.9 * min(sd, IQR/1.34) * n^(-1/5).
func silverman(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	s := mstats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()
	sd := s.StdDev()
	spread := sd
	if iqr := s.IQR() / 1.34; iqr > 0 && iqr < spread {
		spread = iqr
	}
	if spread <= 0 || math.IsNaN(spread) {
		return 0
	}
	return 0.9 * spread * math.Pow(float64(len(xs)), -0.2)
}
