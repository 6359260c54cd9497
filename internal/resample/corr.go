package resample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Tail selects the direction of the correlation permutation test.
type Tail string

const (
	TailBoth  Tail = "both"
	TailUpper Tail = "upper"
	TailLower Tail = "lower"
)

// CorrMatrixPerm estimates p-values for every pairwise Pearson correlation
// in data (variables x observations) by permuting each variable's
// observations independently. With fwe set, each p-value is compared
// against the null distribution of the maximum statistic across all pairs,
// giving familywise-corrected values.
func CorrMatrixPerm(data [][]float64, iters int, tail Tail, fwe bool, seed uint64) (*mat.Dense, error) {
	nvars := len(data)
	if nvars < 2 {
		return nil, fmt.Errorf("need at least 2 variables, got %d", nvars)
	}
	nobs := len(data[0])
	for i, row := range data {
		if len(row) != nobs {
			return nil, fmt.Errorf("variable %d has %d observations, want %d", i, len(row), nobs)
		}
	}
	switch tail {
	case TailBoth, TailUpper, TailLower:
	default:
		return nil, fmt.Errorf("unknown tail %q", tail)
	}
	if iters <= 0 {
		iters = 1000
	}

	obs := make([][]float64, nvars)
	for i := range obs {
		obs[i] = make([]float64, nvars)
		for j := 0; j < nvars; j++ {
			if i == j {
				continue
			}
			obs[i][j] = stat.Correlation(data[i], data[j], nil)
		}
	}

	// Permute a private copy of each variable.
	perm := make([][]float64, nvars)
	for i, row := range data {
		perm[i] = append([]float64(nil), row...)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x51a2b3c4d5e6f708))
	exceed := make([][]float64, nvars)
	for i := range exceed {
		exceed[i] = make([]float64, nvars)
	}

	score := func(r float64) float64 {
		if tail == TailBoth {
			return math.Abs(r)
		}
		return r
	}

	for it := 0; it < iters; it++ {
		for _, row := range perm {
			rng.Shuffle(len(row), func(a, b int) { row[a], row[b] = row[b], row[a] })
		}

		maxStat := math.Inf(-1)
		minStat := math.Inf(1)
		null := make([][]float64, nvars)
		for i := 0; i < nvars; i++ {
			null[i] = make([]float64, nvars)
			for j := i + 1; j < nvars; j++ {
				r := stat.Correlation(perm[i], perm[j], nil)
				null[i][j] = r
				maxStat = math.Max(maxStat, score(r))
				minStat = math.Min(minStat, score(r))
			}
		}

		for i := 0; i < nvars; i++ {
			for j := i + 1; j < nvars; j++ {
				var hit bool
				switch {
				case fwe && tail == TailLower:
					hit = minStat <= score(obs[i][j])
				case fwe:
					hit = maxStat >= score(obs[i][j])
				case tail == TailLower:
					hit = score(null[i][j]) <= score(obs[i][j])
				default:
					hit = score(null[i][j]) >= score(obs[i][j])
				}
				if hit {
					exceed[i][j]++
				}
			}
		}
	}

	p := mat.NewDense(nvars, nvars, nil)
	for i := 0; i < nvars; i++ {
		p.Set(i, i, 1)
		for j := i + 1; j < nvars; j++ {
			v := (exceed[i][j] + 1) / float64(iters+1)
			p.Set(i, j, v)
			p.Set(j, i, v)
		}
	}
	return p, nil
}
