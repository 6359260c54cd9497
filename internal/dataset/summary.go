package dataset

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

// ColumnSummary describes one column of a Table. NaN values are dropped
// before computing the statistics.
type ColumnSummary struct {
	Name   string  `json:"name"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Summary computes per-column descriptive statistics.
func (t *Table) Summary() []ColumnSummary {
	out := make([]ColumnSummary, len(t.Names))
	for i, name := range t.Names {
		vals := make([]float64, 0, len(t.Columns[i]))
		for _, v := range t.Columns[i] {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		cs := ColumnSummary{Name: name, N: len(vals)}
		if len(vals) > 0 {
			s := mstats.Sample{Xs: vals}
			s.Sort()
			cs.Mean = s.Mean()
			cs.StdDev = s.StdDev()
			cs.Min = s.Quantile(0)
			cs.P25 = s.Quantile(0.25)
			cs.Median = s.Quantile(0.5)
			cs.P75 = s.Quantile(0.75)
			cs.Max = s.Quantile(1)
		}
		out[i] = cs
	}
	return out
}
