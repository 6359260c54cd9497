package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	table := &Table{
		Names: []string{"speed", "magnitude"},
		Columns: [][]float64{
			{1, 2, 3, 4, 5},
			{10, 20, math.NaN(), 40, 50},
		},
	}

	sums := table.Summary()
	require.Len(t, sums, 2)

	speed := sums[0]
	assert.Equal(t, "speed", speed.Name)
	assert.Equal(t, 5, speed.N)
	assert.InDelta(t, 3, speed.Mean, 1e-12)
	assert.InDelta(t, 1, speed.Min, 1e-12)
	assert.InDelta(t, 3, speed.Median, 1e-12)
	assert.InDelta(t, 5, speed.Max, 1e-12)
	assert.Greater(t, speed.StdDev, 0.0)
	assert.LessOrEqual(t, speed.P25, speed.Median)
	assert.LessOrEqual(t, speed.Median, speed.P75)

	mag := sums[1]
	assert.Equal(t, 4, mag.N, "NaN values should be dropped")
	assert.InDelta(t, 30, mag.Mean, 1e-12)
	assert.InDelta(t, 10, mag.Min, 1e-12)
	assert.InDelta(t, 50, mag.Max, 1e-12)
}

func TestSummary_EmptyColumn(t *testing.T) {
	t.Parallel()

	table := &Table{
		Names:   []string{"x"},
		Columns: [][]float64{{math.NaN(), math.NaN()}},
	}

	sums := table.Summary()
	require.Len(t, sums, 1)
	assert.Equal(t, 0, sums[0].N)
	assert.Zero(t, sums[0].Mean)
}
