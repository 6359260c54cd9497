package statplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func violinTestGroups() [][]float64 {
	return [][]float64{
		{1, 2, 2.5, 3, 3.5, 4, 5},
		{2, 3, 3.5, 4, 4.5, 5, 6},
	}
}

func TestViolin_ReturnsAxis(t *testing.T) {
	t.Parallel()

	ax := plot.New()
	got, err := Violin(ax, violinTestGroups(), nil)
	require.NoError(t, err)
	assert.Same(t, ax, got)
}

func TestViolin_InnerStyles(t *testing.T) {
	t.Parallel()

	for _, inner := range []InnerStyle{InnerBox, InnerStick, InnerNone} {
		t.Run(string(inner), func(t *testing.T) {
			t.Parallel()
			_, err := Violin(nil, violinTestGroups(), &ViolinOptions{Inner: inner})
			assert.NoError(t, err)
		})
	}
}

func TestViolin_UnknownInner(t *testing.T) {
	t.Parallel()

	_, err := Violin(nil, violinTestGroups(), &ViolinOptions{Inner: "boxes"})
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestViolin_Names(t *testing.T) {
	t.Parallel()

	_, err := Violin(nil, violinTestGroups(), &ViolinOptions{Names: []string{"pre", "post"}})
	assert.NoError(t, err)

	_, err = Violin(nil, violinTestGroups(), &ViolinOptions{Names: []string{"pre"}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestViolin_Positions(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		ax, err := Violin(nil, violinTestGroups(), nil)
		require.NoError(t, err)
		assert.InDelta(t, -0.5, ax.X.Min, 1e-9)
		assert.InDelta(t, 1.5, ax.X.Max, 1e-9)
	})

	t.Run("single start", func(t *testing.T) {
		t.Parallel()
		ax, err := Violin(nil, violinTestGroups(), &ViolinOptions{Positions: []float64{3}})
		require.NoError(t, err)
		assert.InDelta(t, 2.5, ax.X.Min, 1e-9)
		assert.InDelta(t, 4.5, ax.X.Max, 1e-9)
	})

	t.Run("wrong count", func(t *testing.T) {
		t.Parallel()
		_, err := Violin(nil, violinTestGroups(), &ViolinOptions{Positions: []float64{1, 2, 3}})
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestViolin_NamesAtCustomPositions(t *testing.T) {
	t.Parallel()

	ax, err := Violin(nil, violinTestGroups(), &ViolinOptions{
		Positions: []float64{2, 7},
		Names:     []string{"pre", "post"},
	})
	require.NoError(t, err)

	ticks, ok := ax.X.Tick.Marker.(plot.ConstantTicks)
	require.True(t, ok, "custom positions should pin the name ticks")
	require.Len(t, ticks, 2)
	assert.InDelta(t, 2, ticks[0].Value, 1e-9)
	assert.Equal(t, "pre", ticks[0].Label)
	assert.InDelta(t, 7, ticks[1].Value, 1e-9)
	assert.Equal(t, "post", ticks[1].Label)
}

func TestViolin_JoinObservations(t *testing.T) {
	t.Parallel()

	_, err := Violin(nil, violinTestGroups(), &ViolinOptions{JoinObservations: true})
	assert.NoError(t, err)

	ragged := [][]float64{{1, 2, 3}, {1, 2, 3, 4}}
	_, err = Violin(nil, ragged, &ViolinOptions{JoinObservations: true})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestViolin_TooFewValues(t *testing.T) {
	t.Parallel()

	_, err := Violin(nil, [][]float64{{1}}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
