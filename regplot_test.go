package statplot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestRegression_ReturnsAxis(t *testing.T) {
	t.Parallel()
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2.1, 3.9, 6.2, 8.1, 9.8}

	ax := plot.New()
	got, err := Regression(ax, x, y, &RegressionOptions{XLabel: "dose", YLabel: "response"})
	require.NoError(t, err)
	assert.Same(t, ax, got)
	assert.Equal(t, "dose", got.X.Label.Text)
	assert.Equal(t, "response", got.Y.Label.Text)
	assert.True(t, strings.HasPrefix(got.Title.Text, "r = "), "title %q", got.Title.Text)
}

func TestRegression_ShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := Regression(nil, []float64{1, 2, 3}, []float64{1, 2}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Regression(nil, []float64{1}, []float64{1}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPearsonR(t *testing.T) {
	t.Parallel()

	t.Run("perfect positive", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{2, 4, 6, 8, 10}
		r, p := PearsonR(x, y)
		assert.InDelta(t, 1, r, 1e-9)
		assert.InDelta(t, 0, p, 1e-9)
	})

	t.Run("perfect negative", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{5, 4, 3, 2, 1}
		r, _ := PearsonR(x, y)
		assert.InDelta(t, -1, r, 1e-9)
	})

	t.Run("noisy positive", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
		y := []float64{1.2, 2.1, 2.8, 4.3, 4.9, 6.2, 6.8, 8.1}
		r, p := PearsonR(x, y)
		assert.Greater(t, r, 0.95)
		assert.Less(t, p, 0.001)
		assert.Greater(t, p, 0.0)
	})

	t.Run("two points", func(t *testing.T) {
		t.Parallel()
		r, p := PearsonR([]float64{1, 2}, []float64{3, 4})
		assert.InDelta(t, 1, r, 1e-9)
		assert.False(t, math.IsNaN(p))
	})
}

func TestRegression_CustomCorr(t *testing.T) {
	t.Parallel()
	called := false
	corr := func(x, y []float64) (float64, float64) {
		called = true
		return 0.5, 0.2
	}

	ax, err := Regression(nil, []float64{1, 2, 3}, []float64{1, 2, 3}, &RegressionOptions{Corr: corr})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "r = 0.500; p = 0.2", ax.Title.Text)
}
