package statplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

var kdeTestSample = []float64{0.1, 0.4, 0.35, 0.8, 0.6, 0.55, 0.2, 0.7}

func TestKDE_ReturnsAxis(t *testing.T) {
	t.Parallel()

	ax := plot.New()
	got, err := KDE(ax, kdeTestSample, nil)
	require.NoError(t, err)
	assert.Same(t, ax, got)
}

func TestKDE_AllDecorations(t *testing.T) {
	t.Parallel()

	_, err := KDE(nil, kdeTestSample, &KDEOptions{
		Hist:  true,
		Rug:   true,
		Shade: true,
		NBins: 5,
		NPts:  200,
	})
	assert.NoError(t, err)
}

func TestKDE_TooFewValues(t *testing.T) {
	t.Parallel()

	_, err := KDE(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = KDE(nil, nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRug_ReturnsAxis(t *testing.T) {
	t.Parallel()

	ax := plot.New()
	got, err := Rug(ax, kdeTestSample, nil)
	require.NoError(t, err)
	assert.Same(t, ax, got)
}

func TestRug_EmptySample(t *testing.T) {
	t.Parallel()

	_, err := Rug(nil, nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRug_OnFreshAxis(t *testing.T) {
	t.Parallel()

	// A fresh axis has no y range yet; the rug must still pick a
	// finite tick height.
	_, err := Rug(nil, []float64{1, 2, 3}, nil)
	assert.NoError(t, err)
}
