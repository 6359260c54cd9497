package statplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLTimeSeries(t *testing.T) {
	t.Parallel()
	x, data := tsTestData()

	var buf bytes.Buffer
	err := HTMLTimeSeries(&buf, x, data, &TimeSeriesOptions{NBoot: 50})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "central")
	assert.Contains(t, html, "p16")
	assert.Contains(t, html, "p84")
	assert.Contains(t, html, "dashed", "CI bound series should carry the dashed line style")
}

func TestHTMLTimeSeries_ShapeMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := HTMLTimeSeries(&buf, []float64{0, 1}, [][]float64{{1, 2, 3}}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestHTMLCorrMatrix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := HTMLCorrMatrix(&buf, corrTestData(), &CorrMatrixOptions{
		Names: []string{"alpha", "beta", "gamma"},
		NPerm: 50,
	})
	require.NoError(t, err)

	html := buf.String()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		assert.True(t, strings.Contains(html, name), "missing %q in rendered chart", name)
	}
}

func TestHTMLCorrMatrix_Shape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := HTMLCorrMatrix(&buf, [][]float64{{1, 2, 3}}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Zero(t, buf.Len())
}
