package statplot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/statplot/internal/resample"
)

// Diverging blue-white-red ramp for correlation heatmaps.
var corrRamp = []string{
	"#313695", "#4575b4", "#74add1", "#abd9e9", "#e0f3f8",
	"#ffffbf", "#fee090", "#fdae61", "#f46d43", "#d73027", "#a50026",
}

// HTMLTimeSeries renders the TimeSeries statistics as an interactive HTML
// line chart: the central trace plus dashed bootstrap CI bounds.
func HTMLTimeSeries(w io.Writer, x []float64, data [][]float64, o *TimeSeriesOptions) error {
	if o == nil {
		o = &TimeSeriesOptions{}
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: no observations", ErrShapeMismatch)
	}
	for i, row := range data {
		if len(row) != len(x) {
			return fmt.Errorf("%w: observation %d has %d timepoints, x has %d",
				ErrShapeMismatch, i, len(row), len(x))
		}
	}
	ci := o.CI
	if ci == [2]float64{} {
		ci = [2]float64{16, 84}
	}
	if ci[0] >= ci[1] || ci[0] < 0 || ci[1] > 100 {
		return fmt.Errorf("%w: ci percentiles %v", ErrBadRange, ci)
	}
	nboot := o.NBoot
	if nboot <= 0 {
		nboot = 10000
	}
	central := o.Central
	if central == nil {
		central = resample.Mean
	}

	boot := resample.Bootstrap(data, nboot, o.Smooth, central, o.Seed)
	low, high := resample.Percentiles(boot, ci[0], ci[1])
	mid := resample.ColumnStat(data, central)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Timeseries", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Timeseries",
			Subtitle: fmt.Sprintf("n=%d observations, %d bootstrap iterations, CI %g-%g", len(data), nboot, ci[0], ci[1]),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xlabels := make([]string, len(x))
	for i, v := range x {
		xlabels[i] = fmt.Sprintf("%g", v)
	}
	line.SetXAxis(xlabels).
		AddSeries("central", lineData(mid)).
		AddSeries(fmt.Sprintf("p%g", ci[0]), lineData(low),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Opacity: opts.Float(0.5)})).
		AddSeries(fmt.Sprintf("p%g", ci[1]), lineData(high),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Opacity: opts.Float(0.5)}))

	return line.Render(w)
}

// HTMLCorrMatrix renders the correlation matrix of data (variables x
// observations) as an interactive HTML heatmap with a diverging visual map
// and star-annotated tooltips.
func HTMLCorrMatrix(w io.Writer, data [][]float64, o *CorrMatrixOptions) error {
	if o == nil {
		o = &CorrMatrixOptions{}
	}
	corr, pvals, vmin, vmax, err := corrStats(data, o)
	if err != nil {
		return err
	}
	nvars := corr.SymmetricDim()

	names := o.Names
	if names == nil {
		names = make([]string, nvars)
		for i := range names {
			names[i] = fmt.Sprintf("var%d", i)
		}
	}

	cells := make([]opts.HeatMapData, 0, nvars*nvars)
	for i := 0; i < nvars; i++ {
		for j := 0; j < nvars; j++ {
			label := fmt.Sprintf("%.3g", corr.At(i, j))
			if pvals != nil && i != j {
				label += SigStars(pvals.At(i, j))
			}
			cells = append(cells, opts.HeatMapData{
				Name:  label,
				Value: [3]interface{}{j, nvars - 1 - i, corr.At(i, j)},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Correlation matrix", Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Correlation matrix"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      names,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      reversed(names),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(vmin),
			Max:        float32(vmax),
			InRange:    &opts.VisualMapInRange{Color: corrRamp},
		}),
	)
	hm.AddSeries("r", cells)

	return hm.Render(w)
}

func lineData(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func reversed(names []string) []string {
	out := make([]string, len(names))
	for i, s := range names {
		out[len(names)-1-i] = s
	}
	return out
}
