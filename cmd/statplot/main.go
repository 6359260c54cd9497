// Command statplot renders a statistical plot of a CSV or SQLite dataset
// to a PNG, SVG or PDF file.
//
// Examples:
//
//	statplot -csv scores.csv -plot corr -out corr.png
//	statplot -csv traces.csv -plot ts -x time -out band.png
//	statplot -db metrics.db -query "SELECT speed, magnitude FROM data" -plot reg -x speed -y magnitude -out reg.svg
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/statplot"
	"github.com/banshee-data/statplot/internal/dataset"
	"github.com/banshee-data/statplot/internal/palette"
	"github.com/banshee-data/statplot/internal/version"
)

var (
	csvPath = flag.String("csv", "", "CSV file with a header row of column names")
	dbPath  = flag.String("db", "", "SQLite database to load instead of a CSV")
	query   = flag.String("query", "", "query producing numeric columns (with -db)")
	kind    = flag.String("plot", "kde", "plot type: ts, reg, box, kde, violin, corr")
	out     = flag.String("out", "plot.png", "output file (.png, .svg or .pdf)")
	width   = flag.Float64("width", 8, "plot width in inches")
	height  = flag.Float64("height", 6, "plot height in inches")
	xcol    = flag.String("x", "", "x column (ts, reg) or sample column (kde)")
	ycol    = flag.String("y", "", "y column (reg)")
	nboot   = flag.Int("nboot", 10000, "bootstrap iterations (ts)")
	hexClr  = flag.String("color", "", "hex color like #4c72b0 (ts, reg, kde)")
	seed    = flag.Uint64("seed", 0, "seed for bootstrap and permutation tests")
	showVer = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("statplot", version.String())
		os.Exit(0)
	}

	table, err := loadTable()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	ax, err := render(table)
	if err != nil {
		log.Fatalf("render %s plot: %v", *kind, err)
	}

	if err := ax.Save(vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch, *out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}

func loadTable() (*dataset.Table, error) {
	switch {
	case *csvPath != "":
		return dataset.LoadCSV(*csvPath)
	case *dbPath != "":
		if *query == "" {
			log.Fatal("-db requires -query")
		}
		return dataset.LoadSQLite(*dbPath, *query)
	}
	log.Fatal("need -csv or -db")
	return nil, nil
}

func render(t *dataset.Table) (*plot.Plot, error) {
	var clr color.Color
	if *hexClr != "" {
		var err error
		clr, err = palette.ParseHex(*hexClr)
		if err != nil {
			return nil, err
		}
	}

	switch *kind {
	case "ts":
		x, rest, err := splitX(t)
		if err != nil {
			return nil, err
		}
		return statplot.TimeSeries(nil, x, rest, &statplot.TimeSeriesOptions{NBoot: *nboot, Seed: *seed, Color: clr})

	case "reg":
		x, err := t.Column(*xcol)
		if err != nil {
			return nil, err
		}
		y, err := t.Column(*ycol)
		if err != nil {
			return nil, err
		}
		return statplot.Regression(nil, x, y, &statplot.RegressionOptions{XLabel: *xcol, YLabel: *ycol, Color: clr})

	case "box":
		return statplot.Box(nil, t.Columns, &statplot.BoxOptions{
			Names:  t.Names,
			Colors: statplot.GroupColors(len(t.Columns)),
		})

	case "kde":
		sample := t.Columns[0]
		if *xcol != "" {
			var err error
			sample, err = t.Column(*xcol)
			if err != nil {
				return nil, err
			}
		}
		return statplot.KDE(nil, sample, &statplot.KDEOptions{Hist: true, Rug: true, Color: clr})

	case "violin":
		return statplot.Violin(nil, t.Columns, &statplot.ViolinOptions{
			Names:  t.Names,
			Colors: statplot.GroupColors(len(t.Columns)),
		})

	case "corr":
		return statplot.CorrMatrix(nil, t.Columns, &statplot.CorrMatrixOptions{
			Names: t.Names,
			Seed:  *seed,
		})
	}
	log.Fatalf("unknown plot type %q", *kind)
	return nil, nil
}

// splitX separates the x column from the observation columns; without -x
// the x axis is the row index.
func splitX(t *dataset.Table) (x []float64, rest [][]float64, err error) {
	if *xcol == "" {
		x = make([]float64, t.Rows())
		for i := range x {
			x[i] = float64(i)
		}
		return x, t.Columns, nil
	}
	x, err = t.Column(*xcol)
	if err != nil {
		return nil, nil, err
	}
	for i, name := range t.Names {
		if name != *xcol {
			rest = append(rest, t.Columns[i])
		}
	}
	return x, rest, nil
}
