// Command statplot-server serves interactive HTML charts of a dataset.
// It exposes a small dashboard plus one endpoint per chart so the charts
// can be iframed or fetched directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/banshee-data/statplot"
	"github.com/banshee-data/statplot/internal/dataset"
	"github.com/banshee-data/statplot/internal/httputil"
	"github.com/banshee-data/statplot/internal/version"
)

var (
	listen  = flag.String("listen", ":8080", "address to listen on")
	csvPath = flag.String("csv", "", "CSV file with a header row of column names")
	dbPath  = flag.String("db", "", "SQLite database to load instead of a CSV")
	query   = flag.String("query", "", "query producing numeric columns (with -db)")
)

type server struct {
	table *dataset.Table
}

func main() {
	flag.Parse()
	log.Printf("statplot-server %s", version.String())

	var (
		table *dataset.Table
		err   error
	)
	switch {
	case *csvPath != "":
		table, err = dataset.LoadCSV(*csvPath)
	case *dbPath != "":
		if *query == "" {
			log.Fatal("-db requires -query")
		}
		table, err = dataset.LoadSQLite(*dbPath, *query)
	default:
		log.Fatal("need -csv or -db")
	}
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	s := &server{table: table}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.dashboardHandler)
	mux.HandleFunc("/timeseries", s.timeseriesHandler)
	mux.HandleFunc("/corr", s.corrHandler)
	mux.HandleFunc("/api/summary", s.summaryHandler)

	log.Printf("serving %d columns x %d rows on %s", len(table.Names), table.Rows(), *listen)
	log.Fatal(http.ListenAndServe(*listen, mux))
}

func (s *server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>statplot</title></head>
<body style="background:#111;color:#eee;font-family:sans-serif">
<h1>statplot</h1>
<iframe src="/timeseries" width="940" height="540" frameborder="0"></iframe>
<iframe src="/corr" width="740" height="740" frameborder="0"></iframe>
</body></html>`)
}

// timeseriesHandler renders the bootstrap band chart. Query params:
//   - nboot (default 2000, capped at 20000 to keep requests quick)
//   - ci_lo, ci_hi percentile bounds (default 16, 84)
//   - seed
func (s *server) timeseriesHandler(w http.ResponseWriter, r *http.Request) {
	nboot := intParam(r, "nboot", 2000)
	if nboot > 20000 {
		nboot = 20000
	}
	o := &statplot.TimeSeriesOptions{
		NBoot: nboot,
		CI:    [2]float64{floatParam(r, "ci_lo", 16), floatParam(r, "ci_hi", 84)},
		Seed:  uint64(intParam(r, "seed", 0)),
	}

	x := make([]float64, s.table.Rows())
	for i := range x {
		x[i] = float64(i)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statplot.HTMLTimeSeries(w, x, s.table.Columns, o); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("render chart: %v", err))
	}
}

// corrHandler renders the correlation heatmap. Query params:
//   - nperm (default 1000), seed
//   - tail: both, upper or lower
func (s *server) corrHandler(w http.ResponseWriter, r *http.Request) {
	o := &statplot.CorrMatrixOptions{
		Names: s.table.Names,
		NPerm: intParam(r, "nperm", 1000),
		Seed:  uint64(intParam(r, "seed", 0)),
	}
	if tail := r.URL.Query().Get("tail"); tail != "" {
		o.Tail = statplot.Tail(tail)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statplot.HTMLCorrMatrix(w, s.table.Columns, o); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("render chart: %v", err))
	}
}

// summaryHandler returns per-column descriptive statistics as JSON.
func (s *server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"rows":    s.table.Rows(),
		"columns": s.table.Summary(),
	})
}

func intParam(r *http.Request, name string, def int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

func floatParam(r *http.Request, name string, def float64) float64 {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return def
}
