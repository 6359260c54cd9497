// Package dataset loads numeric matrices with column names from CSV files
// and SQLite databases, for the statplot CLI and server.
package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	_ "modernc.org/sqlite"
)

var nan = math.NaN()

// Table is a set of named numeric columns of equal length.
type Table struct {
	Names   []string
	Columns [][]float64
}

// Rows returns the number of values per column.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	for i, n := range t.Names {
		if n == name {
			return t.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("no column %q", name)
}

// ReadCSV parses a CSV stream whose first record is the header and whose
// remaining records are numeric.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{
		Names:   header,
		Columns: make([][]float64, len(header)),
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(rec), len(header))
		}
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
			}
			t.Columns[i] = append(t.Columns[i], v)
		}
	}
	if t.Rows() == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return t, nil
}

// LoadCSV reads a CSV file.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadSQLite runs query against the SQLite database at path and collects
// the numeric result columns. NULLs become NaN.
func LoadSQLite(path, query string) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := &Table{
		Names:   names,
		Columns: make([][]float64, len(names)),
	}
	vals := make([]sql.NullFloat64, len(names))
	dest := make([]any, len(names))
	for i := range vals {
		dest[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		for i, v := range vals {
			f := nan
			if v.Valid {
				f = v.Float64
			}
			t.Columns[i] = append(t.Columns[i], f)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if t.Rows() == 0 {
		return nil, fmt.Errorf("query returned no rows")
	}
	return t, nil
}
