// Package dataset loads survey CSV files into an ordered, read-only column set.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column is a named column of a dataset. A column is numeric when every cell parses as a float.
type Column struct {
	Name    string
	cells   []string
	numbers []float64
}

// Numeric reports whether every cell of the column parsed as a float.
func (c *Column) Numeric() bool {
	return c.numbers != nil || len(c.cells) == 0
}

// Dataset is an ordered sequence of columns sharing the same row count.
type Dataset struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// Load reads the CSV file at path and checks that every required column is present.
func Load(path string, required []string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "csv file not found: %s", path)
		}

		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	ds, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	if missing := ds.Missing(required); len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Missing: missing}
	}

	return ds, nil
}

// Read parses CSV content whose first record is the header.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, errors.Wrap(err, "unable to read header")
	}

	ds := &Dataset{
		columns: make([]*Column, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		ds.columns[i] = &Column{Name: name}
		if _, ok := ds.index[name]; !ok {
			ds.index[name] = i
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read row %d", ds.rows+1)
		}
		for i, cell := range record {
			ds.columns[i].cells = append(ds.columns[i].cells, strings.TrimSpace(cell))
		}
		ds.rows++
	}

	for _, col := range ds.columns {
		col.numbers = parseNumbers(col.cells)
	}

	return ds, nil
}

func parseNumbers(cells []string) []float64 {
	if len(cells) == 0 {
		return nil
	}
	numbers := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil
		}
		numbers[i] = v
	}

	return numbers
}

// Missing returns the names in required that the dataset does not have, in the requested order.
func (ds *Dataset) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := ds.index[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// Columns returns the column names in file order.
func (ds *Dataset) Columns() []string {
	names := make([]string, len(ds.columns))
	for i, col := range ds.columns {
		names[i] = col.Name
	}

	return names
}

// Len returns the number of data rows.
func (ds *Dataset) Len() int {
	return ds.rows
}

// Column returns the named column.
func (ds *Dataset) Column(name string) (*Column, error) {
	i, ok := ds.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColumn, "column %q", name)
	}

	return ds.columns[i], nil
}

// Strings returns a copy of the cell text of the named column.
func (ds *Dataset) Strings(name string) ([]string, error) {
	col, err := ds.Column(name)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), col.cells...), nil
}

// Floats returns a copy of the values of the named numeric column.
func (ds *Dataset) Floats(name string) ([]float64, error) {
	col, err := ds.Column(name)
	if err != nil {
		return nil, err
	}
	if !col.Numeric() {
		return nil, &NotNumericError{Column: name}
	}

	return append(make([]float64, 0, len(col.numbers)), col.numbers...), nil
}

// Rows returns the cell text row by row, in column order.
func (ds *Dataset) Rows() [][]string {
	rows := make([][]string, ds.rows)
	for r := range rows {
		row := make([]string, len(ds.columns))
		for c, col := range ds.columns {
			row[c] = col.cells[r]
		}
		rows[r] = row
	}

	return rows
}
