// Package dataset provides the in-memory sample table consumed by training
// and validation. Every row concatenates the sample's inputs with its target
// outputs; how many leading columns are inputs is decided by the caller at
// training time, not stored in the table.
package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Table is an ordered, rectangular collection of samples. It takes ownership
// of the row slices handed to New.
type Table struct {
	rows [][]float64
	cols int
}

// New builds a table from raw rows. Every row must have the same nonzero
// width and there must be at least one row.
func New(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("dataset: no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("dataset: rows are empty")
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("dataset: row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	return &Table{rows: rows, cols: cols}, nil
}

// LoadCSV reads a table from a CSV file in which every column is numeric.
// hasHeader skips the first line if true.
func LoadCSV(path string, hasHeader bool) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: opening csv")
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: reading csv")
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.Errorf("dataset: %s has no data rows", path)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset: parsing row %d, col %d", i, j)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return New(rows)
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.rows) }

// Cols returns the row width.
func (t *Table) Cols() int { return t.cols }

// Row returns sample i as the stored slice, inputs and targets concatenated.
func (t *Table) Row(i int) []float64 { return t.rows[i] }

// Sample splits row i into its inputs and targets given the number of
// leading input columns. Both slices are views into the stored row.
func (t *Table) Sample(i, numInputs int) (inputs, targets []float64) {
	row := t.rows[i]
	return row[:numInputs], row[numInputs:]
}

// Split divides the table into two in row order at the given ratio. The
// halves share storage with the original. A ratio at or beyond either end
// returns one empty table.
func (t *Table) Split(ratio float64) (*Table, *Table) {
	if ratio <= 0 {
		return &Table{cols: t.cols}, t
	}
	if ratio >= 1 {
		return t, &Table{cols: t.cols}
	}
	idx := int(float64(len(t.rows)) * ratio)
	return &Table{rows: t.rows[:idx], cols: t.cols},
		&Table{rows: t.rows[idx:], cols: t.cols}
}

// Normalize rescales the first numInputs columns to [0, 1] in place using
// per-column min-max. Constant columns become zero. Columns past the row
// width are ignored, and target columns are never touched.
func (t *Table) Normalize(numInputs int) {
	n := numInputs
	if n > t.cols {
		n = t.cols
	}
	for col := 0; col < n; col++ {
		lo, hi := t.rows[0][col], t.rows[0][col]
		for _, row := range t.rows {
			if row[col] < lo {
				lo = row[col]
			}
			if row[col] > hi {
				hi = row[col]
			}
		}
		span := hi - lo
		for _, row := range t.rows {
			if span != 0 {
				row[col] = (row[col] - lo) / span
			} else {
				row[col] = 0
			}
		}
	}
}
