package analyzer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyFile is returned when an uploaded file has no header row.
var ErrEmptyFile = errors.New("empty file")

// Table is a feedback table of named text columns. Cells that are empty in the
// source are null. A Table is not modified after it is read.
type Table struct {
	columns []string
	rows    [][]Cell
}

// Cell is a single table value. Valid is false for null cells.
type Cell struct {
	Value string
	Valid bool
}

// ReadTableFile opens path and reads it as CSV.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// ReadTable parses CSV with a header row. Rows shorter than the header are padded
// with nulls; a row longer than the header is an error.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &Table{columns: headerNames(header)}
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) > len(t.columns) {
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", rowNum, len(t.columns), len(record))
		}
		row := make([]Cell, len(t.columns))
		for i, v := range record {
			if strings.TrimSpace(v) != "" {
				row[i] = Cell{Value: v, Valid: true}
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// headerNames cleans header cells, naming blank ones "Unnamed: i" and
// suffixing duplicates with ".1", ".2" and so on.
func headerNames(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	next := make(map[string]int)
	for i, cell := range header {
		name := cleanCell(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			base := name
			for {
				next[base]++
				name = fmt.Sprintf("%s.%d", base, next[base])
				if !used[name] {
					break
				}
			}
		}
		used[name] = true
		out[i] = name
	}
	return out
}

func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// ColumnTexts returns the non-null values of column i in row order.
func (t *Table) ColumnTexts(i int) []string {
	if i < 0 || i >= len(t.columns) {
		return nil
	}
	out := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		if row[i].Valid {
			out = append(out, row[i].Value)
		}
	}
	return out
}

// Head returns up to n rows as strings, with null cells rendered empty.
func (t *Table) Head(n int) [][]string {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.columns))
		for j, c := range t.rows[i] {
			row[j] = c.Value
		}
		out[i] = row
	}
	return out
}
