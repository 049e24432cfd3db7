package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghssrc/survey-viewer/internal/model"
)

// TimestampColumn is dropped from the table view when present
const TimestampColumn = "Timestamp"

const utf8BOM = "\ufeff"

var (
	// ErrEmpty is returned when the file has no header row
	ErrEmpty = errors.New("dataset has no header row")

	// ErrRaggedRow is returned when a row has more fields than the header
	ErrRaggedRow = errors.New("row has more fields than header")

	// ErrMissingColumn is returned when a required column is absent
	ErrMissingColumn = errors.New("column not found")
)

// LoadTable reads the CSV file at path and drops the Timestamp column
func LoadTable(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return DropColumn(table, TimestampColumn), nil
}

// ReadTable parses CSV with a header row. Short rows are padded with empty
// cells; rows longer than the header are rejected.
func ReadTable(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := &model.Table{Columns: header}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		line++

		if len(record) > len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d: %w", line, len(record), len(header), ErrRaggedRow)
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// DropColumn returns a copy of table without the named column. The table is
// returned unchanged when the column is absent.
func DropColumn(table *model.Table, name string) *model.Table {
	idx := table.ColumnIndex(name)
	if idx < 0 {
		return table
	}

	out := &model.Table{
		Columns: without(table.Columns, idx),
		Rows:    make([][]string, 0, len(table.Rows)),
	}
	for _, row := range table.Rows {
		out.Rows = append(out.Rows, without(row, idx))
	}
	return out
}

func without(values []string, idx int) []string {
	out := make([]string, 0, len(values))
	out = append(out, values[:idx]...)
	if idx < len(values) {
		out = append(out, values[idx+1:]...)
	}
	return out
}
