package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ghssrc/survey-viewer/internal/model"
)

// Column names used by the correlation view
const (
	LearnColumn = "RoomLearn"
	DecorColumn = "RoomDecor"
)

// ExtractSample coerces two columns to numbers and keeps only the rows where
// both values are present. Empty, unparseable and non-finite values count as
// missing.
func ExtractSample(table *model.Table, xName, yName string) (*model.Sample, error) {
	xi := table.ColumnIndex(xName)
	if xi < 0 {
		return nil, fmt.Errorf("%s: %w", xName, ErrMissingColumn)
	}
	yi := table.ColumnIndex(yName)
	if yi < 0 {
		return nil, fmt.Errorf("%s: %w", yName, ErrMissingColumn)
	}

	sample := &model.Sample{
		XName: xName,
		YName: yName,
		Total: table.RowCount(),
	}
	for row := range table.Rows {
		x, okX := ToNumeric(table.Cell(row, xi))
		y, okY := ToNumeric(table.Cell(row, yi))
		if !okX || !okY {
			sample.Excluded++
			continue
		}
		sample.X = append(sample.X, x)
		sample.Y = append(sample.Y, y)
	}

	return sample, nil
}

// LoadSample reads the dataset at path and extracts the learn/decor sample
func LoadSample(path string) (*model.Sample, error) {
	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	return ExtractSample(table, LearnColumn, DecorColumn)
}

// ToNumeric parses a cell as a finite decimal float. Hexadecimal floats and
// underscore digit separators are Go syntax, not survey data, and count as
// missing.
func ToNumeric(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
