package model

// Table is the survey dataset as read from disk: ordered column names and
// rows of verbatim cell values, one per column.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows (the header is not counted)
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the value at row/col, or "" when out of range
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Sample is the paired, numerically coerced subset of two dataset columns.
// X[i] and Y[i] come from the same row.
type Sample struct {
	XName    string
	YName    string
	X        []float64
	Y        []float64
	Total    int // rows inspected
	Excluded int // rows dropped because either value was missing
}

// Len returns the number of paired values
func (s *Sample) Len() int {
	return len(s.X)
}

// Correlation holds a Pearson correlation result
type Correlation struct {
	R float64 // coefficient in [-1, 1]
	P float64 // two-tailed p-value in [0, 1]
	N int     // number of pairs used
}

// IsSignificant reports whether P is below alpha
func (c Correlation) IsSignificant(alpha float64) bool {
	return c.P < alpha
}
