package model

import "strings"

// CellType tags a notebook cell
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
	CellRaw      CellType = "raw"
)

// String returns the string representation of CellType
func (ct CellType) String() string {
	return string(ct)
}

// Cell is one notebook cell with its source split into lines. Lines keep
// their trailing newlines, as notebook tools store them.
type Cell struct {
	Type   CellType
	Source []string
}

// Text returns the cell source lines concatenated without separators
func (c Cell) Text() string {
	return strings.Join(c.Source, "")
}

// Notebook is an ordered sequence of cells
type Notebook struct {
	Cells []Cell
}

// CountByType returns how many cells have the given type
func (n *Notebook) CountByType(ct CellType) int {
	count := 0
	for _, c := range n.Cells {
		if c.Type == ct {
			count++
		}
	}
	return count
}
