// Package notebook loads Jupyter notebook documents and turns them into the
// labelled plain-text sections shown by the overview and journal screens.
package notebook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ghssrc/survey-viewer/internal/model"
)

// Section labels
const (
	MarkdownLabel = "--- Markdown Cell ---"
	CodeLabel     = "--- Code Cell ---"
)

type document struct {
	Cells []cell `json:"cells"`
}

type cell struct {
	CellType string     `json:"cell_type"`
	Source   sourceText `json:"source"`
}

// sourceText accepts both forms nbformat allows for cell source: a list of
// lines or a single string.
type sourceText []string

func (s *sourceText) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*s = lines
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("cell source must be a string or list of strings")
	}
	*s = []string{text}
	return nil
}

// Load reads the notebook file at path
func Load(path string) (*model.Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open notebook: %w", err)
	}
	defer f.Close()

	nb, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read notebook %s: %w", path, err)
	}
	return nb, nil
}

// Read decodes a notebook document
func Read(r io.Reader) (*model.Notebook, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode notebook: %w", err)
	}

	nb := &model.Notebook{Cells: make([]model.Cell, 0, len(doc.Cells))}
	for _, c := range doc.Cells {
		nb.Cells = append(nb.Cells, model.Cell{
			Type:   model.CellType(c.CellType),
			Source: c.Source,
		})
	}
	return nb, nil
}
