package notebook

import (
	"strings"

	"github.com/ghssrc/survey-viewer/internal/model"
)

// Section is one rendered cell: a label and the cell's concatenated source
type Section struct {
	Type  model.CellType
	Label string
	Body  string
}

// Render returns one section per markdown or code cell, in document order.
// Other cell types are skipped.
func Render(nb *model.Notebook) []Section {
	sections := make([]Section, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		label, ok := labelFor(c.Type)
		if !ok {
			continue
		}
		sections = append(sections, Section{Type: c.Type, Label: label, Body: c.Text()})
	}
	return sections
}

// Text renders the whole notebook as plain text. Each section is the label
// on its own line followed by the source and a blank line.
func Text(nb *model.Notebook) string {
	var b strings.Builder
	for _, s := range Render(nb) {
		b.WriteString("\n")
		b.WriteString(s.Label)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}
	return b.String()
}

func labelFor(ct model.CellType) (string, bool) {
	switch ct {
	case model.CellMarkdown:
		return MarkdownLabel, true
	case model.CellCode:
		return CodeLabel, true
	default:
		return "", false
	}
}
