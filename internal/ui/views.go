package ui

import (
	"bytes"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ghssrc/survey-viewer/internal/model"
	"github.com/ghssrc/survey-viewer/internal/notebook"
	"github.com/ghssrc/survey-viewer/internal/plot"
)

// pageLayout centers body and buttons in one column
func pageLayout(body fyne.CanvasObject, buttons []fyne.CanvasObject) fyne.CanvasObject {
	column := container.NewVBox(body, layout.NewSpacer())
	for _, b := range buttons {
		column.Add(b)
	}
	return container.NewCenter(column)
}

// viewLayout gives body the space between heading and the button column
func viewLayout(heading, body fyne.CanvasObject, buttons []fyne.CanvasObject) fyne.CanvasObject {
	top := container.NewPadded(heading)
	bottom := container.NewCenter(container.NewVBox(buttons...))
	return container.NewBorder(top, bottom, nil, nil, body)
}

func newNavButton(label string, tapped func()) *widget.Button {
	return widget.NewButton(label, tapped)
}

// headingText renders each line of text as a bold centered line
func headingText(text string, size float32) fyne.CanvasObject {
	return textLines(text, size, fyne.TextStyle{Bold: true})
}

func plainText(text string, size float32) fyne.CanvasObject {
	return textLines(text, size, fyne.TextStyle{})
}

func textLines(text string, size float32, style fyne.TextStyle) fyne.CanvasObject {
	box := container.NewVBox()
	for _, line := range strings.Split(text, "\n") {
		t := canvas.NewText(line, BrandText)
		t.TextSize = size
		t.TextStyle = style
		t.Alignment = fyne.TextAlignCenter
		box.Add(t)
	}
	return box
}

// newDataTable shows every row of the dataset with the column names as a
// header row
func newDataTable(data *model.Table) *widget.Table {
	table := widget.NewTableWithHeaders(
		func() (int, int) {
			return data.RowCount(), len(data.Columns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(data.Cell(id.Row, id.Col))
		},
	)
	table.ShowHeaderColumn = false
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		label.Truncation = fyne.TextTruncateEllipsis
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if id.Row < 0 && id.Col >= 0 && id.Col < len(data.Columns) {
			label.SetText(data.Columns[id.Col])
			return
		}
		label.SetText("")
	}

	for col := range data.Columns {
		table.SetColumnWidth(col, ColumnWidth)
	}
	return table
}

// Notebook text styles. Themes resolve Monospace before Bold, so the label
// must not be monospaced to render bold.
var (
	notebookLabelStyle = fyne.TextStyle{Bold: true}
	notebookBodyStyle  = fyne.TextStyle{Monospace: true}
)

// notebookSegments turns rendered sections into rich text: a bold label line
// followed by the monospaced cell source
func notebookSegments(sections []notebook.Section) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, 2*len(sections))
	for _, s := range sections {
		segments = append(segments,
			&widget.TextSegment{
				Text:  s.Label,
				Style: widget.RichTextStyle{TextStyle: notebookLabelStyle},
			},
			&widget.TextSegment{
				Text:  s.Body,
				Style: widget.RichTextStyle{TextStyle: notebookBodyStyle},
			},
		)
	}
	return segments
}

func newNotebookView(sections []notebook.Section) fyne.CanvasObject {
	text := widget.NewRichText(notebookSegments(sections)...)
	text.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(text)
}

func newPlotView(fig *plot.Figure, summary string) fyne.CanvasObject {
	img := canvas.NewImageFromReader(bytes.NewReader(fig.PNG), PlotResourceName)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(PlotMinSize, PlotMinSize))

	caption := widget.NewLabelWithStyle(summary, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	return container.NewBorder(nil, caption, nil, nil, img)
}

func newErrorDetail(detail string) fyne.CanvasObject {
	label := widget.NewLabelWithStyle(detail, fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	label.Wrapping = fyne.TextWrapWord
	return container.NewGridWrap(fyne.NewSize(ErrorDetailWidth, ErrorDetailHeight), label)
}
