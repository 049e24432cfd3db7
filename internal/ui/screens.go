package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ghssrc/survey-viewer/internal/dataset"
	"github.com/ghssrc/survey-viewer/internal/model"
	"github.com/ghssrc/survey-viewer/internal/notebook"
	"github.com/ghssrc/survey-viewer/internal/stats"
)

// Screen bodies. Buttons are added by the navigator from the transition
// table; builders only produce what sits above them.

func (n *Navigator) buildHome() (fyne.CanvasObject, error) {
	body := container.NewVBox()
	if n.opts.Logo != nil {
		body.Add(container.NewCenter(n.opts.Logo.Image()))
	}
	body.Add(n.heading(KeyHomeHeading))
	body.Add(n.description(KeyHomeDescription))
	return body, nil
}

func (n *Navigator) buildMenu() (fyne.CanvasObject, error) {
	return headingText(n.text(KeyMenuHeading), SubHeadingTextSize), nil
}

func (n *Navigator) buildDataMenu() (fyne.CanvasObject, error) {
	return n.heading(KeyDataMenuHeading), nil
}

func (n *Navigator) buildProject() (fyne.CanvasObject, error) {
	return container.NewVBox(
		n.heading(KeyProjectTitle),
		n.description(KeyProjectDescription),
	), nil
}

func (n *Navigator) buildRawData() (fyne.CanvasObject, error) {
	table, err := dataset.LoadTable(n.opts.Settings.DatasetPath)
	if err != nil {
		return nil, err
	}
	n.log.Debug().
		Int("columns", len(table.Columns)).
		Int("rows", table.RowCount()).
		Msg("dataset loaded")
	return newDataTable(table), nil
}

func (n *Navigator) buildDataVis() (fyne.CanvasObject, error) {
	sample, err := dataset.LoadSample(n.opts.Settings.DatasetPath)
	if err != nil {
		return nil, err
	}

	fig, err := n.opts.Plot.Build(sample)
	if err != nil {
		return nil, err
	}

	event := n.log.Info().
		Int("pairs", sample.Len()).
		Int("excluded", sample.Excluded)
	if fig.StatErr != nil {
		event = event.AnErr("stat_error", fig.StatErr)
	} else {
		event = event.
			Float64("r", fig.Correlation.R).
			Float64("p", fig.Correlation.P).
			Bool("significant", fig.Correlation.IsSignificant(stats.SignificanceLevel))
	}
	event.Msg("correlation computed")

	summary := fmt.Sprintf(n.text(KeySampleSummary), sample.Len(), sample.Total, sample.Excluded)
	if fig.StatErr != nil {
		summary += MiddleDotSeparator + n.text(KeyStatisticsUndefined)
	}
	return newPlotView(fig, summary), nil
}

func (n *Navigator) buildOverview() (fyne.CanvasObject, error) {
	return n.buildNotebook(n.opts.Settings.OverviewPath)
}

func (n *Navigator) buildJournal() (fyne.CanvasObject, error) {
	return n.buildNotebook(n.opts.Settings.JournalPath)
}

func (n *Navigator) buildNotebook(path string) (fyne.CanvasObject, error) {
	nb, err := notebook.Load(path)
	if err != nil {
		return nil, err
	}
	n.log.Debug().
		Str("path", path).
		Int("markdown", nb.CountByType(model.CellMarkdown)).
		Int("code", nb.CountByType(model.CellCode)).
		Msg("notebook loaded")
	return newNotebookView(notebook.Render(nb)), nil
}

func (n *Navigator) buildError() (fyne.CanvasObject, error) {
	detail := ""
	if n.lastErr != nil {
		detail = n.lastErr.Error()
	}
	return container.NewVBox(
		n.heading(KeyErrorHeading),
		newErrorDetail(detail),
	), nil
}

func (n *Navigator) heading(key string) fyne.CanvasObject {
	return headingText(n.text(key), HeadingTextSize)
}

func (n *Navigator) description(key string) fyne.CanvasObject {
	return plainText(n.text(key), BodyTextSize)
}
