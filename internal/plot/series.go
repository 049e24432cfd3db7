package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ghssrc/survey-viewer/internal/stats"
)

// projector maps data coordinates onto the plot canvas.
type projector struct {
	box    chart.Box
	xrange chart.Range
	yrange chart.Range
}

func (p projector) x(v float64) int {
	return p.box.Left + p.xrange.Translate(v)
}

func (p projector) y(v float64) int {
	return p.box.Bottom - p.yrange.Translate(v)
}

// histogramSeries paints one filled cell per histogram bin.
type histogramSeries struct {
	hist *stats.Histogram2D
}

func (hs histogramSeries) GetName() string           { return "histogram" }
func (hs histogramSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (hs histogramSeries) GetStyle() chart.Style     { return chart.Style{} }
func (hs histogramSeries) Validate() error           { return nil }

func (hs histogramSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	p := projector{box: canvasBox, xrange: xrange, yrange: yrange}
	h := hs.hist

	for i := 0; i < h.Bins(); i++ {
		for j := 0; j < h.Bins(); j++ {
			t := 0.0
			if h.Max > 0 {
				t = float64(h.Counts[i][j]) / float64(h.Max)
			}
			fill := Blues(t)

			r.SetFillColor(fill)
			r.SetStrokeColor(fill)
			r.SetStrokeWidth(1)
			x0, x1 := p.x(h.XEdges[i]), p.x(h.XEdges[i+1])
			y0, y1 := p.y(h.YEdges[j]), p.y(h.YEdges[j+1])
			r.MoveTo(x0, y0)
			r.LineTo(x1, y0)
			r.LineTo(x1, y1)
			r.LineTo(x0, y1)
			r.Close()
			r.FillStroke()
		}
	}
}

// scatterSeries draws one marker per sample point.
type scatterSeries struct {
	x, y   []float64
	radius float64
}

var (
	markerFill   = drawing.Color{R: 255, G: 255, B: 255, A: 153}
	markerStroke = drawing.Color{R: 0, G: 0, B: 0, A: 153}
)

func (ss scatterSeries) GetName() string           { return "scatter" }
func (ss scatterSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ss scatterSeries) GetStyle() chart.Style     { return chart.Style{} }
func (ss scatterSeries) Validate() error           { return nil }

func (ss scatterSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	p := projector{box: canvasBox, xrange: xrange, yrange: yrange}

	r.SetFillColor(markerFill)
	r.SetStrokeColor(markerStroke)
	r.SetStrokeWidth(1)
	for i := range ss.x {
		r.Circle(ss.radius, p.x(ss.x[i]), p.y(ss.y[i]))
		r.FillStroke()
	}
}

// regionSeries outlines a rectangle in data coordinates with a dashed line.
type regionSeries struct {
	x, y  stats.Range
	color drawing.Color
}

func (rs regionSeries) GetName() string           { return "region" }
func (rs regionSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (rs regionSeries) GetStyle() chart.Style     { return chart.Style{} }
func (rs regionSeries) Validate() error           { return nil }

func (rs regionSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	p := projector{box: canvasBox, xrange: xrange, yrange: yrange}

	r.SetStrokeColor(rs.color)
	r.SetStrokeWidth(2)
	r.SetStrokeDashArray([]float64{8, 5})
	r.MoveTo(p.x(rs.x.Min), p.y(rs.y.Min))
	r.LineTo(p.x(rs.x.Max), p.y(rs.y.Min))
	r.LineTo(p.x(rs.x.Max), p.y(rs.y.Max))
	r.LineTo(p.x(rs.x.Min), p.y(rs.y.Max))
	r.Close()
	r.Stroke()
	r.SetStrokeDashArray(nil)
}
