package plot

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ghssrc/survey-viewer/internal/model"
	"github.com/ghssrc/survey-viewer/internal/stats"
)

// Figure text
const (
	TitleLine1 = "Overlay of Scatter Plot and 2D Histogram"
	TitleLine2 = "Correlation Between Room Decoration and Student Learning"
	XAxisLabel = "Student Learning (10 = fully understands content)"
	YAxisLabel = "Room Decoration (1 = no markers, 10 = style-level artwork)"
	ColorLabel = "Frequency"

	Caption = "Hypothesized zone (5,5 to 10,10)\n" +
		"may indicate clustering or behavioral significance.\n" +
		"• Weak correlation\n" +
		"• Not statistically significant (p ≥ 0.05)"
)

// Figure defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultDPI    = 100
	DefaultBins   = 10
	MarkerRadius  = 4
)

// Layout inside the image
const (
	paddingTop    = 70
	paddingLeft   = 20
	paddingRight  = 110
	paddingBottom = 20
	colorBarWidth = 18
	colorBarSteps = 64
	boxPadding    = 6
	maxColorTicks = 6
)

var (
	highlightColor = drawing.Color{R: 0, G: 255, B: 255, A: 255}
	boxFill        = drawing.Color{R: 255, G: 255, B: 255, A: 204}
	boxStroke      = drawing.Color{R: 0, G: 0, B: 0, A: 204}
	textColor      = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

// Options control the figure geometry
type Options struct {
	Width      int
	Height     int
	DPI        float64
	Bins       int
	HighlightX stats.Range
	HighlightY stats.Range
}

// DefaultOptions returns the fixed 8x8 inch figure at 100 dpi with a 10x10
// grid and the [5,10]x[5,10] highlight.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		DPI:        DefaultDPI,
		Bins:       DefaultBins,
		HighlightX: stats.Range{Min: 5, Max: 10},
		HighlightY: stats.Range{Min: 5, Max: 10},
	}
}

// Figure is a rendered correlation plot and the numbers behind it
type Figure struct {
	PNG         []byte
	Correlation model.Correlation
	StatErr     error // set when the correlation is undefined for the sample
	Histogram   *stats.Histogram2D
	XRange      stats.Range
	YRange      stats.Range
	Points      int
}

// Builder renders correlation figures
type Builder struct {
	opts Options
}

// NewBuilder creates a builder, filling zero options with defaults
func NewBuilder(opts Options) *Builder {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}
	if opts.Bins <= 0 {
		opts.Bins = def.Bins
	}
	if opts.HighlightX.Span() <= 0 {
		opts.HighlightX = def.HighlightX
	}
	if opts.HighlightY.Span() <= 0 {
		opts.HighlightY = def.HighlightY
	}
	return &Builder{opts: opts}
}

// Build computes the statistics for sample and renders the figure. An
// undefined correlation (too few points, constant series) is reported in
// Figure.StatErr and annotated as n/a; only rendering failures return an
// error.
func (b *Builder) Build(sample *model.Sample) (*Figure, error) {
	fig := &Figure{Points: sample.Len()}
	fig.Correlation, fig.StatErr = stats.PearsonSample(sample)

	dataX := stats.DataRange(sample.X)
	dataY := stats.DataRange(sample.Y)
	hist, err := stats.NewHistogram2D(sample.X, sample.Y, b.opts.Bins, dataX, dataY)
	if err != nil {
		return nil, fmt.Errorf("bin sample: %w", err)
	}
	fig.Histogram = hist
	fig.XRange = axisRange(dataX.Union(b.opts.HighlightX))
	fig.YRange = axisRange(dataY.Union(b.opts.HighlightY))

	var series []chart.Series
	if sample.Len() > 0 {
		series = append(series, histogramSeries{hist: hist})
	}
	series = append(series,
		scatterSeries{x: sample.X, y: sample.Y, radius: MarkerRadius},
		regionSeries{x: b.opts.HighlightX, y: b.opts.HighlightY, color: highlightColor},
	)

	ch := chart.Chart{
		Width:  b.opts.Width,
		Height: b.opts.Height,
		DPI:    b.opts.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: paddingTop, Left: paddingLeft, Right: paddingRight, Bottom: paddingBottom},
		},
		XAxis: chart.XAxis{
			Name:  XAxisLabel,
			Range: &chart.ContinuousRange{Min: fig.XRange.Min, Max: fig.XRange.Max},
			Ticks: ticks(fig.XRange),
		},
		YAxis: chart.YAxis{
			Name:  YAxisLabel,
			Range: &chart.ContinuousRange{Min: fig.YRange.Min, Max: fig.YRange.Max},
			Ticks: ticks(fig.YRange),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{
		b.titleElement(),
		textBoxElement(AnnotationText(fig.Correlation, fig.StatErr), 11, true),
		textBoxElement(Caption, 10, false),
		b.colorBarElement(hist.Max),
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render figure: %w", err)
	}
	fig.PNG = buf.Bytes()
	return fig, nil
}

// AnnotationText formats the statistics box
func AnnotationText(c model.Correlation, statErr error) string {
	if statErr != nil {
		return "Pearson r = n/a\nP-value = n/a"
	}
	return fmt.Sprintf("Pearson r = %.3f\nP-value = %.3f", c.R, c.P)
}

// axisRange widens r outward to whole numbers
func axisRange(r stats.Range) stats.Range {
	return stats.Range{Min: math.Floor(r.Min), Max: math.Ceil(r.Max)}
}

func ticks(r stats.Range) []chart.Tick {
	step := 1.0
	for r.Span()/step > 12 {
		step *= 2
	}

	var out []chart.Tick
	for v := r.Min; v <= r.Max+1e-9; v += step {
		out = append(out, chart.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	if last := out[len(out)-1].Value; last < r.Max {
		out = append(out, chart.Tick{Value: r.Max, Label: fmt.Sprintf("%g", r.Max)})
	}
	return out
}

func (b *Builder) titleElement() chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		applyFont(r, defaults, 14)
		center := b.opts.Width / 2
		y := paddingTop / 2
		for _, line := range []string{TitleLine1, TitleLine2} {
			tb := r.MeasureText(line)
			r.Text(line, center-tb.Width()/2, y)
			y += tb.Height() + 6
		}
	}
}

// textBoxElement draws a framed multi-line note in a corner of the plot area
func textBoxElement(text string, size float64, top bool) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		applyFont(r, defaults, size)
		lines := strings.Split(text, "\n")

		width, lineHeight := 0, 0
		for _, line := range lines {
			tb := r.MeasureText(line)
			if tb.Width() > width {
				width = tb.Width()
			}
			if tb.Height() > lineHeight {
				lineHeight = tb.Height()
			}
		}
		lineStep := lineHeight + 4
		boxW := width + 2*boxPadding
		boxH := lineStep*len(lines) + 2*boxPadding

		left := canvasBox.Left + canvasBox.Width()/50
		boxTop := canvasBox.Top + canvasBox.Height()/50
		if !top {
			boxTop = canvasBox.Bottom - canvasBox.Height()/50 - boxH
		}

		r.SetFillColor(boxFill)
		r.SetStrokeColor(boxStroke)
		r.SetStrokeWidth(1)
		r.MoveTo(left, boxTop)
		r.LineTo(left+boxW, boxTop)
		r.LineTo(left+boxW, boxTop+boxH)
		r.LineTo(left, boxTop+boxH)
		r.Close()
		r.FillStroke()

		applyFont(r, defaults, size)
		y := boxTop + boxPadding + lineHeight
		for _, line := range lines {
			r.Text(line, left+boxPadding, y)
			y += lineStep
		}
	}
}

func (b *Builder) colorBarElement(maxCount int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		left := b.opts.Width - paddingRight + 30
		top, bottom := canvasBox.Top, canvasBox.Bottom
		height := bottom - top

		for i := 0; i < colorBarSteps; i++ {
			y0 := bottom - height*i/colorBarSteps
			y1 := bottom - height*(i+1)/colorBarSteps
			c := Blues((float64(i) + 0.5) / colorBarSteps)
			r.SetFillColor(c)
			r.SetStrokeColor(c)
			r.SetStrokeWidth(1)
			r.MoveTo(left, y0)
			r.LineTo(left+colorBarWidth, y0)
			r.LineTo(left+colorBarWidth, y1)
			r.LineTo(left, y1)
			r.Close()
			r.FillStroke()
		}

		applyFont(r, defaults, 9)
		for _, v := range colorTicks(maxCount) {
			y := bottom
			if maxCount > 0 {
				y = bottom - int(float64(height)*float64(v)/float64(maxCount))
			}
			label := fmt.Sprintf("%d", v)
			tb := r.MeasureText(label)
			r.Text(label, left+colorBarWidth+4, y+tb.Height()/2)
		}

		applyFont(r, defaults, 10)
		tb := r.MeasureText(ColorLabel)
		r.Text(ColorLabel, left+colorBarWidth/2-tb.Width()/2, top-8)
	}
}

// colorTicks returns up to maxColorTicks integer labels from 0 to maxCount
func colorTicks(maxCount int) []int {
	if maxCount <= 0 {
		return []int{0}
	}
	step := 1
	for maxCount/step >= maxColorTicks {
		step++
	}
	var out []int
	for v := 0; v <= maxCount; v += step {
		out = append(out, v)
	}
	return out
}

func applyFont(r chart.Renderer, defaults chart.Style, size float64) {
	if defaults.Font != nil {
		r.SetFont(defaults.Font)
	}
	r.SetFontColor(textColor)
	r.SetFontSize(size)
}
