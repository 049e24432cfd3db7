package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Brand colors
var (
	BrandBlue       = color.NRGBA{R: 0, G: 168, B: 235, A: 255}
	BrandButton     = color.NRGBA{R: 0, G: 112, B: 160, A: 255}
	BrandButtonDown = color.NRGBA{R: 0, G: 84, B: 122, A: 255}
	BrandText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	BrandShadow     = color.NRGBA{R: 0, G: 0, B: 0, A: 64}
)

// Text sizes
const (
	HeadingTextSize    float32 = 20
	SubHeadingTextSize float32 = 14
	BodyTextSize       float32 = 12
)

// Layout sizing
const (
	ColumnWidth       float32 = 100
	PlotMinSize       float32 = 480
	ErrorDetailWidth  float32 = 520
	ErrorDetailHeight float32 = 120
)

// Resource names
const (
	PlotResourceName = "correlation.png"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)
