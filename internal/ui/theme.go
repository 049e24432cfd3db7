package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SurveyTheme paints every screen in the school's brand blue with white text
type SurveyTheme struct{}

// NewSurveyTheme creates the brand theme
func NewSurveyTheme() fyne.Theme {
	return &SurveyTheme{}
}

// Color returns theme colors
func (t *SurveyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameHeaderBackground:
		return BrandBlue
	case theme.ColorNameForeground:
		return BrandText
	case theme.ColorNameButton:
		return BrandButton
	case theme.ColorNamePressed:
		return BrandButtonDown
	case theme.ColorNamePrimary:
		return BrandButton
	case theme.ColorNameShadow:
		return BrandShadow
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *SurveyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SurveyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SurveyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return BodyTextSize
	case theme.SizeNameHeadingText:
		return HeadingTextSize
	case theme.SizeNameSubHeadingText:
		return SubHeadingTextSize
	}

	return theme.DefaultTheme().Size(name)
}
