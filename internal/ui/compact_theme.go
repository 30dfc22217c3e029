package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme reduces paddings and font sizes so the playlist stays readable
// in small windows, and overrides the accent and status palette.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme instance
func NewCompactTheme() *CompactTheme {
	return &CompactTheme{}
}

// Color returns theme colors with custom accent and status colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		// Violet accent instead of the stock blue
		return color.RGBA{R: 123, G: 31, B: 162, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 125, B: 50, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 179, B: 0, A: 255}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the default fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the default icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, reduced for a denser layout
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameScrollBar:
		return 12
	default:
		return theme.DefaultTheme().Size(name)
	}
}
