package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the VDio window
var (
	ColorBackground = color.RGBA{R: 0x34, G: 0x36, B: 0x47, A: 0xff}
	ColorBorder     = color.RGBA{R: 0x9d, G: 0xa1, B: 0xb6, A: 0xff}
	ColorConsole    = color.RGBA{R: 0x2b, G: 0x2d, B: 0x3b, A: 0xff}
	ColorHover      = color.RGBA{R: 0x4a, G: 0x4d, B: 0x61, A: 0xff}
)

// CompactTheme is a dark compact theme with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors; the palette is the same for both variants
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorConsole
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorBorder
	case theme.ColorNameHover, theme.ColorNameButton:
		return ColorHover
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0x61, G: 0xc5, B: 0x54, A: 0xff}
	case theme.ColorNameError:
		return color.RGBA{R: 0xed, G: 0x6a, B: 0x5e, A: 0xff}
	case theme.ColorNameWarning:
		return color.RGBA{R: 0xf5, G: 0xbf, B: 0x4f, A: 0xff}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
