package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors
var (
	accentColor  = color.NRGBA{R: 108, G: 92, B: 231, A: 255}
	dangerColor  = color.NRGBA{R: 214, G: 48, B: 49, A: 255}
	successColor = color.NRGBA{R: 0, G: 184, B: 148, A: 255}
)

// CompactTheme tightens the default theme and applies the brand accent
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		return accentColor
	case theme.ColorNameError:
		return dangerColor
	case theme.ColorNameSuccess:
		return successColor
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 24, G: 22, B: 36, A: 255}
		}
		return color.NRGBA{R: 246, G: 245, B: 252, A: 255}
	}

	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 4
	}

	return t.base.Size(name)
}
