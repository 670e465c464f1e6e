package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Catppuccin Latte palette, light variant only.
var (
	latteBase    = color.NRGBA{R: 0xef, G: 0xf1, B: 0xf5, A: 0xff}
	latteMantle  = color.NRGBA{R: 0xe6, G: 0xe9, B: 0xef, A: 0xff}
	latteSurface = color.NRGBA{R: 0xcc, G: 0xd0, B: 0xda, A: 0xff}
	latteText    = color.NRGBA{R: 0x4c, G: 0x4f, B: 0x69, A: 0xff}
	latteBlue    = color.NRGBA{R: 0x1e, G: 0x66, B: 0xf5, A: 0xff}
	latteGreen   = color.NRGBA{R: 0x40, G: 0xa0, B: 0x2b, A: 0xff}
	latteRed     = color.NRGBA{R: 0xd2, G: 0x0f, B: 0x39, A: 0xff}
)

type catppuccinLatteTheme struct {
	base fyne.Theme
}

func NewCatppuccinLatteTheme() fyne.Theme {
	return &catppuccinLatteTheme{base: theme.DefaultTheme()}
}

func (t *catppuccinLatteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return latteBase
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return latteMantle
	case theme.ColorNameInputBackground:
		return color.White
	case theme.ColorNameButton:
		return latteSurface
	case theme.ColorNameForeground:
		return latteText
	case theme.ColorNamePrimary:
		return latteBlue
	case theme.ColorNameSuccess:
		return latteGreen
	case theme.ColorNameError:
		return latteRed
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *catppuccinLatteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *catppuccinLatteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *catppuccinLatteTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
