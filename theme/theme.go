package theme

import (
	"EchoDemo/assets"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// palette holds the dark look used regardless of system settings.
var palette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:          color.RGBA{R: 30, G: 30, B: 30, A: 255},    // #1E1E1E
	theme.ColorNameButton:              color.RGBA{R: 30, G: 30, B: 30, A: 255},    // #1E1E1E
	theme.ColorNameDisabled:            color.RGBA{R: 150, G: 150, B: 150, A: 255}, // #969696
	theme.ColorNameError:               color.NRGBA{R: 0xc2, G: 0x14, B: 0x3d, A: 0xff},
	theme.ColorNameFocus:               color.RGBA{R: 194, G: 20, B: 61, A: 255}, // #C2143D
	theme.ColorNameForeground:          color.White,
	theme.ColorNameForegroundOnError:   color.White,
	theme.ColorNameForegroundOnPrimary: color.White,
	theme.ColorNameHover:               color.RGBA{R: 71, G: 71, B: 71, A: 255}, // #474747
	theme.ColorNameInputBackground:     color.Black,
	theme.ColorNameInputBorder:         color.RGBA{R: 33, G: 33, B: 33, A: 255},    // #212121
	theme.ColorNamePlaceHolder:         color.RGBA{R: 179, G: 179, B: 179, A: 255}, // #B3B3B3
	theme.ColorNamePressed:             color.RGBA{R: 33, G: 33, B: 33, A: 255},
	theme.ColorNamePrimary:             color.RGBA{R: 194, G: 20, B: 61, A: 255},
	theme.ColorNameSelection:           color.RGBA{R: 194, G: 20, B: 61, A: 255},
	theme.ColorNameShadow:              color.RGBA{A: 66},
}

type customTheme struct {
	fyne.Theme
}

// NewCustomTheme returns the application's dark theme.
func NewCustomTheme() fyne.Theme {
	return &customTheme{Theme: theme.DefaultTheme()}
}

func (t *customTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return t.Theme.Color(name, theme.VariantDark)
}

func (t *customTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	default:
		return t.Theme.Size(name)
	}
}

// AppIcon returns the application icon
func AppIcon() fyne.Resource {
	return assets.ResourceAppLogo
}

// paddingTheme overrides only the padding of its base theme.
type paddingTheme struct {
	fyne.Theme
	padding float32
}

// WithPadding returns base with SizeNamePadding replaced by padding.
// Box layouts use this size as the gap between children.
func WithPadding(base fyne.Theme, padding float32) fyne.Theme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &paddingTheme{Theme: base, padding: padding}
}

func (t *paddingTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return t.padding
	}
	return t.Theme.Size(name)
}
