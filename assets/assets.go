package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed echodemo.svg
var appLogoSVG []byte

// ResourceAppLogo is the application icon
var ResourceAppLogo fyne.Resource = fyne.NewStaticResource("echodemo.svg", appLogoSVG)
