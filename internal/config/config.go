// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	HexSize        = 34.0
	GridLevels     = 6
	HighlightRange = 2

	MaxDeltaTime = 0.06

	PanelHeight = 64
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	CellColor       = color.RGBA{70, 100, 120, 220}
	HighlightColor  = color.RGBA{110, 160, 90, 230}
	CenterColor     = color.RGBA{200, 180, 60, 240}
	HoverColor      = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{30, 30, 45, 235}
	StrokeWidth     = 2.0
)
