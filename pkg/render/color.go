// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the grid.
type MapColors struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	HighlightColor  color.RGBA
	CenterColor     color.RGBA
	HoverColor      color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// LightenColor raises each channel by the given amount, clamping at white.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: 255,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
