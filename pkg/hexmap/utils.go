// pkg/hexmap/utils.go
package hexmap

import "math"

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// cubeRound snaps fractional cube coordinates to the nearest valid hex,
// correcting the axis with the largest rounding error so x+y+z stays 0.
func cubeRound(x, y, z float64) Hex {
	xf := math.Round(x)
	yf := math.Round(y)
	zf := math.Round(z)
	xd := math.Abs(xf - x)
	yd := math.Abs(yf - y)
	zd := math.Abs(zf - z)
	if xd > yd && xd > zd {
		xf = -yf - zf
	} else if yd > zd {
		yf = -xf - zf
	} else {
		zf = -xf - yf
	}
	return Hex{X: int(xf), Y: int(yf), Z: int(zf)}
}

// Sqrt3 is used throughout the pixel projection.
const Sqrt3 = 1.7320508075688772935274463415059
