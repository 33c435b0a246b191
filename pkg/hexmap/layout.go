// pkg/hexmap/layout.go
package hexmap

// Point is a position in pixel space, relative to the grid origin.
type Point struct {
	X, Y float64
}

// Layout projects cube coordinates onto pixels for flat-top hexes.
// Size is the circumradius of a cell; the same layout is shared by every
// cell of a grid instance.
type Layout struct {
	Size float64
}

// Center returns the pixel center of a cell. The X axis of the cube
// coordinate acts as the layout column and Z as the row; Y is redundant
// under the invariant and does not appear in the projection.
func (l Layout) Center(h Hex) (x, y float64) {
	x = l.Size * 3 / 2 * float64(h.X)
	y = l.Size * Sqrt3 * (float64(h.Z) + float64(h.X)/2)
	return
}

// Vertices returns the six corner offsets of a flat-top hex relative to its
// center, starting from the leftmost corner. The shape is identical for
// every cell; the renderer adds these to Center before drawing.
func (l Layout) Vertices() [6]Point {
	s := l.Size
	h := Sqrt3 * s
	return [6]Point{
		{-s, 0}, {-s / 2, h / 2}, {s / 2, h / 2},
		{s, 0}, {s / 2, -h / 2}, {-s / 2, -h / 2},
	}
}

// PixelToHex converts a pixel position back to the containing cell.
func (l Layout) PixelToHex(x, y float64) Hex {
	fx := 2.0 / 3.0 * x / l.Size
	fz := (-x/3.0 + Sqrt3/3.0*y) / l.Size
	return cubeRound(fx, -fx-fz, fz)
}
