// pkg/hexmap/hex.go
package hexmap

import (
	"errors"
	"fmt"

	"go-hex-grid/pkg/utils"
)

// Hex represents a cell in cube coordinates (X, Y, Z) with X+Y+Z = 0.
// It is a plain value: compared by equality, usable directly as a map key.
type Hex struct {
	X, Y, Z int
}

// ErrInvariant reports a cube coordinate whose axes do not sum to zero.
var ErrInvariant = errors.New("hexmap: cube coordinate must satisfy x+y+z=0")

// NeighborDirections defines the 6 unit offsets from a hex.
// The order is fixed; callers rely on it when enumerating adjacency.
var NeighborDirections = []Hex{
	{-1, 0, 1}, {-1, 1, 0}, {0, -1, 1},
	{1, -1, 0}, {0, 1, -1}, {1, 0, -1},
}

// NewHex builds a hex from the two free axes, deriving Z so the invariant
// holds. Use this whenever a coordinate comes from partial input.
func NewHex(x, y int) Hex {
	return Hex{X: x, Y: y, Z: -x - y}
}

// Cube builds a hex from all three axes and fails fast if they do not sum
// to zero. It never normalizes silently.
func Cube(x, y, z int) (Hex, error) {
	if x+y+z != 0 {
		return Hex{}, fmt.Errorf("%w: got (%d,%d,%d)", ErrInvariant, x, y, z)
	}
	return Hex{X: x, Y: y, Z: z}, nil
}

// Add returns the sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{
		X: h.X + other.X,
		Y: h.Y + other.Y,
		Z: h.Z + other.Z,
	}
}

// Sub returns the difference of two hexes.
func (h Hex) Sub(other Hex) Hex {
	return Hex{
		X: h.X - other.X,
		Y: h.Y - other.Y,
		Z: h.Z - other.Z,
	}
}

// Distance returns the number of steps between two hexes.
func (h Hex) Distance(to Hex) int {
	return (utils.Abs(h.X-to.X) + utils.Abs(h.Y-to.Y) + utils.Abs(h.Z-to.Z)) / 2
}

// Neighbors returns the six adjacent hexes in the NeighborDirections order.
func (h Hex) Neighbors() []Hex {
	neighbors := make([]Hex, len(NeighborDirections))
	for i, d := range NeighborDirections {
		neighbors[i] = h.Add(d)
	}
	return neighbors
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.X * factor, h.Y * factor, h.Z * factor}
}

// String returns the canonical "x,y,z" form used for labels and diagnostics.
func (h Hex) String() string {
	return fmt.Sprintf("%d,%d,%d", h.X, h.Y, h.Z)
}
