// pkg/hexmap/grid.go
package hexmap

// Grid is the static outline of the playfield: every cell with
// max(|x|,|y|,|z|) <= Levels, which is exactly the disk of that radius
// around the origin. The outline never changes after construction.
type Grid struct {
	Cells  map[Hex]struct{}
	Levels int
}

// NewGrid generates the outline for the given number of levels.
func NewGrid(levels int) *Grid {
	cells := make(map[Hex]struct{}, 3*levels*levels+3*levels+1)
	for _, h := range Disk(Hex{}, levels) {
		cells[h] = struct{}{}
	}
	return &Grid{Cells: cells, Levels: levels}
}

// Contains reports whether the cell is part of the outline.
func (g *Grid) Contains(h Hex) bool {
	_, exists := g.Cells[h]
	return exists
}

// Neighbors returns the adjacent cells that exist on the grid, preserving
// the NeighborDirections order.
func (g *Grid) Neighbors(h Hex) []Hex {
	valid := make([]Hex, 0, 6)
	for _, n := range h.Neighbors() {
		if g.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Hexes lists every cell of the outline. Order is unspecified.
func (g *Grid) Hexes() []Hex {
	hexes := make([]Hex, 0, len(g.Cells))
	for h := range g.Cells {
		hexes = append(hexes, h)
	}
	return hexes
}
