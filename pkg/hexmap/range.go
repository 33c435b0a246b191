// pkg/hexmap/range.go
package hexmap

// Disk returns every cell within rng steps of center, center included.
// The dy bound is the exact condition that keeps each emitted cell within
// rng; the result always has 3*rng*rng + 3*rng + 1 cells.
func Disk(center Hex, rng int) []Hex {
	cells := make([]Hex, 0, 3*rng*rng+3*rng+1)
	for dx := -rng; dx <= rng; dx++ {
		for dy := max(-rng, -dx-rng); dy <= min(rng, -dx+rng); dy++ {
			cells = append(cells, Hex{
				X: center.X + dx,
				Y: center.Y + dy,
				Z: center.Z - dx - dy,
			})
		}
	}
	return cells
}

// ringDirections lists the six directions as successive 60 degree turns,
// so that walking them in order traces a closed ring.
var ringDirections = []Hex{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

// Ring returns the 6*rng cells at exactly rng steps from center: start at
// one corner of the ring and walk rng steps along each of the six sides.
func Ring(center Hex, rng int) []Hex {
	if rng == 0 {
		return []Hex{center}
	}
	cells := make([]Hex, 0, 6*rng)
	h := center.Add(ringDirections[4].Scale(rng))
	for _, d := range ringDirections {
		for step := 0; step < rng; step++ {
			cells = append(cells, h)
			h = h.Add(d)
		}
	}
	return cells
}
