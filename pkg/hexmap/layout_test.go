package hexmap

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestCenterProjection(t *testing.T) {
	l := Layout{Size: 1}

	x, y := l.Center(Hex{0, 0, 0})
	if math.Abs(x) > tolerance || math.Abs(y) > tolerance {
		t.Errorf("Center(origin) = (%g,%g), want (0,0)", x, y)
	}

	x, y = l.Center(Hex{1, 0, -1})
	if math.Abs(x-1.5) > tolerance || math.Abs(y-(-Sqrt3/2)) > tolerance {
		t.Errorf("Center(1,0,-1) = (%g,%g), want (1.5,%g)", x, y, -Sqrt3/2)
	}
}

func TestVertices(t *testing.T) {
	l := Layout{Size: 2}
	h := Sqrt3 * 2
	want := [6]Point{
		{-2, 0}, {-1, h / 2}, {1, h / 2},
		{2, 0}, {1, -h / 2}, {-1, -h / 2},
	}
	got := l.Vertices()
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > tolerance || math.Abs(got[i].Y-want[i].Y) > tolerance {
			t.Errorf("vertex %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPixelToHexRoundTrip(t *testing.T) {
	l := Layout{Size: 19}
	for _, h := range Disk(Hex{}, 4) {
		x, y := l.Center(h)
		if got := l.PixelToHex(x, y); got != h {
			t.Errorf("round trip of %v gave %v", h, got)
		}
		// A point near the center still snaps to the same cell.
		if got := l.PixelToHex(x+3, y-3); got != h {
			t.Errorf("offset round trip of %v gave %v", h, got)
		}
	}
}
