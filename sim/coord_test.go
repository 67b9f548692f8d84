package sim

import "testing"

func TestWrapNormalizesX(t *testing.T) {
	topo := NewHexTopology(10, 10)
	cases := []struct {
		in   Coord
		want Coord
	}{
		{Coord{X: 10, Y: 3}, Coord{X: 0, Y: 3}},
		{Coord{X: -1, Y: 3}, Coord{X: 9, Y: 3}},
		{Coord{X: 23, Y: 3}, Coord{X: 3, Y: 3}},
		{Coord{X: 5, Y: 3}, Coord{X: 5, Y: 3}},
	}
	for _, c := range cases {
		got := topo.Wrap(c.in)
		if got != c.want {
			t.Errorf("Wrap(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestInBoundsNeverWrapsY(t *testing.T) {
	topo := NewHexTopology(10, 10)
	if topo.InBounds(Coord{X: 3, Y: -1}) {
		t.Error("Y=-1 should be out of bounds")
	}
	if topo.InBounds(Coord{X: 3, Y: 10}) {
		t.Error("Y=10 should be out of bounds on a 10-tall map")
	}
	if !topo.InBounds(Coord{X: 3, Y: 9}) {
		t.Error("Y=9 should be in bounds on a 10-tall map")
	}
}

func TestGetAdjacentCoordsWrapsEastWest(t *testing.T) {
	topo := NewHexTopology(10, 10)
	neighbors := topo.GetAdjacentCoords(Coord{X: 0, Y: 5})
	sawWrapped := false
	for _, n := range neighbors {
		if n.X == 9 {
			sawWrapped = true
		}
	}
	if !sawWrapped {
		t.Errorf("expected a neighbor of (0,5) to wrap to X=9, got %+v", neighbors)
	}
}

func TestGetAdjacentCoordsDropsOutOfBoundsRows(t *testing.T) {
	topo := NewHexTopology(10, 10)
	neighbors := topo.GetAdjacentCoords(Coord{X: 4, Y: 0})
	for _, n := range neighbors {
		if n.Y < 0 {
			t.Errorf("neighbor %+v of top row should never have negative Y", n)
		}
	}
	if len(neighbors) >= numDirections {
		t.Errorf("top-row tile should drop at least one out-of-bounds neighbor, got %d", len(neighbors))
	}
}

func TestGetCoordInDirectionRoundTrip(t *testing.T) {
	topo := NewHexTopology(20, 20)
	start := Coord{X: 5, Y: 5}
	northeast := topo.GetCoordInDirection(start, 0)
	back := topo.GetCoordInDirection(northeast, 3)
	if back != start {
		t.Errorf("northeast then southwest from %+v landed on %+v, want back at start", start, back)
	}
}

func TestPosIsUniquePerTile(t *testing.T) {
	topo := NewHexTopology(8, 6)
	seen := make(map[int]Coord)
	for y := 0; y < topo.Height; y++ {
		for x := 0; x < topo.Width; x++ {
			c := Coord{X: x, Y: y}
			p := topo.Pos(c)
			if prev, ok := seen[p]; ok {
				t.Fatalf("Pos collision: %+v and %+v both map to %d", prev, c, p)
			}
			seen[p] = c
		}
	}
}
