package sim

// neighborFrame is one pending expansion in GetNeighborsCoords' explicit
// stack (spec.md §9: recursive neighbor/LOS expansion converted to an
// explicit stack to bound depth).
type neighborFrame struct {
	coord Coord
	rem   int
}

// GetNeighborsCoords returns every coord reachable from c within r hex
// steps, optionally gated by filter (which governs both inclusion in
// the result and whether traversal recurses through that tile). The
// returned order is the natural DFS order of the expansion; callers
// must not depend on it being BFS order (spec.md §4.2).
func (m *Map) GetNeighborsCoords(c Coord, r int, filter func(*Tile) bool) []Coord {
	best := make(map[int]int)
	var results []Coord
	stack := []neighborFrame{{coord: c, rem: r}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := m.TileAt(f.coord)
		if t == nil {
			continue
		}
		if filter != nil && !filter(t) {
			continue
		}
		pos := m.Topology.Pos(f.coord)
		if prev, seen := best[pos]; seen && prev >= f.rem {
			continue
		} else if !seen {
			results = append(results, f.coord)
		}
		best[pos] = f.rem

		if f.rem > 0 {
			neighbors := m.Topology.GetAdjacentCoords(f.coord)
			for i := len(neighbors) - 1; i >= 0; i-- {
				stack = append(stack, neighborFrame{coord: neighbors[i], rem: f.rem - 1})
			}
		}
	}
	return results
}

// movementCost returns the cost for mode to enter tile's terrain, or 0
// if impassable. AIR mode costs 1 everywhere (spec.md §4.2).
func (m *Map) movementCost(t *Tile, mode MovementClass) int {
	if mode == MovementAir {
		return 1
	}
	return m.Registry.Terrain[t.Terrain].MovementCost[mode]
}

// GetPathTree performs the FIFO-queue relax-on-strict-improvement BFS
// of spec.md §4.2 from src out to range, for the given movement mode.
// parent maps a tile's flat index to the coord it was reached from;
// dist maps it to total movement cost. Both include only tiles with
// dist <= range (src included, at dist 0).
func (m *Map) GetPathTree(src Coord, rng int, mode MovementClass) (parent map[int]Coord, dist map[int]int) {
	parent = make(map[int]Coord)
	dist = map[int]int{m.Topology.Pos(src): 0}
	queue := []Coord{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDist := dist[m.Topology.Pos(cur)]
		for _, n := range m.Topology.GetAdjacentCoords(cur) {
			t := m.TileAt(n)
			if t == nil {
				continue
			}
			cost := m.movementCost(t, mode)
			if cost <= 0 {
				continue
			}
			newDist := curDist + cost
			if newDist > rng {
				continue
			}
			npos := m.Topology.Pos(n)
			if old, ok := dist[npos]; !ok || newDist < old {
				dist[npos] = newDist
				parent[npos] = cur
				queue = append(queue, n)
			}
		}
	}
	return parent, dist
}

// FindPath walks parent pointers backward from target until it reaches
// src, returning the coords from the first hop through target (src
// itself is excluded). Returns nil if target is unreachable from src in
// parent.
func FindPath(topology HexTopology, parent map[int]Coord, src, target Coord) []Coord {
	srcPos := topology.Pos(src)
	var rev []Coord
	cur := target
	for {
		curPos := topology.Pos(cur)
		if curPos == srcPos {
			break
		}
		rev = append(rev, cur)
		p, ok := parent[curPos]
		if !ok {
			return nil
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// FindRoute prepends src to FindPath's result and verifies the ends of
// the full path map to the same Tile objects as the requested src and
// target, returning ErrRoutingFailure on any mismatch (spec.md §4.2,
// §7).
func (m *Map) FindRoute(parent map[int]Coord, src, target Coord) ([]Coord, error) {
	hops := FindPath(m.Topology, parent, src, target)
	if hops == nil {
		return nil, ErrRoutingFailure
	}
	full := append([]Coord{src}, hops...)
	if m.TileAt(full[0]) != m.TileAt(src) || m.TileAt(full[len(full)-1]) != m.TileAt(target) {
		return nil, ErrRoutingFailure
	}
	return full, nil
}
