package sim

// VisionOptions configures GetVisibleTilesCoords. A zero value means:
// range defaults to the unit's VisionRange, StepLength defaults to 1.
type VisionOptions struct {
	Range     *int
	IsAttack  bool
	StepLength int
}

// losRay is one pending wedge-ray expansion in GetVisibleTilesCoords'
// explicit stack (spec.md §9: recursive LOS expansion converted to an
// explicit stack).
type losRay struct {
	pos          Coord
	dir          Direction
	maxElevation int
	slope        float64
	dist         int
}

// GetVisibleTilesCoords hex-raycasts outward from unit in six wedges.
// Each ray tracks a running elevation ceiling (maxElevation) and a
// slope that grows whenever a tile falls short of the ceiling; a tile
// is visible only if its own elevation meets the ceiling at that
// distance. Rays continue through blocked tiles (their contribution
// only raises the ceiling for tiles further out) and, every
// opts.StepLength steps, spawn a left and a right branch so a dense
// wedge is filled rather than a single line (spec.md §4.2).
func (m *Map) GetVisibleTilesCoords(u *Unit, opts VisionOptions) []Coord {
	if u.Coords == nil {
		return nil
	}
	rng := u.VisionRange
	if opts.IsAttack {
		rng = u.AttackRange
	}
	if opts.Range != nil {
		rng = *opts.Range
	}
	stepLength := opts.StepLength
	if stepLength <= 0 {
		stepLength = 1
	}

	origin := *u.Coords
	originTile := m.TileAt(origin)
	if originTile == nil || rng <= 0 {
		if originTile != nil {
			return []Coord{origin}
		}
		return nil
	}
	startElevation := originTile.Elevation(m.Registry)

	seen := map[int]Coord{m.Topology.Pos(origin): origin}
	for d := Direction(0); d < numDirections; d++ {
		stack := []losRay{{pos: origin, dir: d, maxElevation: startElevation, slope: 0, dist: 0}}
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if r.dist >= rng {
				continue
			}
			next := m.Topology.GetCoordInDirection(r.pos, r.dir)
			tile := m.TileAt(next)
			if tile == nil {
				continue
			}
			nextDist := r.dist + 1
			elevation := tile.Elevation(m.Registry)
			ceiling := float64(r.maxElevation) + r.slope*float64(nextDist)
			slope := r.slope
			if float64(elevation) >= ceiling {
				seen[m.Topology.Pos(next)] = next
			} else if gap := ceiling - float64(elevation); gap > slope {
				slope = gap
			}

			stack = append(stack, losRay{pos: next, dir: r.dir, maxElevation: r.maxElevation, slope: slope, dist: nextDist})
			if nextDist%stepLength == 0 {
				left := Direction((int(r.dir) + numDirections - 1) % numDirections)
				right := Direction((int(r.dir) + 1) % numDirections)
				stack = append(stack,
					losRay{pos: next, dir: left, maxElevation: r.maxElevation, slope: slope, dist: nextDist},
					losRay{pos: next, dir: right, maxElevation: r.maxElevation, slope: slope, dist: nextDist},
				)
			}
		}
	}

	out := make([]Coord, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}

// SetTileVisibility toggles civ's visibility at c and emits a tile
// update so subscribers learn of the (un)reveal.
func (m *Map) SetTileVisibility(civ CivID, c Coord, on bool) {
	t := m.TileAt(c)
	if t == nil {
		return
	}
	t.SetVisibility(civ, on)
	m.tileUpdate(c)
}

// LightOff clears unit's current vision cone (if placed).
func (m *Map) LightOff(u *Unit, opts VisionOptions) {
	if u.Coords == nil {
		return
	}
	for _, c := range m.GetVisibleTilesCoords(u, opts) {
		m.SetTileVisibility(u.CivID, c, false)
	}
}

// LightOn lights unit's current vision cone (if placed).
func (m *Map) LightOn(u *Unit, opts VisionOptions) {
	if u.Coords == nil {
		return
	}
	for _, c := range m.GetVisibleTilesCoords(u, opts) {
		m.SetTileVisibility(u.CivID, c, true)
	}
}

// MoveUnit relocates u from its current tile to dest using the
// light-off/light-on pattern (spec.md §4.2): enumerate visible tiles at
// the old position and darken them, relocate, then enumerate from the
// new position and light them. The tile slot and the unit's own Coords
// are updated atomically (spec.md §5 — both halves of the bidirectional
// link move together). Returns ErrIllegalAction if dest is already
// occupied.
func (m *Map) MoveUnit(u *Unit, dest Coord) error {
	destTile := m.TileAt(dest)
	if destTile == nil || destTile.UnitID != nil {
		return ErrIllegalAction
	}

	m.LightOff(u, VisionOptions{})

	if u.Coords != nil {
		if oldTile := m.TileAt(*u.Coords); oldTile != nil {
			oldTile.UnitID = nil
			m.tileUpdate(*u.Coords)
		}
	}
	id := u.ID
	destTile.UnitID = &id
	u.Coords = &dest
	m.tileUpdate(dest)

	m.LightOn(u, VisionOptions{})
	return nil
}
