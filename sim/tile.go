package sim

// Tile is one hex cell. Tiles are created at map construction and never
// destroyed (spec.md §3). A Tile is owned by Map; its Improvement (if
// any) is exclusively owned by the Tile.
type Tile struct {
	Coord   Coord
	Terrain TerrainType

	// Owner is the owning City, if any. nil unless the tile has been
	// settled (Map.SettleCityAt, which requires a settleable tile) or
	// acquired via Map.SetTileOwner, which does not check terrain.
	Owner *CityID

	// UnitID is the occupant unit, if any. At most one.
	UnitID *UnitID

	Improvement *Improvement

	// Knowledge accumulates per-branch points, bounded per the
	// registry's KnowledgeMax.
	Knowledge map[string]int

	// DiscoveredBy is monotone: once true for a civ it is never cleared.
	DiscoveredBy map[CivID]bool

	// VisibleTo is a reference count of overlapping vision cones;
	// positive means currently visible. May dip transiently negative
	// mid-handler (spec.md §5) but must be >= 0 at rest.
	VisibleTo map[CivID]int
}

// NewTile constructs an empty tile of the given terrain at c.
func NewTile(c Coord, terrain TerrainType) *Tile {
	return &Tile{
		Coord:        c,
		Terrain:      terrain,
		Knowledge:    make(map[string]int),
		DiscoveredBy: make(map[CivID]bool),
		VisibleTo:    make(map[CivID]int),
	}
}

// BaseYield returns the tile's terrain yield plus its improvement's
// per-turn yield (natural improvements contribute zero of their own).
func (t *Tile) BaseYield(reg *Registry) Yield {
	y := reg.Terrain[t.Terrain].BaseYield
	if t.Improvement != nil {
		y = y.Add(reg.Improvements[t.Improvement.Type].Yield)
	}
	return y
}

// Elevation is the tile's terrain height plus any improvement height.
func (t *Tile) Elevation(reg *Registry) int {
	e := reg.Terrain[t.Terrain].Height
	if t.Improvement != nil {
		e += reg.Improvements[t.Improvement.Type].Height
	}
	return e
}

// IsVisibleTo reports whether civ currently has positive visibility.
func (t *Tile) IsVisibleTo(civ CivID) bool {
	return t.VisibleTo[civ] > 0
}

// IsDiscoveredBy reports whether civ has ever discovered this tile.
func (t *Tile) IsDiscoveredBy(civ CivID) bool {
	return t.DiscoveredBy[civ]
}

// SetVisibility increments (on) or decrements (off) civ's visibility
// counter and latches DiscoveredBy whenever the counter becomes
// positive. This is the only incremental mutator of
// VisibleTo/DiscoveredBy (World.updateCivTileVisibility clears a civ's
// counters wholesale and ImportWorld restores both from a snapshot);
// callers must pair every "on" with an eventual "off" (the
// light-off/light-on pattern in Map.MoveUnit).
func (t *Tile) SetVisibility(civ CivID, on bool) {
	if on {
		t.VisibleTo[civ]++
	} else {
		t.VisibleTo[civ]--
	}
	if t.VisibleTo[civ] > 0 {
		t.DiscoveredBy[civ] = true
	}
}

// unsettleableTerrain is the closed set of terrains settlement is refused
// on, per spec.md §4.2 canSettleOn.
var unsettleableTerrain = map[TerrainType]bool{
	TerrainOcean: true, TerrainFrozenOcean: true, TerrainMountain: true,
	TerrainCoastal: true, TerrainFrozenCoastal: true, TerrainRiver: true,
}

// unbuildableTerrain is the closed set canBuildOn refuses, per spec.md
// §4.2.
var unbuildableTerrain = map[TerrainType]bool{
	TerrainOcean: true, TerrainFrozenOcean: true, TerrainMountain: true,
}
