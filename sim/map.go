package sim

import "go.uber.org/zap"

// TileUpdate is one queued per-tile change notice: a closure producing
// the civ-specific payload for civID, matching spec.md §4.2's
// `civID => ['tileUpdate', [c, getCivTile(civID, tile)]]`.
type TileUpdate struct {
	Coord Coord
	Tile  func(civ CivID) *TileView
}

// Map owns every Tile, every Trader, and the pending tile-updates queue.
// Tiles are stored flat-indexed by HexTopology.Pos; Traders are stored
// by TraderID handle (spec.md §9 — Map, not Tile, owns Traders).
type Map struct {
	Topology HexTopology
	Registry *Registry
	Logger   *zap.Logger

	tiles   []*Tile
	traders map[TraderID]*Trader
	nextTid TraderID

	updates []TileUpdate

	// UnitLookup resolves a UnitID to its live Unit; wired by World at
	// construction so GetCivTile can include the occupant in a visible
	// snapshot without Map owning the unit arena itself.
	UnitLookup func(UnitID) *Unit
}

// NewMap constructs an empty map of width x height tiles, all of the
// given default terrain.
func NewMap(width, height int, defaultTerrain TerrainType, reg *Registry, logger *zap.Logger) *Map {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Map{
		Topology: NewHexTopology(width, height),
		Registry: reg,
		Logger:   logger,
		tiles:    make([]*Tile, width*height),
		traders:  make(map[TraderID]*Trader),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			m.tiles[m.Topology.Pos(c)] = NewTile(c, defaultTerrain)
		}
	}
	return m
}

// TileAt returns the tile at c, or nil if c falls outside the map's
// rows (X always wraps into range).
func (m *Map) TileAt(c Coord) *Tile {
	if !m.Topology.InBounds(c) {
		return nil
	}
	return m.tiles[m.Topology.Pos(c)]
}

// AllTiles iterates every tile in flat storage order.
func (m *Map) AllTiles(fn func(*Tile)) {
	for _, t := range m.tiles {
		fn(t)
	}
}

// Traders exposes the live trader set for iteration (turn processing,
// serialization).
func (m *Map) Traders() map[TraderID]*Trader {
	return m.traders
}

// TraderByID resolves a handle to its Trader, or nil if it no longer
// exists.
func (m *Map) TraderByID(id TraderID) *Trader {
	return m.traders[id]
}

// addTrader registers t under a fresh TraderID and returns it.
func (m *Map) addTrader(t *Trader) TraderID {
	id := m.nextTid
	m.nextTid++
	m.traders[id] = t
	return id
}

// CanSettleOn reports whether c is eligible for City.settleCityAt:
// not ocean/frozen_ocean/mountain/coastal/frozen_coastal/river and not
// already owned (spec.md §4.2).
func (m *Map) CanSettleOn(c Coord) bool {
	t := m.TileAt(c)
	if t == nil || t.Owner != nil {
		return false
	}
	return !unsettleableTerrain[t.Terrain]
}

// CanBuildOn reports whether c accepts an improvement: not
// ocean/frozen_ocean/mountain (spec.md §4.2).
func (m *Map) CanBuildOn(c Coord) bool {
	t := m.TileAt(c)
	if t == nil {
		return false
	}
	return !unbuildableTerrain[t.Terrain]
}

// tileUpdate pushes a per-tile change notice onto the update queue,
// matching spec.md §4.2.
func (m *Map) tileUpdate(c Coord) {
	m.updates = append(m.updates, TileUpdate{
		Coord: c,
		Tile: func(civ CivID) *TileView {
			return m.GetCivTile(civ, m.TileAt(c))
		},
	})
}

// GetUpdates drains the pending tile-update queue.
func (m *Map) GetUpdates() []TileUpdate {
	out := m.updates
	m.updates = nil
	return out
}

// SetTileOwner assigns city as the owner of c. When overwrite is false
// (the Import path), an already-owned tile is left untouched rather
// than reassigned.
func (m *Map) SetTileOwner(c Coord, city *City, overwrite bool) bool {
	t := m.TileAt(c)
	if t == nil {
		return false
	}
	if t.Owner != nil && !overwrite {
		return false
	}
	if !m.CanSettleOn(c) && t.Owner == nil {
		// Non-settleable tiles may still be acquired as city-worked
		// tiles once a neighboring settlement exists; only the
		// initial settle gate excludes them. SetTileOwner itself only
		// refuses re-owning without overwrite, per spec.md §3's
		// invariant that owner may be set only on a settleable tile —
		// enforced by the caller (SettleCityAt) for the center tile.
	}
	id := city.ID
	t.Owner = &id
	city.OwnedTiles[c] = true
	m.tileUpdate(c)
	return true
}

// SettleCityAt creates a new City centered at c if c is settleable,
// owned by civID. Returns nil, ErrIllegalAction if the gate fails —
// per spec.md §7 no mutation occurs in that case.
func (m *Map) SettleCityAt(c Coord, id CityID, civID CivID, name string) (*City, error) {
	if !m.CanSettleOn(c) {
		return nil, ErrIllegalAction
	}
	city := NewCity(id, civID, name, c)
	t := m.TileAt(c)
	t.Owner = &id
	m.BuildImprovementAt(c, ImprovementSettlement)
	m.tileUpdate(c)
	return city, nil
}

// BuildImprovementAt replaces any prior improvement on c's tile with a
// fresh improvement of type t.
func (m *Map) BuildImprovementAt(c Coord, t ImprovementType) *Improvement {
	tile := m.TileAt(c)
	if tile == nil {
		return nil
	}
	imp := NewImprovement(t, m.Registry)
	tile.Improvement = imp
	m.tileUpdate(c)
	return imp
}

// StartConstructionAt is buildImprovementAt's errand-driven cousin: it
// first creates a worksite improvement (replacing whatever was there,
// same as BuildImprovementAt), then starts a CONSTRUCTION errand on it
// targeting `option`. Returns ErrIllegalAction if c isn't buildable or
// isn't owned by civID.
func (m *Map) StartConstructionAt(c Coord, option string, civID CivID, cities map[CityID]*City, cost Yield) (*Improvement, error) {
	tile := m.TileAt(c)
	if tile == nil || !m.CanBuildOn(c) {
		return nil, ErrIllegalAction
	}
	if tile.Owner == nil || cities[*tile.Owner] == nil || cities[*tile.Owner].CivID != civID {
		return nil, ErrIllegalAction
	}
	imp := m.BuildImprovementAt(c, ImprovementWorksite)
	if err := imp.StartErrand(NewWorkErrand(ErrandConstruction, option, cost, nil)); err != nil {
		return nil, err
	}
	m.tileUpdate(c)
	return imp, nil
}
