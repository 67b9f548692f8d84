package sim

// ImprovementView is the serialized shape of an Improvement as seen by
// a particular civ (no hidden fields — improvements are never
// partially obscured the way units are).
type ImprovementView struct {
	Type     ImprovementType `json:"type"`
	Pillaged bool            `json:"pillaged"`
}

// UnitView is the serialized shape of a Unit occupying a visible tile.
type UnitView struct {
	ID    UnitID `json:"id"`
	CivID CivID  `json:"civID"`
	Type  string `json:"type"`
	HP    int    `json:"hp"`
}

// TileView is the per-civ snapshot of a Tile, as produced by
// Map.GetCivTile. A nil *TileView means "undiscovered".
type TileView struct {
	Coord       Coord            `json:"coord"`
	Terrain     TerrainType      `json:"terrain"`
	Improvement *ImprovementView `json:"improvement,omitempty"`
	Owner       *CityID          `json:"owner,omitempty"`
	Yield       Yield            `json:"yield"`
	Unit        *UnitView        `json:"unit,omitempty"`
	Visible     bool             `json:"visible"`
}

// GetCivTile builds civ's view of tile: nil if undiscovered, the full
// visible snapshot (including unit) if currently visible, otherwise the
// discovered-but-stale snapshot with no unit and Visible=false
// (spec.md §4.2).
func (m *Map) GetCivTile(civ CivID, tile *Tile) *TileView {
	if tile == nil || !tile.IsDiscoveredBy(civ) {
		return nil
	}
	view := &TileView{
		Coord:   tile.Coord,
		Terrain: tile.Terrain,
		Owner:   tile.Owner,
		Yield:   tile.BaseYield(m.Registry),
		Visible: tile.IsVisibleTo(civ),
	}
	if tile.Improvement != nil {
		view.Improvement = &ImprovementView{Type: tile.Improvement.Type, Pillaged: tile.Improvement.Pillaged}
	}
	if view.Visible && tile.UnitID != nil && m.UnitLookup != nil {
		if u := m.UnitLookup(*tile.UnitID); u != nil {
			view.Unit = &UnitView{ID: u.ID, CivID: u.CivID, Type: u.Type, HP: u.HP}
		}
	}
	return view
}
