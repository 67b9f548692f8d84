package sim

import "go.uber.org/zap"

// The Export* types are the JSON-friendly shapes persisted for a game
// snapshot (spec.md §6). Import must accept any output of Export and
// reconstruct a bit-equivalent simulation (spec.md §8 invariant 7).

type ImprovementExport struct {
	Type     ImprovementType `json:"type"`
	Pillaged bool            `json:"pillaged"`
	Natural  bool            `json:"natural"`
	Yield    Yield           `json:"yield"`
	Store    ResourceStore   `json:"store"`
	Errand   *WorkErrand     `json:"errand,omitempty"`
}

type TileExport struct {
	Coord        Coord              `json:"coord"`
	Terrain      TerrainType        `json:"terrain"`
	Improvement  *ImprovementExport `json:"improvement,omitempty"`
	UnitID       *UnitID            `json:"unitId,omitempty"`
	Knowledge    map[string]int     `json:"knowledge,omitempty"`
	DiscoveredBy []CivID            `json:"discoveredBy,omitempty"`
	VisibleTo    map[CivID]int      `json:"visibleTo,omitempty"`
}

type TraderExport struct {
	ID       TraderID   `json:"id"`
	CivID    CivID      `json:"civId"`
	Route    TradeRoute `json:"route"`
	Speed    int        `json:"speed"`
	Capacity Yield      `json:"capacity"`
	Carried  Yield      `json:"carried"`
	Expired  bool       `json:"expired"`
	Pos      int        `json:"pos"`
	Outbound bool       `json:"outbound"`
}

type UnitExport struct {
	ID             UnitID         `json:"id"`
	CivID          CivID          `json:"civId"`
	Type           string         `json:"type"`
	Promotion      PromotionClass `json:"promotion"`
	Movement       MovementClass  `json:"movement"`
	HP             int            `json:"hp"`
	MaxHP          int            `json:"maxHp"`
	MovesRemaining int            `json:"movesRemaining"`
	MoveRange      int            `json:"moveRange"`
	VisionRange    int            `json:"visionRange"`
	AttackRange    int            `json:"attackRange"`
	Coords         *Coord         `json:"coords,omitempty"`
}

type CityExport struct {
	ID         CityID  `json:"id"`
	Name       string  `json:"name"`
	CivID      CivID   `json:"civId"`
	Center     Coord   `json:"center"`
	OwnedTiles []Coord `json:"ownedTiles"`
}

type CivExport struct {
	ID     CivID      `json:"id"`
	Color  string     `json:"color"`
	IsAI   bool       `json:"isAI"`
	Units  []UnitID   `json:"units"`
	Cities []CityID   `json:"cities"`
}

type MapExport struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Tiles   []TileExport   `json:"tiles"`
	Traders []TraderExport `json:"traders"`
}

type WorldExport struct {
	Map    MapExport    `json:"map"`
	Civs   []CivExport  `json:"civs"`
	Cities []CityExport `json:"cities"`
	Units  []UnitExport `json:"units"`
}

// Export serializes the map's tiles and live traders. Tile ownership
// and trader/improvement subscriber lists are deliberately not
// serialized here; Import reconstructs them by re-running
// SetTileOwner per city and re-attaching each trader to its route
// endpoints, matching spec.md §6.
func (m *Map) Export() MapExport {
	out := MapExport{Width: m.Topology.Width, Height: m.Topology.Height}
	m.AllTiles(func(t *Tile) {
		te := TileExport{Coord: t.Coord, Terrain: t.Terrain, UnitID: t.UnitID}
		if t.Improvement != nil {
			te.Improvement = &ImprovementExport{
				Type: t.Improvement.Type, Pillaged: t.Improvement.Pillaged, Natural: t.Improvement.Natural,
				Yield: t.Improvement.Yield, Store: *t.Improvement.Store, Errand: t.Improvement.Errand,
			}
		}
		if len(t.Knowledge) > 0 {
			te.Knowledge = t.Knowledge
		}
		for civ, ok := range t.DiscoveredBy {
			if ok {
				te.DiscoveredBy = append(te.DiscoveredBy, civ)
			}
		}
		if len(t.VisibleTo) > 0 {
			te.VisibleTo = t.VisibleTo
		}
		out.Tiles = append(out.Tiles, te)
	})
	for id, tr := range m.traders {
		out.Traders = append(out.Traders, TraderExport{
			ID: id, CivID: tr.CivID, Route: tr.Route, Speed: tr.Speed,
			Capacity: tr.Capacity, Carried: tr.Carried, Expired: tr.Expired,
			Pos: tr.pos, Outbound: tr.outbound,
		})
	}
	return out
}

// Export serializes the whole simulation: the map plus every civ, city
// and unit.
func (w *World) Export() WorldExport {
	out := WorldExport{Map: w.Map.Export()}
	for _, c := range w.Civs {
		out.Civs = append(out.Civs, CivExport{ID: c.ID, Color: c.Color, IsAI: c.IsAI, Units: c.Units, Cities: c.Cities})
	}
	for _, c := range w.Cities {
		var owned []Coord
		for coord := range c.OwnedTiles {
			owned = append(owned, coord)
		}
		out.Cities = append(out.Cities, CityExport{ID: c.ID, Name: c.Name, CivID: c.CivID, Center: c.Center, OwnedTiles: owned})
	}
	for _, u := range w.Units {
		out.Units = append(out.Units, UnitExport{
			ID: u.ID, CivID: u.CivID, Type: u.Type, Promotion: u.Promotion, Movement: u.Movement,
			HP: u.HP, MaxHP: u.MaxHP, MovesRemaining: u.MovesRemaining, MoveRange: u.MoveRange,
			VisionRange: u.VisionRange, AttackRange: u.AttackRange, Coords: u.Coords,
		})
	}
	return out
}

// ImportWorld reconstructs a World from a WorldExport. Any shape it
// cannot reconstruct (malformed coords, dangling handles) is a fatal
// ErrSerializationMismatch at load time (spec.md §7) — no partial state
// is returned.
func ImportWorld(data WorldExport, reg *Registry, logger *zap.Logger) (*World, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if data.Map.Width <= 0 || data.Map.Height <= 0 {
		return nil, ErrSerializationMismatch
	}
	m := NewMap(data.Map.Width, data.Map.Height, TerrainOcean, reg, logger)
	w := NewWorld(m, reg, logger)

	for _, te := range data.Map.Tiles {
		t := m.TileAt(te.Coord)
		if t == nil {
			return nil, ErrSerializationMismatch
		}
		t.Terrain = te.Terrain
		t.UnitID = te.UnitID
		if te.Knowledge != nil {
			t.Knowledge = te.Knowledge
		}
		for _, civ := range te.DiscoveredBy {
			t.DiscoveredBy[civ] = true
		}
		if te.VisibleTo != nil {
			t.VisibleTo = te.VisibleTo
		}
		if te.Improvement != nil {
			ie := te.Improvement
			store := ie.Store
			t.Improvement = &Improvement{
				Type: ie.Type, Pillaged: ie.Pillaged, Natural: ie.Natural,
				Yield: ie.Yield, Store: &store, Errand: ie.Errand,
			}
		}
	}

	for _, ce := range data.Civs {
		civ := w.AddCiv(ce.ID, ce.Color, ce.IsAI)
		civ.Units = append([]UnitID(nil), ce.Units...)
		civ.Cities = append([]CityID(nil), ce.Cities...)
	}
	for _, cie := range data.Cities {
		city := NewCity(cie.ID, cie.CivID, cie.Name, cie.Center)
		city.OwnedTiles = map[Coord]bool{}
		w.Cities[cie.ID] = city
		if cie.ID >= w.nextCityID {
			w.nextCityID = cie.ID + 1
		}
		for _, coord := range cie.OwnedTiles {
			if !m.SetTileOwner(coord, city, false) {
				return nil, ErrSerializationMismatch
			}
		}
	}
	for _, ue := range data.Units {
		u := &Unit{
			ID: ue.ID, CivID: ue.CivID, Type: ue.Type, Promotion: ue.Promotion, Movement: ue.Movement,
			HP: ue.HP, MaxHP: ue.MaxHP, MovesRemaining: ue.MovesRemaining, MoveRange: ue.MoveRange,
			VisionRange: ue.VisionRange, AttackRange: ue.AttackRange, Coords: ue.Coords,
		}
		w.Units[ue.ID] = u
		if ue.ID >= w.nextUnitID {
			w.nextUnitID = ue.ID + 1
		}
	}

	for _, tre := range data.Map.Traders {
		tr := &Trader{
			CivID: tre.CivID, Route: tre.Route, Producer: tre.Route.Producer(), Sink: tre.Route.Sink(),
			Speed: tre.Speed, Capacity: tre.Capacity, Carried: tre.Carried, Expired: tre.Expired,
			pos: tre.Pos, outbound: tre.Outbound,
		}
		m.traders[tre.ID] = tr
		if tre.ID >= m.nextTid {
			m.nextTid = tre.ID + 1
		}
		producerTile := m.TileAt(tr.Producer)
		sinkTile := m.TileAt(tr.Sink)
		if producerTile == nil || sinkTile == nil || producerTile.Improvement == nil || sinkTile.Improvement == nil {
			return nil, ErrSerializationMismatch
		}
		producerTile.Improvement.Traders = append(producerTile.Improvement.Traders, tre.ID)
		sinkTile.Improvement.Suppliers = append(sinkTile.Improvement.Suppliers, tre.ID)
	}

	return w, nil
}
