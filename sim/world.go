package sim

import (
	"sort"

	"github.com/hexshard/hexrealm/transport"
	"go.uber.org/zap"
)

// World is the turn orchestrator: it owns the Map, the civ/city/unit
// arenas, and each connected player's outbound Sender (spec.md §4.6,
// §6).
type World struct {
	Map      *Map
	Registry *Registry
	Logger   *zap.Logger

	Civs   map[CivID]*Civilization
	Cities map[CityID]*City
	Units  map[UnitID]*Unit

	Senders map[CivID]transport.Sender

	nextCityID CityID
	nextUnitID UnitID
}

// uniformVisibilityRebuildRange is the fixed range beginTurn's
// updateCivTileVisibility rebuilds from each of a civ's units, per
// spec.md §4.6 (stated literally as "range 3", independent of any given
// unit's own VisionRange).
const uniformVisibilityRebuildRange = 3

// NewWorld wires a Map to a fresh, empty civ/city/unit arena.
func NewWorld(m *Map, reg *Registry, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &World{
		Map:      m,
		Registry: reg,
		Logger:   logger,
		Civs:     make(map[CivID]*Civilization),
		Cities:   make(map[CityID]*City),
		Units:    make(map[UnitID]*Unit),
		Senders:  make(map[CivID]transport.Sender),
	}
	m.UnitLookup = func(id UnitID) *Unit { return w.Units[id] }
	return w
}

// AddCiv registers a new civilization.
func (w *World) AddCiv(id CivID, color string, isAI bool) *Civilization {
	c := NewCivilization(id, color, isAI)
	w.Civs[id] = c
	return c
}

// DisconnectPlayer converts civID's civ to AI control (spec.md §5
// Cancellation): its civ still exists and is ticked, no in-flight
// action is rolled back.
func (w *World) DisconnectPlayer(civID CivID) {
	if c := w.Civs[civID]; c != nil {
		c.IsAI = true
	}
	delete(w.Senders, civID)
}

// SettleCity creates a city via Map.SettleCityAt and registers it with
// the owning civ.
func (w *World) SettleCity(c Coord, civID CivID, name string) (*City, error) {
	id := w.nextCityID
	city, err := w.Map.SettleCityAt(c, id, civID, name)
	if err != nil {
		return nil, err
	}
	w.nextCityID++
	w.Cities[id] = city
	if civ := w.Civs[civID]; civ != nil {
		civ.AddCity(id)
	}
	return city, nil
}

// SpawnUnit creates a unit of typeName for civID at coord, placing it
// on the map and lighting its vision.
func (w *World) SpawnUnit(civID CivID, typeName string, coord Coord) (*Unit, error) {
	tile := w.Map.TileAt(coord)
	if tile == nil || tile.UnitID != nil {
		return nil, ErrIllegalAction
	}
	id := w.nextUnitID
	w.nextUnitID++
	u := NewUnit(id, civID, typeName, w.Registry)
	w.Units[id] = u
	if civ := w.Civs[civID]; civ != nil {
		civ.AddUnit(id)
	}
	u.Coords = &coord
	tile.UnitID = &id
	w.Map.tileUpdate(coord)
	w.Map.LightOn(u, VisionOptions{})
	return u, nil
}

// sendToCiv delivers msg to civID's sender, logging and skipping
// (spec.md §7 MissingPlayer) if none is connected — AI civs and
// disconnected humans never error the caller.
func (w *World) sendToCiv(civID CivID, msg transport.Message) {
	sender, ok := w.Senders[civID]
	if !ok || sender == nil {
		w.Logger.Debug("sendToCiv: no connected player", zap.Int("civID", int(civID)))
		return
	}
	if err := sender.Send(msg); err != nil {
		w.Logger.Warn("sendToCiv failed", zap.Int("civID", int(civID)), zap.Error(err))
	}
}

// humanCivIDs returns the civIDs of every non-AI civ, in a stable order.
func (w *World) humanCivIDs() []CivID {
	var out []CivID
	for id, c := range w.Civs {
		if !c.IsAI {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// drainTileUpdatesFor converts the given queued updates into per-civ
// tileUpdate events for civID.
func drainTileUpdatesFor(civID CivID, updates []TileUpdate) []transport.Event {
	events := make([]transport.Event, 0, len(updates))
	for _, u := range updates {
		events = append(events, transport.New(transport.TileUpdate, u.Coord, u.Tile(civID)))
	}
	return events
}

// flushUpdates drains Map's pending tile updates and sends them to
// every connected human, preserving emission order (spec.md §5:
// "within a turn, tile updates are emitted in the order mutations
// occurred").
func (w *World) flushUpdates() {
	updates := w.Map.GetUpdates()
	if len(updates) == 0 {
		return
	}
	for _, civID := range w.humanCivIDs() {
		events := drainTileUpdatesFor(civID, updates)
		w.sendToCiv(civID, transport.Message{Update: events})
	}
}

// fullMapFor builds the row-major TileView array (nil for undiscovered)
// that spec.md §6's setMap event carries.
func (w *World) fullMapFor(civID CivID) []*TileView {
	out := make([]*TileView, w.Map.Topology.Width*w.Map.Topology.Height)
	w.Map.AllTiles(func(t *Tile) {
		out[w.Map.Topology.Pos(t.Coord)] = w.Map.GetCivTile(civID, t)
	})
	return out
}

// unitPositionsFor lists the coords of every placed unit belonging to
// civID.
func (w *World) unitPositionsFor(civID CivID) []Coord {
	civ := w.Civs[civID]
	if civ == nil {
		return nil
	}
	var out []Coord
	for _, uid := range civ.Units {
		if u := w.Units[uid]; u != nil && u.Coords != nil {
			out = append(out, *u.Coords)
		}
	}
	return out
}

// BeginTurn runs spec.md §4.6's beginTurn(civID) step: reset unit
// movement, rebuild the civ's visibility from scratch, then send
// setMap + beginTurn.
func (w *World) BeginTurn(civID CivID) {
	civ := w.Civs[civID]
	if civ == nil {
		return
	}
	for _, uid := range civ.Units {
		if u := w.Units[uid]; u != nil {
			u.ResetMovement()
		}
	}
	w.updateCivTileVisibility(civID)

	w.sendToCiv(civID, transport.Message{Update: []transport.Event{
		transport.New(transport.SetMap, w.fullMapFor(civID)),
		transport.New(transport.BeginTurn),
	}})
}

// updateCivTileVisibility clears every VisibleTo[civID] counter and
// re-lights from each of the civ's placed units at the fixed rebuild
// range (spec.md §4.6).
func (w *World) updateCivTileVisibility(civID CivID) {
	w.Map.AllTiles(func(t *Tile) {
		delete(t.VisibleTo, civID)
	})
	civ := w.Civs[civID]
	if civ == nil {
		return
	}
	rng := uniformVisibilityRebuildRange
	for _, uid := range civ.Units {
		u := w.Units[uid]
		if u == nil || u.Coords == nil {
			continue
		}
		w.Map.LightOn(u, VisionOptions{Range: &rng})
	}
}
