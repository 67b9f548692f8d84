package sim

import (
	"github.com/hexshard/hexrealm/transport"
	"go.uber.org/zap"
)

// Turn runs one simulation tick over every tile (work -> errand
// completion -> knowledge spillover), then advances and reaps every
// trader (spec.md §2, §4.6). Called by World.EndTurn after the update
// queue from the just-ended player turn has already been drained.
func (m *Map) Turn(w *World) {
	m.AllTiles(func(t *Tile) {
		imp := t.Improvement
		if imp == nil {
			return
		}
		imp.Work(m.TraderByID, m.Registry)

		if imp.Errand != nil && imp.Errand.Completed {
			civID := w.ownerCivOf(t)
			if err := imp.Errand.Complete(w, t, civID); err != nil {
				m.Logger.Warn("errand completion failed", zapCoord("tile", t.Coord), zap.Error(err))
			}
			imp.Errand = nil
			m.tileUpdate(t.Coord)
		}

		m.spilloverKnowledge(t)
	})

	for id, tr := range m.traders {
		sinkStore, needsSink := m.sinkDemand(tr.Sink)
		tr.Shunt(sinkStore, needsSink)
		if tr.Expired {
			delete(m.traders, id)
		}
	}
}

// sinkDemand resolves a trade route's sink improvement's store and
// whether it still has unmet demand (a live, uncompleted errand).
func (m *Map) sinkDemand(sink Coord) (*ResourceStore, bool) {
	tile := m.TileAt(sink)
	if tile == nil || tile.Improvement == nil {
		return nil, false
	}
	imp := tile.Improvement
	needsSink := imp.Errand != nil && !imp.Errand.Completed
	return imp.Store, needsSink
}

// ownerCivOf resolves the civ owning tile's city, or -1 if unowned.
func (w *World) ownerCivOf(t *Tile) CivID {
	if t.Owner == nil {
		return CivID(-1)
	}
	if city := w.Cities[*t.Owner]; city != nil {
		return city.CivID
	}
	return CivID(-1)
}

// EndTurn runs spec.md §4.6's full end-of-turn sequence: notify humans
// of endTurn, flush the tile updates queued during the player turn, tick
// the map, flush any tile updates the tick produced, then begin the next
// turn for every human civ.
func (w *World) EndTurn() {
	for _, civID := range w.humanCivIDs() {
		w.sendToCiv(civID, transport.Message{Update: []transport.Event{transport.New(transport.EndTurn)}})
	}

	w.flushUpdates()
	w.Map.Turn(w)
	w.flushUpdates()

	for _, civID := range w.humanCivIDs() {
		w.BeginTurn(civID)
	}
}
