package sim

import (
	"testing"

	"github.com/hexshard/hexrealm/transport"
)

type recordingSender struct {
	messages []transport.Message
}

func (s *recordingSender) Send(msg transport.Message) error {
	s.messages = append(s.messages, msg)
	return nil
}

func TestSpawnUnitLightsVisionImmediately(t *testing.T) {
	reg := DefaultRegistry()
	m := NewMap(10, 10, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)

	coord := Coord{X: 4, Y: 4}
	u, err := w.SpawnUnit(0, "scout", coord)
	if err != nil {
		t.Fatalf("SpawnUnit failed: %v", err)
	}
	if !m.TileAt(coord).IsVisibleTo(0) {
		t.Error("spawned unit's own tile should be visible immediately")
	}
	if m.TileAt(coord).UnitID == nil || *m.TileAt(coord).UnitID != u.ID {
		t.Error("tile should reference the spawned unit")
	}
}

func TestSpawnUnitRefusesOccupiedTile(t *testing.T) {
	reg := DefaultRegistry()
	m := NewMap(10, 10, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)
	coord := Coord{X: 4, Y: 4}

	if _, err := w.SpawnUnit(0, "scout", coord); err != nil {
		t.Fatalf("first spawn should succeed: %v", err)
	}
	if _, err := w.SpawnUnit(0, "warrior", coord); err != ErrIllegalAction {
		t.Errorf("second spawn on the same tile should return ErrIllegalAction, got %v", err)
	}
}

func TestBeginTurnRebuildsVisibilityAtFixedRange(t *testing.T) {
	reg := DefaultRegistry()
	m := NewMap(20, 20, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)
	coord := Coord{X: 10, Y: 10}
	if _, err := w.SpawnUnit(0, "settler", coord); err != nil {
		t.Fatalf("SpawnUnit failed: %v", err)
	}

	sender := &recordingSender{}
	w.Senders[0] = sender
	w.BeginTurn(0)

	within := m.GetNeighborsCoords(coord, uniformVisibilityRebuildRange, nil)
	for _, c := range within {
		if !m.TileAt(c).IsVisibleTo(0) {
			t.Errorf("tile %+v within rebuild range %d should be visible after BeginTurn", c, uniformVisibilityRebuildRange)
		}
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected exactly one message sent on BeginTurn, got %d", len(sender.messages))
	}
	if len(sender.messages[0].Update) != 2 {
		t.Errorf("expected setMap + beginTurn events, got %d", len(sender.messages[0].Update))
	}
}

func TestDisconnectPlayerConvertsToAIAndDropsSender(t *testing.T) {
	reg := DefaultRegistry()
	m := NewMap(5, 5, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)
	w.Senders[0] = &recordingSender{}

	w.DisconnectPlayer(0)

	if !w.Civs[0].IsAI {
		t.Error("disconnected civ should become AI-controlled")
	}
	if _, ok := w.Senders[0]; ok {
		t.Error("disconnected civ's sender should be removed")
	}
	for _, id := range w.humanCivIDs() {
		if id == 0 {
			t.Error("an AI civ should not appear in humanCivIDs")
		}
	}
}

func TestEndTurnTicksMapAndFlushesUpdatesBeforeBeginTurn(t *testing.T) {
	reg := DefaultRegistry()
	m := NewMap(5, 5, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)
	sender := &recordingSender{}
	w.Senders[0] = sender

	coord := Coord{X: 2, Y: 2}
	imp := m.BuildImprovementAt(coord, ImprovementFarm)
	imp.Yield = NewYield(map[ResourceKey]int{ResourceFood: 2})

	w.EndTurn()

	// endTurn, any flushed tileUpdate(s), then setMap+beginTurn: endTurn
	// must be the first event and beginTurn the last.
	if len(sender.messages) == 0 {
		t.Fatal("expected at least one message sent during EndTurn")
	}
	first := sender.messages[0].Update
	if len(first) == 0 || first[0].Name != transport.EndTurn {
		t.Fatalf("first event should be endTurn, got %+v", first)
	}
	last := sender.messages[len(sender.messages)-1].Update
	if len(last) == 0 || last[len(last)-1].Name != transport.BeginTurn {
		t.Fatalf("last event should be beginTurn, got %+v", last)
	}
}
