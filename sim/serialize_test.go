package sim

import "testing"

func buildSampleWorld(t *testing.T) *World {
	t.Helper()
	reg := DefaultRegistry()
	m := NewMap(6, 6, TerrainGrassland, reg, nil)
	w := NewWorld(m, reg, nil)
	w.AddCiv(0, "red", false)

	city, err := w.SettleCity(Coord{X: 2, Y: 2}, 0, "capital")
	if err != nil {
		t.Fatalf("SettleCity failed: %v", err)
	}
	m.SetTileOwner(Coord{X: 3, Y: 2}, city, false)

	if _, err := w.SpawnUnit(0, "warrior", Coord{X: 1, Y: 1}); err != nil {
		t.Fatalf("SpawnUnit failed: %v", err)
	}

	farmCoord := Coord{X: 3, Y: 2}
	imp := m.BuildImprovementAt(farmCoord, ImprovementFarm)
	imp.Store.Incr(NewYield(map[ResourceKey]int{ResourceFood: 4}))

	m.TileAt(farmCoord).Knowledge["writing"] = 30
	m.SetTileVisibility(0, farmCoord, true)

	requirement := NewYield(map[ResourceKey]int{ResourceFood: 1})
	m.CreateTradeRoutes(0, city.Center, m.TileAt(city.Center).Improvement, requirement, DefaultTradeRouteRange, DefaultTradeRouteMode, w.Cities)

	return w
}

func TestExportImportRoundTripPreservesCounts(t *testing.T) {
	w := buildSampleWorld(t)
	export := w.Export()

	imported, err := ImportWorld(export, w.Registry, nil)
	if err != nil {
		t.Fatalf("ImportWorld failed: %v", err)
	}

	if len(imported.Civs) != len(w.Civs) {
		t.Errorf("civs = %d, want %d", len(imported.Civs), len(w.Civs))
	}
	if len(imported.Cities) != len(w.Cities) {
		t.Errorf("cities = %d, want %d", len(imported.Cities), len(w.Cities))
	}
	if len(imported.Units) != len(w.Units) {
		t.Errorf("units = %d, want %d", len(imported.Units), len(w.Units))
	}
	if len(imported.Map.Traders()) != len(w.Map.Traders()) {
		t.Errorf("traders = %d, want %d", len(imported.Map.Traders()), len(w.Map.Traders()))
	}
}

func TestExportImportPreservesTileState(t *testing.T) {
	w := buildSampleWorld(t)
	farmCoord := Coord{X: 3, Y: 2}
	export := w.Export()

	imported, err := ImportWorld(export, w.Registry, nil)
	if err != nil {
		t.Fatalf("ImportWorld failed: %v", err)
	}

	origTile := w.Map.TileAt(farmCoord)
	gotTile := imported.Map.TileAt(farmCoord)

	if gotTile.Improvement == nil || gotTile.Improvement.Type != origTile.Improvement.Type {
		t.Errorf("improvement type mismatch after round trip: got %+v, want %+v", gotTile.Improvement, origTile.Improvement)
	}
	if gotTile.Knowledge["writing"] != origTile.Knowledge["writing"] {
		t.Errorf("knowledge[writing] = %d, want %d", gotTile.Knowledge["writing"], origTile.Knowledge["writing"])
	}
	if !gotTile.IsVisibleTo(0) {
		t.Error("farm tile should still be visible to civ 0 after round trip")
	}
	if gotTile.Owner == nil || *gotTile.Owner != *origTile.Owner {
		t.Errorf("tile owner mismatch after round trip: got %v, want %v", gotTile.Owner, origTile.Owner)
	}
}

func TestExportImportReattachesTradersToImprovements(t *testing.T) {
	w := buildSampleWorld(t)
	export := w.Export()

	imported, err := ImportWorld(export, w.Registry, nil)
	if err != nil {
		t.Fatalf("ImportWorld failed: %v", err)
	}

	for id, tr := range imported.Map.Traders() {
		producerTile := imported.Map.TileAt(tr.Producer)
		sinkTile := imported.Map.TileAt(tr.Sink)
		found := false
		for _, tid := range producerTile.Improvement.Traders {
			if tid == id {
				found = true
			}
		}
		if !found {
			t.Errorf("trader %d not reattached to its producer's Traders list", id)
		}
		foundSupplier := false
		for _, tid := range sinkTile.Improvement.Suppliers {
			if tid == id {
				foundSupplier = true
			}
		}
		if !foundSupplier {
			t.Errorf("trader %d not reattached to its sink's Suppliers list", id)
		}
	}
}
