package sim

// AddKnowledge credits points of branch k to t, clamped to maxPoints and
// never decreasing (spec.md §3, §9 open question (b): a neighbor whose
// points already meet or exceed maxPoints is left untouched rather than
// clamped down).
func AddKnowledge(t *Tile, k string, points int, maxPoints int) {
	if t.Knowledge == nil {
		t.Knowledge = make(map[string]int)
	}
	current := t.Knowledge[k]
	if current >= maxPoints {
		return
	}
	next := current + points
	if next > maxPoints {
		next = maxPoints
	}
	if next > current {
		t.Knowledge[k] = next
	}
}

// knowledgeSpilloverDecay is the per-step decay applied as knowledge
// spills outward to a neighboring tile (spec.md §4.5).
const knowledgeSpilloverDecay = 0.1

// spilloverKnowledge emits one spillover step from t to each of its
// (in-bounds) neighbors, for every branch of t's knowledge that has not
// yet reached its cap.
func (m *Map) spilloverKnowledge(t *Tile) {
	if len(t.Knowledge) == 0 {
		return
	}
	neighbors := m.Topology.GetAdjacentCoords(t.Coord)
	for branch, points := range t.Knowledge {
		maxPoints := m.Registry.KnowledgeMax[branch]
		if maxPoints == 0 || points >= maxPoints {
			continue
		}
		spill := int(float64(points) * knowledgeSpilloverDecay)
		if spill <= 0 {
			continue
		}
		for _, nc := range neighbors {
			if nt := m.TileAt(nc); nt != nil {
				AddKnowledge(nt, branch, spill, maxPoints)
			}
		}
	}
}
