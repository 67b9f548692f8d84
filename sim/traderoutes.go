package sim

import "sort"

// DefaultTradeRouteRange and DefaultTradeRouteMode are CreateTradeRoutes'
// spec.md §4.2 defaults (range=5, mode=LAND); Go has no default
// arguments so callers pass them explicitly when they want the default.
const DefaultTradeRouteRange = 5

var DefaultTradeRouteMode = MovementLand

// DefaultTraderCapacity is TRADER_CAPACITY from spec.md §4.2: the most
// a single trader can carry of any one resource.
var DefaultTraderCapacity = NewYield(map[ResourceKey]int{
	ResourceFood: 5, ResourceProduction: 5, ResourceGold: 5, ResourceScience: 5, ResourceCulture: 5,
})

type candidateTile struct {
	coord Coord
	dist  int
}

// CreateTradeRoutes computes a path tree rooted at sinkCoord and, for
// every reachable tile owned by civID whose improvement can supply
// requirement, emits a Trader from that tile to sinkCoord, closest
// candidates first. Unroutable candidates (FindRoute failure) are
// skipped, not fatal (spec.md §7 RoutingFailure). Returns the IDs of
// every trader created.
func (m *Map) CreateTradeRoutes(civID CivID, sinkCoord Coord, sink *Improvement, requirement Yield, rangeLimit int, mode MovementClass, cities map[CityID]*City) []TraderID {
	parent, dist := m.GetPathTree(sinkCoord, rangeLimit, mode)

	candidates := make([]candidateTile, 0, len(dist))
	sinkPos := m.Topology.Pos(sinkCoord)
	for pos, d := range dist {
		if pos == sinkPos {
			continue
		}
		candidates = append(candidates, candidateTile{coord: m.tiles[pos].Coord, dist: d})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	var created []TraderID
	for _, cand := range candidates {
		tile := m.TileAt(cand.coord)
		if tile == nil || tile.Owner == nil || tile.Improvement == nil {
			continue
		}
		city := cities[*tile.Owner]
		if city == nil || city.CivID != civID {
			continue
		}
		if !tile.Improvement.CanSupply(requirement) {
			continue
		}

		sinkToProducer, err := m.FindRoute(parent, sinkCoord, cand.coord)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Warn("trade route skipped: routing failure", zapCoord("producer", cand.coord), zapCoord("sink", sinkCoord))
			}
			continue
		}
		producerToSink := make([]Coord, len(sinkToProducer))
		for i, c := range sinkToProducer {
			producerToSink[len(sinkToProducer)-1-i] = c
		}

		capacity := DefaultTraderCapacity.Min(requirement)
		trader := NewTrader(civID, TradeRoute{Path: producerToSink, Distance: cand.dist}, capacity)
		tid := m.addTrader(trader)

		tile.Improvement.Traders = append(tile.Improvement.Traders, tid)
		sink.Suppliers = append(sink.Suppliers, tid)
		created = append(created, tid)
	}
	return created
}
