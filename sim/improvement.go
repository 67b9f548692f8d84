package sim

// Improvement is a structure occupying a tile that yields resources and
// can host an errand. It is exclusively owned by its Tile; Improvement
// never holds a pointer back to its Tile or to Map (spec.md §9) — it
// reaches other entities only through the TraderID handles in Traders
// and Suppliers.
type Improvement struct {
	Type     ImprovementType
	Pillaged bool
	Natural  bool

	// Yield is this improvement's own per-turn yield (zero for natural
	// improvements, which only contribute the tile's terrain baseline).
	Yield Yield

	Store *ResourceStore

	Errand *WorkErrand

	// Traders are the subscribers pulling output FROM this improvement
	// (this improvement is their producer).
	Traders []TraderID
	// Suppliers are the traders delivering resources INTO this
	// improvement (this improvement is their sink).
	Suppliers []TraderID
}

// NewImprovement builds an improvement of type t from the registry's
// default data.
func NewImprovement(t ImprovementType, reg *Registry) *Improvement {
	data := reg.Improvements[t]
	return &Improvement{
		Type:    t,
		Natural: data.Natural,
		Yield:   data.Yield.Clone(),
		Store:   NewResourceStore(data.StoreCap),
	}
}

// CanSupply reports whether this improvement produces at least one of
// the resources named (with a positive amount) in requirement, and is
// not pillaged. Used by Map.CreateTradeRoutes to pick candidate
// producers.
func (i *Improvement) CanSupply(requirement Yield) bool {
	if i.Pillaged {
		return false
	}
	for k, v := range requirement {
		if v > 0 && i.Yield.Get(k) > 0 {
			return true
		}
	}
	return false
}

// Work runs one turn of this improvement's production/errand cycle
// (spec.md §4.3). lookup resolves a TraderID to its live Trader (traders
// that no longer exist are treated as already expired).
func (i *Improvement) Work(lookup func(TraderID) *Trader, reg *Registry) {
	// 1. Errand completion check.
	if i.Errand != nil && i.Store.Fulfills(i.Errand.Cost) {
		i.Errand.Completed = true
		for _, tid := range i.Suppliers {
			if tr := lookup(tid); tr != nil {
				tr.Expired = true
			}
		}
		i.Store.Sub(i.Errand.Cost)
		i.Store.Capacity = reg.Improvements[i.Type].StoreCap.Clone()
	}

	// 2. Reset this turn's accumulation counter.
	if i.Errand != nil {
		i.Errand.StoredThisTurn = make(Yield)
	}

	// 3. Distribute storage to subscribing traders, pruning expired ones.
	live := i.Traders[:0:0]
	for _, tid := range i.Traders {
		tr := lookup(tid)
		if tr == nil || tr.Expired {
			continue
		}
		live = append(live, tid)
	}
	i.Traders = live
	remaining := len(i.Traders)
	for _, tid := range i.Traders {
		tr := lookup(tid)
		if tr == nil {
			continue
		}
		share := i.Store.DivNumber(remaining)
		returnedSurplus := tr.Store(share)
		i.Store.Sub(share.Sub(returnedSurplus))
		if tr.Expired {
			remaining--
		}
	}
	live = i.Traders[:0:0]
	for _, tid := range i.Traders {
		if tr := lookup(tid); tr != nil && !tr.Expired {
			live = append(live, tid)
		}
	}
	i.Traders = live

	// 4. Add this improvement's own yield.
	i.Store.Incr(i.Yield)

	// 5. Cap to current capacity (extras discarded).
	i.Store.Cap()
}
