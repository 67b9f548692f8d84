package sim

import "testing"

func TestYieldAddSub(t *testing.T) {
	a := NewYield(map[ResourceKey]int{ResourceFood: 3, ResourceGold: 1})
	b := NewYield(map[ResourceKey]int{ResourceFood: 2, ResourceProduction: 5})

	sum := a.Add(b)
	if sum.Get(ResourceFood) != 5 || sum.Get(ResourceGold) != 1 || sum.Get(ResourceProduction) != 5 {
		t.Errorf("Add = %+v, want food=5 gold=1 production=5", sum)
	}

	diff := a.Sub(b)
	if diff.Get(ResourceFood) != 1 {
		t.Errorf("Sub food = %d, want 1", diff.Get(ResourceFood))
	}
	if diff.Get(ResourceProduction) != 0 {
		t.Errorf("Sub should saturate at zero, got production=%d", diff.Get(ResourceProduction))
	}
}

func TestYieldFulfills(t *testing.T) {
	cost := NewYield(map[ResourceKey]int{ResourceProduction: 10})
	short := NewYield(map[ResourceKey]int{ResourceProduction: 9})
	enough := NewYield(map[ResourceKey]int{ResourceProduction: 10, ResourceFood: 100})

	if short.Fulfills(cost) {
		t.Error("9 should not fulfill a cost of 10")
	}
	if !enough.Fulfills(cost) {
		t.Error("10 (plus unrelated food) should fulfill a cost of 10")
	}
}

func TestYieldDivNumber(t *testing.T) {
	y := NewYield(map[ResourceKey]int{ResourceFood: 9})
	if got := y.DivNumber(3).Get(ResourceFood); got != 3 {
		t.Errorf("DivNumber(3) food = %d, want 3", got)
	}
	if got := y.DivNumber(0).Get(ResourceFood); got != 0 {
		t.Errorf("DivNumber(0) should be the zero vector, got food=%d", got)
	}
}

func TestResourceStoreCapsOverflow(t *testing.T) {
	s := NewResourceStore(NewYield(map[ResourceKey]int{ResourceFood: 10}))
	overflow := s.Incr(NewYield(map[ResourceKey]int{ResourceFood: 15}))

	if s.Value.Get(ResourceFood) != 10 {
		t.Errorf("stored food = %d, want capped to 10", s.Value.Get(ResourceFood))
	}
	if overflow.Get(ResourceFood) != 5 {
		t.Errorf("overflow food = %d, want 5", overflow.Get(ResourceFood))
	}
}

func TestResourceStoreFulfillsAndSub(t *testing.T) {
	s := NewResourceStore(NewYield(map[ResourceKey]int{ResourceProduction: 20}))
	s.Incr(NewYield(map[ResourceKey]int{ResourceProduction: 20}))
	cost := NewYield(map[ResourceKey]int{ResourceProduction: 15})

	if !s.Fulfills(cost) {
		t.Fatal("store with 20 production should fulfill a cost of 15")
	}
	s.Sub(cost)
	if s.Value.Get(ResourceProduction) != 5 {
		t.Errorf("after Sub, production = %d, want 5", s.Value.Get(ResourceProduction))
	}
}
