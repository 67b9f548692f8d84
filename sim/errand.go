package sim

import "errors"

// ErrandType is the closed set of work a WorkErrand can represent.
type ErrandType string

const (
	ErrandConstruction  ErrandType = "CONSTRUCTION"
	ErrandUnitTraining  ErrandType = "UNIT_TRAINING"
	ErrandResearch      ErrandType = "RESEARCH"
)

// ErrAlreadyHasErrand is returned when StartErrand is called on an
// improvement that already has one in progress; preemption is
// deliberately forbidden (spec.md §9).
var ErrAlreadyHasErrand = errors.New("sim: improvement already has an in-progress errand")

// WorkErrand is a work-in-progress production task at an Improvement. It
// shares its host Improvement's ResourceStore rather than holding its
// own (spec.md §3): the store's Capacity is raised to Cost while the
// errand is live and restored to the improvement type's default on
// completion.
type WorkErrand struct {
	Type           ErrandType
	Option         string
	Cost           Yield
	StoredThisTurn Yield
	Completed      bool
	// Location overrides where a UNIT_TRAINING errand spawns its unit;
	// nil means "the worksite's own tile".
	Location *Coord
}

// NewWorkErrand constructs a pending errand for the given cost.
func NewWorkErrand(t ErrandType, option string, cost Yield, location *Coord) *WorkErrand {
	return &WorkErrand{
		Type:           t,
		Option:         option,
		Cost:           cost,
		StoredThisTurn: make(Yield),
		Location:       location,
	}
}

// StartErrand attaches e to i, raising the shared store's capacity to
// e.Cost. Returns ErrAlreadyHasErrand if i already has one in progress.
func (i *Improvement) StartErrand(e *WorkErrand) error {
	if i.Errand != nil {
		return ErrAlreadyHasErrand
	}
	i.Errand = e
	i.Store.Capacity = e.Cost.Clone()
	return nil
}

// Complete applies e's type-specific effect to tile (spec.md §4.3); the
// caller clears the host improvement's Errand field afterward. civID is
// the civ owning the worksite (resolved by the caller from
// tile.Owner), needed for UNIT_TRAINING's spawned unit.
func (e *WorkErrand) Complete(w *World, tile *Tile, civID CivID) error {
	switch e.Type {
	case ErrandConstruction:
		tile.Improvement = NewImprovement(ImprovementType(e.Option), w.Registry)
	case ErrandUnitTraining:
		loc := tile.Coord
		if e.Location != nil {
			loc = *e.Location
		}
		if _, err := w.SpawnUnit(civID, e.Option, loc); err != nil {
			return err
		}
	case ErrandResearch:
		maxPoints := w.Registry.KnowledgeMax[e.Option]
		AddKnowledge(tile, e.Option, maxPoints, maxPoints)
	}
	return nil
}
