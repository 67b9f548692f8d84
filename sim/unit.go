package sim

// Unit is a single military/civilian piece on the map. Exactly one tile
// may reference a given unit (spec.md §3); the unit's own Coords field
// is the other half of that bidirectional link and both must be updated
// together (spec.md §5).
type Unit struct {
	ID    UnitID
	CivID CivID
	Type  string

	Promotion PromotionClass
	Movement  MovementClass

	HP              int
	MaxHP           int
	MovesRemaining  int
	MoveRange       int
	VisionRange     int
	AttackRange     int // 0 means this unit cannot make a ranged/melee attack

	// Coords is nil for a unit that has not yet been placed on the map
	// (spec.md §9's "null coords" sentinel).
	Coords *Coord
}

// NewUnit constructs an unplaced unit of typeName from the registry.
func NewUnit(id UnitID, civ CivID, typeName string, reg *Registry) *Unit {
	data := reg.UnitTypes[typeName]
	return &Unit{
		ID:             id,
		CivID:          civ,
		Type:           typeName,
		Promotion:      data.Promotion,
		Movement:       data.Movement,
		HP:             data.HP,
		MaxHP:          data.HP,
		MovesRemaining: data.MoveRange,
		MoveRange:      data.MoveRange,
		VisionRange:    data.VisionRange,
		AttackRange:    data.AttackRange,
	}
}

// ResetMovement restores full movement points at the start of a turn.
func (u *Unit) ResetMovement() {
	u.MovesRemaining = u.MoveRange
}

// CanAttack reports whether u can make any attack at all (has a
// nonzero attack range and remaining HP).
func (u *Unit) CanAttack() bool {
	return u.AttackRange > 0 && u.HP > 0
}

// IsAlive reports whether the unit still has positive HP.
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}
