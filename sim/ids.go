package sim

// CivID, CityID, UnitID and TraderID are integer handles into World-owned
// arenas. Per spec.md §9 ("cyclic references... arena with integer
// handles"), entities reference each other by these handles rather than
// back-pointers, so Tile/Improvement/Trader never hold a pointer back to
// Map or World.
type CivID int
type CityID int
type UnitID int
type TraderID int
