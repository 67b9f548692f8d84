package sim

import "errors"

// Sentinel errors for the error kinds named in spec.md §7. Only
// ErrSerializationMismatch is fatal; the others are non-mutating
// rejections an action handler checks for before returning.
var (
	// ErrIllegalAction is returned by action handlers when a predicate
	// gate fails (not owned, wrong terrain, already occupied, …). No
	// mutation has occurred when this is returned.
	ErrIllegalAction = errors.New("sim: illegal action")

	// ErrRoutingFailure means findRoute could not reconstruct a path;
	// the caller should skip this candidate and continue.
	ErrRoutingFailure = errors.New("sim: routing failure")

	// ErrMissingPlayer means sendToCiv had no connected human; callers
	// log and continue, the simulation is unaffected.
	ErrMissingPlayer = errors.New("sim: missing player")

	// ErrSerializationMismatch is fatal at load time: Import received a
	// shape it cannot reconstruct.
	ErrSerializationMismatch = errors.New("sim: serialization mismatch")

	// ErrTileNotFound means a Coord fell outside the map's rows/columns.
	ErrTileNotFound = errors.New("sim: tile not found")
)
