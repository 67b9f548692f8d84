// Package transport defines the wire contract the simulation core
// emits into, without implementing the framing/encoding collaborator
// itself (spec.md §1, §6): a closed set of named events and the Sender
// interface a connected player's socket (or an AI's no-op sink)
// implements.
package transport

import "encoding/json"

// Name is one of the closed set of event kinds the core emits.
type Name string

const (
	BeginGame     Name = "beginGame"
	CivData       Name = "civData"
	SetMap        Name = "setMap"
	BeginTurn     Name = "beginTurn"
	EndTurn       Name = "endTurn"
	TileUpdate    Name = "tileUpdate"
	UnitPositions Name = "unitPositions"
)

// Event is one [name, args] pair, matching spec.md §6's
// `Event = [name: string, args: any[]]`.
type Event struct {
	Name Name
	Args []any
}

// MarshalJSON renders an Event as the two-element JSON array the
// client expects, rather than a {"name":...,"args":...} object.
func (e Event) MarshalJSON() ([]byte, error) {
	args := e.Args
	if args == nil {
		args = []any{}
	}
	return json.Marshal([]any{e.Name, args})
}

// Message is the outbound envelope spec.md §6 describes: `{ update:
// Event[] }`.
type Message struct {
	Update []Event `json:"update"`
}

// Sender is the per-player outbound sink. A connected human's
// implementation writes Message as JSON to its socket; an AI has no
// sender at all, so sends to it are simply dropped by the caller
// (spec.md §7 MissingPlayer) rather than by any Sender implementation.
type Sender interface {
	Send(msg Message) error
}

// New builds a single-event convenience constructor.
func New(name Name, args ...any) Event {
	return Event{Name: name, Args: args}
}
