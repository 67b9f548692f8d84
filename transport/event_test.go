package transport

import (
	"encoding/json"
	"testing"
)

func TestEventMarshalsAsTwoElementArray(t *testing.T) {
	e := New(TileUpdate, map[string]int{"x": 1, "y": 2}, "payload")
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(out, &arr); err != nil {
		t.Fatalf("expected a JSON array, got %s: %v", out, err)
	}
	if len(arr) != 2 {
		t.Fatalf("expected [name, args], got %d elements", len(arr))
	}

	var name string
	if err := json.Unmarshal(arr[0], &name); err != nil || name != string(TileUpdate) {
		t.Errorf("first element = %s, want %q", arr[0], TileUpdate)
	}

	var args []any
	if err := json.Unmarshal(arr[1], &args); err != nil {
		t.Fatalf("second element should decode as an array: %v", err)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestEventWithNoArgsMarshalsEmptyArray(t *testing.T) {
	e := New(BeginTurn)
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `["beginTurn",[]]` {
		t.Errorf("got %s, want [\"beginTurn\",[]]", out)
	}
}

func TestMessageMarshalsUpdateArray(t *testing.T) {
	msg := Message{Update: []Event{New(EndTurn), New(BeginTurn)}}
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"update":[["endTurn",[]],["beginTurn",[]]]}` {
		t.Errorf("got %s", out)
	}
}
