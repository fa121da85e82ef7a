package sat

// EventType tags a History entry, grounded on
// _examples/original_source/Scripts/experiments/History.py's EventType enum.
type EventType int

const (
	EventImplication EventType = iota
	EventDecision
	EventConflict
)

func (t EventType) String() string {
	switch t {
	case EventImplication:
		return "IMPLICATION"
	case EventDecision:
		return "DECISION"
	case EventConflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Event is one entry in a solve's History. Count is the running counter of
// the event's kind at the time it was recorded (e.g. the 3rd decision).
// Seq is the entry's position across all event kinds, replacing the
// original Python's wall-clock timestamp with a deterministic sequence
// number so that two runs on identical input produce identical histories,
// per spec.md §8's heuristic-determinism property.
type Event struct {
	Type  EventType
	Count int64
	Seq   int64
}

// History accumulates the solve's decision/implication/conflict timeline.
// Solve returns it to callers as Result.History, alongside the aggregate
// Stats counters; internal/experiment does not write it to its CSV rows.
type History struct {
	events []Event
}

func (h *History) record(t EventType, count int64) {
	h.events = append(h.events, Event{Type: t, Count: count, Seq: int64(len(h.events))})
}

// Events returns the recorded event trace in chronological order.
func (h *History) Events() []Event {
	return h.events
}
