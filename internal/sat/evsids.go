package sat

import "github.com/rhartert/yagh"

// EVSIDSHeuristic is the Exponential Variable State Independent Decaying
// Sum heuristic of spec component 4.5: every literal (not just every
// variable) carries its own score, initialized by counting its occurrences
// in the original clauses, bumped by one whenever it appears in a learned
// conflict clause, and decayed by a fixed multiplicative factor after every
// conflict.
//
// Decide must return the unassigned literal with the highest score, so the
// live candidates (literals whose variable is still unassigned) are kept in
// a binary heap (github.com/rhartert/yagh) keyed by literal rather than by
// variable, giving an O(log n) decision instead of the O(n) scan the
// original Python implementation used.
type EVSIDSHeuristic struct {
	decayFactor float64

	scores []float64            // indexed by literal
	order  *yagh.IntMap[float64] // min-heap over -scores[l], keyed by int(l)
}

// NewEVSIDSHeuristic returns an EVSIDS heuristic that multiplies every
// score by decayFactor after each conflict, as described in spec 4.5
// ("e.g. 0.95").
func NewEVSIDSHeuristic(decayFactor float64) *EVSIDSHeuristic {
	return &EVSIDSHeuristic{
		decayFactor: decayFactor,
		order:       yagh.New[float64](0),
	}
}

func (h *EVSIDSHeuristic) grow() {
	h.scores = append(h.scores, 0, 0)
	h.order.GrowBy(2)
}

// Initialize counts literal occurrences across the original clauses and
// seeds the heap with those counts.
func (h *EVSIDSHeuristic) Initialize(clauses [][]Literal) {
	for _, clause := range clauses {
		for _, l := range clause {
			h.scores[l]++
		}
	}
	for l, s := range h.scores {
		h.order.Put(l, -s)
	}
}

// OnConflict bumps every literal of the learned conflict clause by one.
func (h *EVSIDSHeuristic) OnConflict(conflictClause []Literal) {
	for _, l := range conflictClause {
		h.scores[l]++
		if h.order.Contains(int(l)) {
			h.order.Put(int(l), -h.scores[l])
		}
	}
}

// Decay multiplies every literal's score by the decay factor.
func (h *EVSIDSHeuristic) Decay() {
	for l := range h.scores {
		h.scores[l] *= h.decayFactor
		if h.order.Contains(l) {
			h.order.Put(l, -h.scores[l])
		}
	}
}

// Decide pops literals off the heap until it finds one whose variable is
// still unassigned. Popped-but-assigned entries are dropped from the heap;
// they are made candidates again via unassign once their variable is
// backjumped away from.
func (h *EVSIDSHeuristic) Decide(t *Trail) (Literal, bool) {
	for {
		next, ok := h.order.Pop()
		if !ok {
			return 0, false
		}
		l := Literal(next.Elem)
		if t.VarValue(l.VarID()) == Unknown {
			// The literal becomes a decision and its variable gets assigned,
			// so it is correctly absent from the heap until unassign puts
			// it back (on backjump).
			return l, true
		}
	}
}

func (h *EVSIDSHeuristic) unassign(v int) {
	pos := PositiveLiteral(v)
	neg := NegativeLiteral(v)
	if !h.order.Contains(int(pos)) {
		h.order.Put(int(pos), -h.scores[pos])
	}
	if !h.order.Contains(int(neg)) {
		h.order.Put(int(neg), -h.scores[neg])
	}
}
