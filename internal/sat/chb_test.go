package sat

import (
	"math"
	"testing"
)

func TestCHBHeuristic_OnConflictRewardsRecentLiterals(t *testing.T) {
	h := NewCHBHeuristic(0.4, 0.0, 0.06)
	h.grow()
	h.grow()

	h.OnConflict([]Literal{PositiveLiteral(0)})
	if h.conflictCount != 1 {
		t.Fatalf("conflictCount: want 1, got %d", h.conflictCount)
	}
	if h.q[PositiveLiteral(0)] <= 0 {
		t.Errorf("q[+0] after first conflict: want > 0, got %v", h.q[PositiveLiteral(0)])
	}

	// +1 has never been in a conflict (lastConflict 0), so at conflict 2 its
	// reward is 1/(2-0+1) = 1/3 and its Q becomes 0.4/3, below the 0.2 that
	// +0 earned from the reward 1/(1-0+1) = 1/2 at conflict 1.
	h.OnConflict([]Literal{PositiveLiteral(1)})
	if got, want := h.q[PositiveLiteral(1)], 0.4/3; math.Abs(got-want) > 1e-12 {
		t.Errorf("q[+1] after conflict 2: want %v, got %v", want, got)
	}
}

func TestCHBHeuristic_DecayIsLinearAndFloored(t *testing.T) {
	h := NewCHBHeuristic(0.4, 0.1, 0.35)

	h.Decay()
	if h.alpha != 0.35 {
		t.Errorf("alpha after one decay step: want 0.35 (floored), got %v", h.alpha)
	}
	h.Decay()
	if h.alpha != 0.35 {
		t.Errorf("alpha after reaching the floor: want to stay at 0.35, got %v", h.alpha)
	}
}

func TestCHBHeuristic_DecidePicksHighestQAmongUnassigned(t *testing.T) {
	h := DefaultCHBHeuristic()
	h.grow()
	h.grow()
	h.q[PositiveLiteral(0)] = 0.9
	h.q[PositiveLiteral(1)] = 0.1

	tr := newTrail(2)
	lit, ok := h.Decide(tr)
	if !ok {
		t.Fatalf("Decide(): want ok=true, got false")
	}
	if lit != PositiveLiteral(0) {
		t.Errorf("Decide(): want +0 (highest Q), got %v", lit)
	}

	tr.assign(lit, 0, nil)
	lit2, ok := h.Decide(tr)
	if !ok {
		t.Fatalf("Decide() after assigning variable 0: want ok=true, got false")
	}
	if lit2.VarID() != 1 {
		t.Errorf("Decide() after assigning variable 0: want variable 1, got %d", lit2.VarID())
	}
}
