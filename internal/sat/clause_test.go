package sat

import "testing"

func TestClause_ExplainAssignAndConflict(t *testing.T) {
	s := NewSolver(NewEVSIDSHeuristic(0.95))
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}

	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	c, ok := newClause(s, append([]Literal(nil), lits...), false)
	if !ok || c == nil {
		t.Fatalf("newClause(): want a fresh 3-literal clause, got (%v, %v)", c, ok)
	}

	wantConflict := []Literal{lits[0].Opposite(), lits[1].Opposite(), lits[2].Opposite()}
	if got := c.explainConflict(); !literalsEqual(got, wantConflict) {
		t.Errorf("explainConflict(): want %v, got %v", wantConflict, got)
	}

	wantAssign := []Literal{lits[1].Opposite(), lits[2].Opposite()}
	if got := c.explainAssign(); !literalsEqual(got, wantAssign) {
		t.Errorf("explainAssign(): want %v, got %v", wantAssign, got)
	}

	if c.Learnt() {
		t.Errorf("Learnt(): want false for an original clause, got true")
	}
	if c.String() == "" {
		t.Errorf("String(): want non-empty representation")
	}
}

func TestClause_UnitClauseAssertsImmediately(t *testing.T) {
	s := NewSolver(NewEVSIDSHeuristic(0.95))
	s.AddVariable()

	c, ok := newClause(s, []Literal{PositiveLiteral(0)}, false)
	if !ok {
		t.Fatalf("newClause(): want ok=true for a consistent unit clause")
	}
	if c != nil {
		t.Errorf("newClause(): want nil *Clause for a unit clause, got %v", c)
	}
	if s.trail.Value(PositiveLiteral(0)) != True {
		t.Errorf("Value(+0): want True after asserting the unit clause, got %v", s.trail.Value(PositiveLiteral(0)))
	}
}

func TestClause_TautologyIsDropped(t *testing.T) {
	s := NewSolver(NewEVSIDSHeuristic(0.95))
	s.AddVariable()

	c, ok := newClause(s, []Literal{PositiveLiteral(0), NegativeLiteral(0)}, false)
	if !ok {
		t.Fatalf("newClause(): want ok=true for a tautology")
	}
	if c != nil {
		t.Errorf("newClause(): want nil *Clause for a tautology, got %v", c)
	}
}

func literalsEqual(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
