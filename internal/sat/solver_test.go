package sat

import (
	"testing"

	"github.com/abdullahk/cnfsat/internal/dimacs"
)

// heuristics returns one instance of each branching heuristic the package
// offers, so the end-to-end scenarios below can be run against both.
func heuristics() map[string]func() Heuristic {
	return map[string]func() Heuristic{
		"EVSIDS": func() Heuristic { return NewEVSIDSHeuristic(0.95) },
		"CHB":    func() Heuristic { return DefaultCHBHeuristic() },
	}
}

// mustReadTestdata loads one of the golden DIMACS fixtures backing the
// literal end-to-end scenarios in spec.md §8.
func mustReadTestdata(t *testing.T, name string) dimacs.Formula {
	t.Helper()
	f, err := dimacs.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("dimacs.ReadFile(%s): %v", name, err)
	}
	return f
}

func solveDIMACS(t *testing.T, clauses [][]int, nVars int, h Heuristic) Result {
	t.Helper()
	s, err := NewSolverFromCNF(clauses, nVars, h)
	if err != nil {
		t.Fatalf("NewSolverFromCNF(): %v", err)
	}
	return s.Solve()
}

// satisfies reports whether assignment (internal-encoding literals, one per
// variable) satisfies every clause in clauses (1-indexed signed DIMACS
// literals).
func satisfies(assignment []Literal, clauses [][]int) bool {
	value := func(v int) bool {
		return assignment[v-1].IsPositive()
	}
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if (lit > 0) == value(v) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestSolve_UnitContradiction(t *testing.T) {
	formula := mustReadTestdata(t, "unit_contradiction.cnf")
	for name, newH := range heuristics() {
		t.Run(name, func(t *testing.T) {
			got := solveDIMACS(t, formula.Clauses, formula.NumVars, newH())
			if got.Status != Unsat {
				t.Errorf("Solve(): want UNSAT, got %v", got.Status)
			}
		})
	}
}

func TestSolve_TwoVariableSAT(t *testing.T) {
	formula := mustReadTestdata(t, "two_variable_sat.cnf")
	for name, newH := range heuristics() {
		t.Run(name, func(t *testing.T) {
			got := solveDIMACS(t, formula.Clauses, formula.NumVars, newH())
			if got.Status != Sat {
				t.Fatalf("Solve(): want SAT, got %v", got.Status)
			}
			if !satisfies(got.Assignment, formula.Clauses) {
				t.Errorf("Solve(): assignment %v does not satisfy %v", got.Assignment, formula.Clauses)
			}
		})
	}
}

func TestSolve_ThreeClauseSAT(t *testing.T) {
	formula := mustReadTestdata(t, "three_clause_sat.cnf")
	for name, newH := range heuristics() {
		t.Run(name, func(t *testing.T) {
			got := solveDIMACS(t, formula.Clauses, formula.NumVars, newH())
			if got.Status != Sat {
				t.Fatalf("Solve(): want SAT, got %v", got.Status)
			}
			if !satisfies(got.Assignment, formula.Clauses) {
				t.Errorf("Solve(): assignment %v does not satisfy %v", got.Assignment, formula.Clauses)
			}
		})
	}
}

func TestSolve_PigeonholeUnsat(t *testing.T) {
	// PHP(3,2): 3 pigeons, 2 holes, variable (i-1)*2+j meaning pigeon i sits
	// in hole j. Every pigeon sits in some hole, and no hole holds two
	// pigeons; with 3 pigeons and 2 holes this is unsatisfiable.
	formula := mustReadTestdata(t, "pigeonhole_3_2.cnf")
	for name, newH := range heuristics() {
		t.Run(name, func(t *testing.T) {
			got := solveDIMACS(t, formula.Clauses, formula.NumVars, newH())
			if got.Status != Unsat {
				t.Errorf("Solve(): want UNSAT, got %v", got.Status)
			}
		})
	}
}

func TestSolve_EmptyFormula(t *testing.T) {
	got := solveDIMACS(t, nil, 0, NewEVSIDSHeuristic(0.95))
	if got.Status != Sat {
		t.Fatalf("Solve(): want SAT, got %v", got.Status)
	}
	if len(got.Assignment) != 0 {
		t.Errorf("Solve(): want empty assignment, got %v", got.Assignment)
	}
}

func TestSolve_EmptyClauseIsUnsat(t *testing.T) {
	got := solveDIMACS(t, [][]int{{}}, 1, NewEVSIDSHeuristic(0.95))
	if got.Status != Unsat {
		t.Errorf("Solve(): want UNSAT, got %v", got.Status)
	}
}

func TestSolve_SingleUnitClauseIsSat(t *testing.T) {
	got := solveDIMACS(t, [][]int{{1}}, 1, NewEVSIDSHeuristic(0.95))
	if got.Status != Sat {
		t.Fatalf("Solve(): want SAT, got %v", got.Status)
	}
	if !got.Assignment[0].IsPositive() {
		t.Errorf("Solve(): want variable 1 true, got false")
	}
}

func TestSolve_ComplementaryUnitsIsUnsat(t *testing.T) {
	got := solveDIMACS(t, [][]int{{1}, {-1}}, 1, NewEVSIDSHeuristic(0.95))
	if got.Status != Unsat {
		t.Errorf("Solve(): want UNSAT, got %v", got.Status)
	}
}

// TestSolve_ZeroDecisionsOnSatisfyingAssignment checks the round-trip
// property: feeding a formula's own satisfying assignment back in as unit
// clauses must be solved with no decisions at all, since propagation alone
// settles every variable.
func TestSolve_ZeroDecisionsOnSatisfyingAssignment(t *testing.T) {
	formula := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	s, err := NewSolverFromCNF(formula, 3, NewEVSIDSHeuristic(0.95))
	if err != nil {
		t.Fatalf("NewSolverFromCNF(): %v", err)
	}
	model := s.Solve()
	if model.Status != Sat {
		t.Fatalf("Solve(): want SAT, got %v", model.Status)
	}

	units := make([][]int, len(model.Assignment)+len(formula))
	i := 0
	for _, l := range model.Assignment {
		units[i] = []int{l.DIMACS()}
		i++
	}
	for _, c := range formula {
		units[i] = c
		i++
	}

	s2, err := NewSolverFromCNF(units, 3, NewEVSIDSHeuristic(0.95))
	if err != nil {
		t.Fatalf("NewSolverFromCNF(): %v", err)
	}
	got := s2.Solve()
	if got.Status != Sat {
		t.Fatalf("Solve(): want SAT, got %v", got.Status)
	}
	if got.Stats.Decisions != 0 {
		t.Errorf("Solve(): want 0 decisions, got %d", got.Stats.Decisions)
	}
}
