package sat

// Heuristic is the capability set of spec component 4.5: a branching
// heuristic initializes its per-literal state from the original clauses,
// reacts to conflicts, decays over time, and picks the next literal to
// branch on. EVSIDSHeuristic and CHBHeuristic are the two concrete
// variants; the solver dispatches through this interface rather than a
// compile-time choice so that cmd/solver can select one from its -S flag.
type Heuristic interface {
	// Initialize seeds per-literal scores from the original clause set,
	// called once before the first decision.
	Initialize(clauses [][]Literal)

	// OnConflict is notified with the literals of a just-learned conflict
	// clause so the heuristic can reward/bump them.
	OnConflict(conflictClause []Literal)

	// Decay applies the heuristic's time-decay step. The solver calls this
	// once per conflict, after OnConflict.
	Decay()

	// Decide returns the next literal to branch on, or ok=false if every
	// variable is already assigned (the driver then reports SAT).
	Decide(t *Trail) (lit Literal, ok bool)

	// grow adds room for one more variable's score(s).
	grow()

	// unassign is called once per variable that backjump just freed, so a
	// heuristic backed by a priority queue (see EVSIDSHeuristic) can make
	// the variable's literals candidates for Decide again.
	unassign(v int)
}
