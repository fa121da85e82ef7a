package sat

// Trail is the ordered sequence of assigned literals described in spec
// component 4.2. Position in the trail is the assignment timestamp; the
// decision-level boundaries recorded in trailLim partition the trail into
// the prefix assigned at each level.
type Trail struct {
	literals []Literal // assignment order
	trailLim []int     // trailLim[k-1] is the trail position where level k starts

	assigns []LBool  // indexed by literal
	level   []int    // indexed by variable id
	reason  []*Clause // indexed by variable id; nil for decisions and top-level facts
}

// grow adds room for one more variable, matching Solver.AddVariable.
func (t *Trail) grow() {
	t.assigns = append(t.assigns, Unknown, Unknown)
	t.level = append(t.level, -1)
	t.reason = append(t.reason, nil)
}

// Value returns the current value of literal l.
func (t *Trail) Value(l Literal) LBool {
	return t.assigns[l]
}

// VarValue returns the current value of variable v's positive literal.
func (t *Trail) VarValue(v int) LBool {
	return t.assigns[PositiveLiteral(v)]
}

// CurrentLevel returns the number of decisions currently in effect.
func (t *Trail) CurrentLevel() int {
	return len(t.trailLim)
}

// PushDecisionLevel opens a new decision level starting at the trail's
// current length.
func (t *Trail) PushDecisionLevel() {
	t.trailLim = append(t.trailLim, len(t.literals))
}

// Len returns the number of literals currently assigned.
func (t *Trail) Len() int {
	return len(t.literals)
}

// At returns the i-th assigned literal in assignment order.
func (t *Trail) At(i int) Literal {
	return t.literals[i]
}

// assign appends l to the trail at the given level with the given reason
// clause (nil for a decision or a top-level fact). ok is false if l's
// variable is already assigned with the opposite sign — the caller (BCP)
// interprets this as a conflict. fresh is true only when this call made a
// new assignment (as opposed to observing one already in place), which is
// what the caller uses to decide whether to enqueue l for propagation.
func (t *Trail) assign(l Literal, level int, reason *Clause) (fresh, ok bool) {
	switch t.assigns[l] {
	case False:
		return false, false
	case True:
		return false, true
	default:
		varID := l.VarID()
		t.assigns[l] = True
		t.assigns[l.Opposite()] = False
		t.level[varID] = level
		t.reason[varID] = reason
		t.literals = append(t.literals, l)
		return true, true
	}
}

// backjumpTo truncates the trail to the literals assigned at a level less
// than or equal to level, unassigning every removed variable in reverse
// order (last assigned, first undone). undo is called once per removed
// literal so the caller (the branching heuristic, via Solver) can reinsert
// the freed variable into its candidate set.
func (t *Trail) backjumpTo(level int, undo func(l Literal)) {
	if level >= t.CurrentLevel() {
		return
	}
	target := t.trailLim[level]
	for i := len(t.literals) - 1; i >= target; i-- {
		l := t.literals[i]
		v := l.VarID()
		t.assigns[l] = Unknown
		t.assigns[l.Opposite()] = Unknown
		t.reason[v] = nil
		t.level[v] = -1
		if undo != nil {
			undo(l)
		}
	}
	t.literals = t.literals[:target]
	t.trailLim = t.trailLim[:level]
}
