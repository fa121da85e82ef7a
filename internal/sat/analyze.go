package sat

// analyzeConflict implements spec component 4.4's conflict analyzer using
// the First-UIP scheme that spec.md encourages over the required (weaker)
// decision-cut policy: starting from the falsified conflict clause, resolve
// against the antecedent of the most recently assigned seen literal until
// exactly one literal at the current decision level remains. That literal's
// negation becomes the first literal of the learned clause (the first
// unique implication point); the backjump level is the second-highest
// decision level among the remaining literals, or 0 if the clause is unit.
//
// This is a direct adaptation of the teacher's Solver.analyze, restructured
// over the Trail/clauseDB split instead of parallel arrays embedded in the
// solver.
func (s *Solver) analyzeConflict(conflict *Clause) ([]Literal, int) {
	pending := 0 // literals at the current level not yet resolved away

	learned := append(s.tmpLearned[:0], 0) // reserve slot 0 for the UIP
	s.seen.Clear()

	nextPos := s.trail.Len() - 1
	var uip Literal
	first := true

	for {
		var reasonLits []Literal
		if first {
			reasonLits = conflict.explainConflict()
			first = false
		} else {
			reasonLits = s.reasonOf(uip)
		}

		for _, q := range reasonLits {
			v := q.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)

			if s.trail.level[v] == s.trail.CurrentLevel() {
				pending++
				continue
			}

			learned = append(learned, q.Opposite())
		}

		// Walk the trail backwards to the next seen variable; its reason
		// clause (if any) is resolved against on the next iteration.
		for {
			uip = s.trail.At(nextPos)
			nextPos--
			if s.seen.Contains(uip.VarID()) {
				break
			}
		}

		pending--
		if pending <= 0 {
			break
		}
	}

	learned[0] = uip.Opposite()
	s.tmpLearned = learned

	backjumpLevel := 0
	for _, l := range learned[1:] {
		if lvl := s.trail.level[l.VarID()]; lvl > backjumpLevel {
			backjumpLevel = lvl
		}
	}

	out := append([]Literal(nil), learned...)
	return out, backjumpLevel
}

// reasonOf returns the literals that imply l, negated (i.e. the clause
// "reason(l) -> l" expressed as a disjunction not containing l), or nil if
// l was a decision literal (no reason clause).
func (s *Solver) reasonOf(l Literal) []Literal {
	reason := s.trail.reason[l.VarID()]
	if reason == nil {
		return nil
	}
	return reason.explainAssign()
}
