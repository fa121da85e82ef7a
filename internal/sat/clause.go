package sat

import "strings"

// Clause is an ordered, append-only disjunction of literals. Original
// clauses and learned clauses share this representation; the only
// difference is the learnt flag, kept for statistics (see Stats.Learned).
//
// A clause always holds at least two literals: clauses of length 0 or 1
// are resolved into a conflict or a top-level fact at construction time
// and never materialize as a *Clause (see newClause).
type Clause struct {
	literals []Literal
	learnt   bool
}

// newClause builds a clause from tmpLiterals, which may be mutated. It
// returns (nil, true) when the clause is satisfied or trivially true and
// need not be stored, (nil, false) when the clause is a contradiction, and
// otherwise a ready-to-watch *Clause.
//
// Non-learnt clauses are simplified against the root-level assignment and
// checked for tautologies (a literal and its negation both present) and
// duplicate literals, matching the two-watched-literal index's expectation
// that the two watches are always distinct. Learned clauses skip this
// check: the conflict analyzer is trusted to produce a clause with no
// duplicate or complementary literals.
func newClause(s *Solver, tmpLiterals []Literal, learnt bool) (*Clause, bool) {
	size := len(tmpLiterals)

	if !learnt {
		seen := map[Literal]struct{}{}
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
				return nil, true // tautology
			}
			if _, ok := seen[tmpLiterals[i]]; ok {
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
				continue
			}
			seen[tmpLiterals[i]] = struct{}{}

			switch s.trail.Value(tmpLiterals[i]) {
			case True:
				return nil, true
			case False:
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			}
		}
		tmpLiterals = tmpLiterals[:size]
	}

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, s.enqueue(tmpLiterals[0], nil)
	default:
		c := &Clause{
			literals: append([]Literal(nil), tmpLiterals...),
			learnt:   learnt,
		}
		if learnt {
			// Put the literal with the highest decision level in the second
			// watch position so that backjumping to the learned clause's
			// backjump level leaves exactly one watch unassigned.
			maxLevel := -1
			swapWith := 1
			for i := 1; i < len(c.literals); i++ {
				if lvl := s.trail.level[c.literals[i].VarID()]; lvl > maxLevel {
					maxLevel = lvl
					swapWith = i
				}
			}
			c.literals[swapWith], c.literals[1] = c.literals[1], c.literals[swapWith]
		}
		s.watchClause(c, c.literals[0].Opposite(), c.literals[1])
		s.watchClause(c, c.literals[1].Opposite(), c.literals[0])
		return c, true
	}
}

// Literals returns an immutable view of the clause's literals.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Learnt reports whether the clause was produced by conflict analysis.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// propagate is invoked when l has just become true, so that its opposite
// (one of the clause's two watches) has just become false. It returns true
// if the clause remains
// non-falsified (either already satisfied, or a new watch was found, or it
// became unit and the implication was enqueued without conflict) and false
// if the clause is now the conflict clause.
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if s.trail.Value(c.literals[0]) == True {
		s.watchClause(c, l, c.literals[0])
		return true
	}

	for i := 2; i < len(c.literals); i++ {
		if s.trail.Value(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], l.Opposite()
			s.watchClause(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	// No replacement: the clause is unit on literals[0], or falsified if
	// literals[0] is already false.
	s.watchClause(c, l, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

// explainConflict returns the negation of every literal in c, used by the
// conflict analyzer when c is the falsified conflict clause itself.
func (c *Clause) explainConflict() []Literal {
	out := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		out[i] = l.Opposite()
	}
	return out
}

// explainAssign returns the negation of every literal but literals[0],
// used when c is the reason an implied literal (literals[0]) was asserted.
func (c *Clause) explainAssign() []Literal {
	out := make([]Literal, 0, len(c.literals)-1)
	for _, l := range c.literals[1:] {
		out = append(out, l.Opposite())
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
