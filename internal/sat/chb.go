package sat

// CHBHeuristic is the Conflict History-Based heuristic of spec component
// 4.5, grounded directly on
// _examples/original_source/Scripts/heuristics/CHB.py: each literal keeps a
// Q score and a lastConflict timestamp, and a global conflict counter drives
// a reward that favors literals that participated in a *recent* conflict.
// The learning rate alpha decays linearly (not exponentially) from
// initialAlpha down to a floor.
//
// Decide is a linear scan over all literals, matching the original's
// defaultdict iteration; spec.md's Non-goals exclude any restart/deletion
// machinery that would justify a fancier data structure here, and the
// literal universe is small enough (2 per variable) that the scan is cheap.
type CHBHeuristic struct {
	initialAlpha float64
	minAlpha     float64
	decayRate    float64

	alpha         float64
	conflictCount int

	q            []float64 // Q score, indexed by literal
	lastConflict []int     // indexed by literal
}

// NewCHBHeuristic returns a CHB heuristic with the given parameters. The
// zero value of decayRate/minAlpha/initialAlpha is not usable; callers
// should use the constants mirrored from the Python original via
// DefaultCHBHeuristic if unsure.
func NewCHBHeuristic(initialAlpha, decayRate, minAlpha float64) *CHBHeuristic {
	return &CHBHeuristic{
		initialAlpha: initialAlpha,
		minAlpha:     minAlpha,
		decayRate:    decayRate,
		alpha:        initialAlpha,
	}
}

// DefaultCHBHeuristic mirrors the original's CHBHeuristics() defaults.
func DefaultCHBHeuristic() *CHBHeuristic {
	return NewCHBHeuristic(0.4, 1e-6, 0.06)
}

func (h *CHBHeuristic) grow() {
	h.q = append(h.q, 0, 0)
	h.lastConflict = append(h.lastConflict, 0, 0)
}

// Initialize is a no-op: every literal's zeroed entry is already created by
// grow, and CHB (unlike EVSIDS) does not seed scores from occurrence counts.
func (h *CHBHeuristic) Initialize(clauses [][]Literal) {}

// OnConflict implements the Python original's conflict() method: bump the
// conflict counter, then for every literal in the conflict clause compute
// reward = 1/(conflicts - lastConflict[l] + 1), blend it into Q with
// learning rate alpha, and stamp lastConflict. Decay of alpha is left to
// Decay, called by the solver right after OnConflict.
func (h *CHBHeuristic) OnConflict(conflictClause []Literal) {
	h.conflictCount++
	for _, l := range conflictClause {
		reward := 1.0 / float64(h.conflictCount-h.lastConflict[l]+1)
		h.q[l] = (1-h.alpha)*h.q[l] + h.alpha*reward
		h.lastConflict[l] = h.conflictCount
	}
}

// Decay linearly decays alpha toward minAlpha, matching decay_alpha in the
// Python original (a subtraction, not a multiplication).
func (h *CHBHeuristic) Decay() {
	if h.alpha > h.minAlpha {
		h.alpha -= h.decayRate
		if h.alpha < h.minAlpha {
			h.alpha = h.minAlpha
		}
	}
}

// Decide returns the unassigned literal with the highest Q score.
func (h *CHBHeuristic) Decide(t *Trail) (Literal, bool) {
	bestScore := 0.0
	best := Literal(0)
	found := false
	for l := 0; l < len(h.q); l++ {
		lit := Literal(l)
		if t.VarValue(lit.VarID()) != Unknown {
			continue
		}
		if !found || h.q[l] > bestScore {
			bestScore = h.q[l]
			best = lit
			found = true
		}
	}
	return best, found
}

func (h *CHBHeuristic) unassign(v int) {}
