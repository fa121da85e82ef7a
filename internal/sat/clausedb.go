package sat

// clauseDB is the append-only clause store described in spec component
// 4.1: original clauses and learned clauses are both owned here, indices
// are stable for the lifetime of the solve, and nothing is ever removed
// (the solver does not implement a clause-deletion policy).
type clauseDB struct {
	clauses []*Clause
	learned int // number of entries in clauses that are learnt
}

// add stores c as an original clause and returns its stable index.
func (db *clauseDB) add(c *Clause) int {
	db.clauses = append(db.clauses, c)
	return len(db.clauses) - 1
}

// appendLearned stores c as a learned clause and returns its stable index.
func (db *clauseDB) appendLearned(c *Clause) int {
	idx := db.add(c)
	db.learned++
	return idx
}

// get returns the clause at index i.
func (db *clauseDB) get(i int) *Clause {
	return db.clauses[i]
}

func (db *clauseDB) numClauses() int {
	return len(db.clauses)
}

func (db *clauseDB) numLearned() int {
	return db.learned
}
