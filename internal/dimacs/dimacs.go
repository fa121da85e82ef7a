// Package dimacs parses and writes the DIMACS CNF format described in spec
// component 4.8, wrapping the streaming reader of github.com/rhartert/dimacs
// the same way the teacher's parsers/parsers.go does, adapted to produce a
// solver-agnostic Formula instead of loading directly into a *sat.Solver:
// both internal/sat (via sat.NewSolverFromCNF) and internal/dpll consume the
// same plain-int clause representation, so this package has no dependency
// on either.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"
)

// Formula is a CNF formula over variables 1..NumVars, each clause a
// disjunction of signed, 1-indexed DIMACS literals.
type Formula struct {
	NumVars int
	Clauses [][]int
}

// ReadFile parses the DIMACS CNF instance at path. A ".gz" suffix is
// transparently decompressed, matching the teacher's gzipped-instance
// support.
func ReadFile(path string) (Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return Formula{}, fmt.Errorf("dimacs: opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Formula{}, fmt.Errorf("dimacs: ungzipping %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return Read(r)
}

// Read parses a DIMACS CNF instance from r.
func Read(r io.Reader) (Formula, error) {
	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return Formula{}, fmt.Errorf("dimacs: %w", err)
	}
	return Formula{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// builder implements github.com/rhartert/dimacs's Builder interface.
type builder struct {
	numVars int
	clauses [][]int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q", problem)
	}
	b.numVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	b.clauses = append(b.clauses, append([]int(nil), tmpClause...))
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

// WriteAssignment writes a satisfying assignment to path, one signed
// literal per assigned variable followed by " 0", space-separated and
// newline-terminated, matching spec §6's output format.
func WriteAssignment(path string, literals []int) error {
	var sb strings.Builder
	for _, l := range literals {
		fmt.Fprintf(&sb, "%d 0 \n", l)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("dimacs: writing %q: %w", path, err)
	}
	return nil
}
