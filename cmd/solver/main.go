// Command solver is the CLI surface of spec §6: solve a DIMACS CNF
// instance with one of three engines and report SAT/UNSAT, writing a
// satisfying assignment to "<cnf_path>.out" on success.
//
// Grounded on _examples/cespare-saturday/cmd/saturday/saturday.go's flag
// handling and exit-code convention.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/abdullahk/cnfsat/internal/dimacs"
	"github.com/abdullahk/cnfsat/internal/dpll"
	"github.com/abdullahk/cnfsat/internal/sat"
)

func main() {
	log.SetFlags(0)
	engine := flag.Int("S", 3, "solving engine: 1=DPLL, 2=CDCL+CHB, 3=CDCL+EVSIDS")
	verbose := flag.Bool("v", false, "print solver statistics to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `solver: a CNF satisfiability solver.

Usage:

  solver [-S<1|2|3>] [-v] <cnf_path>

-S selects the engine: 1 plain DPLL, 2 CDCL with the CHB heuristic,
3 (default) CDCL with the EVSIDS heuristic.
`)
	}
	// flag reads "-S2" as a flag named "S2"; rewrite the attached form to
	// "-S=2" so that "-S2", "-S 2" and "-S=2" all select an engine.
	for i, arg := range os.Args[1:] {
		if arg == "--" {
			break
		}
		if len(arg) > 2 && strings.HasPrefix(arg, "-S") && arg[2] != '=' {
			os.Args[i+1] = "-S=" + arg[2:]
		}
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *engine < 1 || *engine > 3 {
		log.Fatalf("invalid -S value %d: must be 1, 2, or 3", *engine)
	}
	path := flag.Arg(0)

	formula, err := dimacs.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	ok, assignment, stats := solve(*engine, formula)
	if *verbose {
		fmt.Fprintln(os.Stderr, stats)
	}

	if !ok {
		fmt.Println("UNSAT")
		return
	}
	fmt.Println("SAT")
	if err := dimacs.WriteAssignment(path+".out", assignment); err != nil {
		log.Fatal(err)
	}
}

// solve dispatches on the -S engine selector and returns a uniform
// (satisfiable, assignment, stats) triple regardless of which engine ran.
func solve(engine int, formula dimacs.Formula) (bool, []int, fmt.Stringer) {
	if engine == 1 {
		return solveDPLL(formula)
	}
	h := sat.Heuristic(sat.NewEVSIDSHeuristic(0.95))
	if engine == 2 {
		h = sat.DefaultCHBHeuristic()
	}
	return solveCDCL(formula, h)
}

func solveDPLL(formula dimacs.Formula) (bool, []int, fmt.Stringer) {
	clauses := make([]dpll.Clause, len(formula.Clauses))
	for i, c := range formula.Clauses {
		clauses[i] = dpll.Clause(c)
	}
	result := dpll.Solve(clauses, formula.NumVars)
	if !result.Satisfiable {
		return false, nil, dpllStats{result.Stats}
	}
	assignment := make([]int, 0, formula.NumVars)
	for v := 1; v <= formula.NumVars; v++ {
		if result.Assignment[v] {
			assignment = append(assignment, v)
		} else {
			assignment = append(assignment, -v)
		}
	}
	return true, assignment, dpllStats{result.Stats}
}

func solveCDCL(formula dimacs.Formula, h sat.Heuristic) (bool, []int, fmt.Stringer) {
	solver, err := sat.NewSolverFromCNF(formula.Clauses, formula.NumVars, h)
	if err != nil {
		log.Fatal(err)
	}
	result := solver.Solve()
	if result.Status != sat.Sat {
		return false, nil, result.Stats
	}
	assignment := make([]int, len(result.Assignment))
	for i, l := range result.Assignment {
		assignment[i] = l.DIMACS()
	}
	return true, assignment, result.Stats
}

// dpllStats adapts dpll.Stats (which has no String method of its own) to
// fmt.Stringer so verbose mode can print either engine's statistics
// uniformly.
type dpllStats struct {
	dpll.Stats
}

func (s dpllStats) String() string {
	return fmt.Sprintf(
		"recursions=%d implications=%d decisions=%d backtracks=%d conflicts=%d clause_simplifications=%d pure_literals=%d",
		s.Recursions, s.Implications, s.Decisions, s.Backtracks, s.Conflicts, s.ClauseSimplifications, s.PureLiterals)
}
