package experiment

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/abdullahk/cnfsat/internal/sudoku"
)

// a minimal 4x4 Sudoku rule set: each cell has at least one value among
// {1,2,3,4}, encoded with the same (n+1)^2*row+(n+1)*col+value variable
// numbering sudoku.Encode uses for n=4 (base 5, not the 9x9 rules' base
// 10). It is not a full Sudoku rule set (no uniqueness constraints), just
// enough to exercise the harness end-to-end.
func miniRules() [][]int {
	const base = 5 // n+1 for n=4
	var rules [][]int
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			clause := make([]int, 4)
			for v := 1; v <= 4; v++ {
				clause[v-1] = base*base*r + base*c + v
			}
			rules = append(rules, clause)
		}
	}
	return rules
}

func TestSolveOne_ProducesAllThreeEngineColumns(t *testing.T) {
	cfg := Config{
		RuleClauses: miniRules(),
		NumVars:     sudoku.NumVars(4),
		N:           4,
	}
	row := SolveOne("1...............", cfg)

	for _, col := range []string{
		"basic_DPLL_is_satisfied",
		"CHB_is_satisfied",
		"VSIDS_is_satisfied",
		"unsolved_sudoku",
		"unsolved_sudoku_number_of_clues",
	} {
		if _, ok := row[col]; !ok {
			t.Errorf("SolveOne(): missing column %q in row %v", col, row)
		}
	}
	if got, want := row["basic_DPLL_is_satisfied"], "true"; got != want {
		t.Errorf("row[basic_DPLL_is_satisfied]: want %q, got %q", want, got)
	}
	if got, want := row["unsolved_sudoku_number_of_clues"], strconv.Itoa(1); got != want {
		t.Errorf("row[unsolved_sudoku_number_of_clues]: want %q, got %q", want, got)
	}
}

func TestRun_PreservesOrderAcrossWorkers(t *testing.T) {
	cfg := Config{RuleClauses: miniRules(), NumVars: sudoku.NumVars(4), N: 4, Workers: 2}
	puzzles := []string{
		"1...............",
		"2...............",
		"3...............",
	}
	rows := Run(puzzles, cfg)
	if len(rows) != len(puzzles) {
		t.Fatalf("Run(): want %d rows, got %d", len(puzzles), len(rows))
	}
	for i, p := range puzzles {
		if rows[i]["unsolved_sudoku"] != p {
			t.Errorf("Run(): row %d want puzzle %q, got %q", i, p, rows[i]["unsolved_sudoku"])
		}
		if _, ok := rows[i]["conflicts_per_sec_ema"]; !ok {
			t.Errorf("Run(): row %d missing conflicts_per_sec_ema", i)
		}
	}
}

func TestWriteCSV_HeaderSortedCaseInsensitively(t *testing.T) {
	rows := []Row{
		{"B_col": "1", "a_col": "2"},
		{"B_col": "3"},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV(): want no error, got %s", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "a_col,B_col") {
		t.Errorf("WriteCSV(): want header starting with a_col,B_col, got %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("WriteCSV(): want 1 header + 2 rows, got %d lines", len(lines))
	}
}
