// Package sudoku implements the Sudoku-domain shell of spec component 4.9:
// encoding a puzzle's clues as unit clauses, merging them with a rules file,
// decoding a satisfying assignment back into a grid, and validating a grid
// for row/column/box uniqueness.
//
// Grounded on
// _examples/original_source/convert_soduko_to_cnf.py's
// sudoku_input_to_dimacs (clue encoding), on
// _examples/original_source/Scripts/helpers/sat_outcome_converter.py's
// from_list_to_matrix (decoding), and on
// _examples/original_source/Scripts/experiments/sudoku_validator.py's
// is_valid_sudoku (validation).
package sudoku

import (
	"errors"
	"fmt"
	"math"
)

// ErrConflictingClue is returned by Encode when the puzzle string gives the
// same cell two different values, a malformed-input condition the original
// Python left for the solver to discover as an UNSAT result.
var ErrConflictingClue = errors.New("sudoku: conflicting clue")

// varNum maps a 1-indexed (row, col, value) triple to the DIMACS variable
// number a grid of dimension n uses: (n+1)^2*row + (n+1)*col + value.
// sudoku_input_to_dimacs's 100*row+10*col+value (n=9) and
// sudoku16_input_to_dimacs's 17**2*row+17*col+value (n=16) are both the
// n+1 case of this same formula, so it generalizes to any n without
// changing the 9x9 numbering.
func varNum(row, col, value, n int) int {
	b := n + 1
	return b*b*row + b*col + value
}

// Encode converts puzzle, a row-major string of length n*n where '.' marks
// an unknown cell and any other rune is parsed as its decimal digit value,
// into one unit clause per clue. n is the grid dimension (9 for a standard
// puzzle).
//
// It returns ErrConflictingClue if the same cell is given two different
// values — Encode only ever sees one character per cell so this only
// happens if callers pre-merge multiple puzzle strings; it is checked
// anyway since spec.md singles it out as a case the original let slip
// through to the solver undetected.
func Encode(puzzle string, n int) ([][]int, error) {
	if len(puzzle) != n*n {
		return nil, fmt.Errorf("sudoku: puzzle length %d does not match n=%d (want %d)", len(puzzle), n, n*n)
	}

	clues := map[[2]int]int{}
	var clauses [][]int
	for i, ch := range puzzle {
		if ch == '.' {
			continue
		}
		v := int(ch - '0')
		if v <= 0 || v > n {
			return nil, fmt.Errorf("sudoku: invalid clue digit %q at position %d", ch, i)
		}
		row := i/n + 1
		col := i%n + 1
		cell := [2]int{row, col}
		if existing, ok := clues[cell]; ok && existing != v {
			return nil, ErrConflictingClue
		}
		clues[cell] = v
		clauses = append(clauses, []int{varNum(row, col, v, n)})
	}
	return clauses, nil
}

// NumVars returns the highest DIMACS variable id a grid of dimension n can
// produce, varNum(n, n, n, n) — the variable-count upper bound callers pass
// to the solvers, which index variables directly by id rather than by a
// dense 1..n^3 remapping.
func NumVars(n int) int {
	return varNum(n, n, n, n)
}

// Merge appends rule clauses (typically read from a fixed
// sudoku-rules-NxN.cnf file via internal/dimacs) to the clue clauses Encode
// produced, mirroring merge_rules in the original Python.
func Merge(clueClauses, ruleClauses [][]int) [][]int {
	out := make([][]int, 0, len(clueClauses)+len(ruleClauses))
	out = append(out, clueClauses...)
	out = append(out, ruleClauses...)
	return out
}

// Decode turns a satisfying assignment (signed literals, positive meaning
// true) into an n*n grid of cell values, 0 for any cell no true literal
// claims. Only the first true value seen for a cell is kept, matching
// from_list_to_matrix's "if sudoku[row][col] == 0" guard against a
// (spec-excluded, since at-most-one is always encoded in the rules)
// doubly-assigned cell.
func Decode(assignment []int, n int) [][]int {
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}
	b := n + 1
	for _, lit := range assignment {
		if lit <= 0 {
			continue
		}
		row := lit / (b * b)
		col := (lit / b) % b
		value := lit % b
		if row < 1 || row > n || col < 1 || col > n {
			continue
		}
		if grid[row-1][col-1] == 0 {
			grid[row-1][col-1] = value
		}
	}
	return grid
}

// Valid reports whether every row, column, and sqrt(n)-by-sqrt(n) sub-box of
// grid contains each value exactly once.
func Valid(grid [][]int) bool {
	n := len(grid)
	return rowsValid(grid) && columnsValid(grid, n) && boxesValid(grid, n)
}

func rowsValid(grid [][]int) bool {
	for _, row := range grid {
		if !allUnique(row) {
			return false
		}
	}
	return true
}

func columnsValid(grid [][]int, n int) bool {
	col := make([]int, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = grid[r][c]
		}
		if !allUnique(col) {
			return false
		}
	}
	return true
}

func boxesValid(grid [][]int, n int) bool {
	boxSize := int(math.Sqrt(float64(n)))
	if boxSize*boxSize != n {
		return true // non-square-box dimension: box constraint does not apply
	}
	box := make([]int, 0, n)
	for boxRow := 0; boxRow < n; boxRow += boxSize {
		for boxCol := 0; boxCol < n; boxCol += boxSize {
			box = box[:0]
			for r := boxRow; r < boxRow+boxSize; r++ {
				for c := boxCol; c < boxCol+boxSize; c++ {
					box = append(box, grid[r][c])
				}
			}
			if !allUnique(box) {
				return false
			}
		}
	}
	return true
}

func allUnique(values []int) bool {
	seen := map[int]int{}
	for _, v := range values {
		seen[v]++
	}
	for _, count := range seen {
		if count != 1 {
			return false
		}
	}
	return true
}
