// Command experiment is the benchmark runner of spec component 4.10's
// experiment harness: read a newline-delimited file of unsolved Sudoku
// puzzles plus a DIMACS rules file, solve every puzzle three ways across a
// worker pool, and write one CSV row per puzzle.
//
// Grounded on
// _examples/original_source/Scripts/experiments/experiment_runner.py's
// main(), reshaped around goroutines instead of multiprocessing.Pool.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abdullahk/cnfsat/internal/dimacs"
	"github.com/abdullahk/cnfsat/internal/experiment"
	"github.com/abdullahk/cnfsat/internal/sudoku"
)

func main() {
	log.SetFlags(0)
	rulesPath := flag.String("rules", "", "DIMACS CNF file with the Sudoku encoding rules")
	puzzlesPath := flag.String("puzzles", "", "newline-delimited file of unsolved Sudoku strings")
	outPath := flag.String("out", "experiment_result.csv", "CSV output path")
	n := flag.Int("n", 9, "grid dimension (9 for a standard puzzle)")
	workers := flag.Int("workers", 0, "worker pool size (0 = runtime.NumCPU())")
	flag.Parse()

	if *rulesPath == "" || *puzzlesPath == "" {
		fmt.Fprintln(os.Stderr, "usage: experiment -rules <rules.cnf> -puzzles <puzzles.txt> [-out result.csv] [-n 9] [-workers N]")
		os.Exit(1)
	}

	rules, err := dimacs.ReadFile(*rulesPath)
	if err != nil {
		log.Fatal(err)
	}

	puzzles, err := readPuzzles(*puzzlesPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg := experiment.Config{
		RuleClauses: rules.Clauses,
		NumVars:     sudoku.NumVars(*n),
		N:           *n,
		Workers:     *workers,
	}

	start := time.Now()
	rows := experiment.Run(puzzles, cfg)
	elapsed := time.Since(start)

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := experiment.WriteCSV(out, rows); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Program finished in %.2f seconds to solve %d sudokus.\n", elapsed.Seconds(), len(puzzles))
}

func readPuzzles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var puzzles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		puzzles = append(puzzles, line)
	}
	return puzzles, scanner.Err()
}
