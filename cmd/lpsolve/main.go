// Command lpsolve reads a model file in the declarative text format
// understood by the parser package, solves it, and prints the outcome.
//
// Usage:
//
//	lpsolve [-max-iter N] [-verbose] model.lp
//
// On an optimal solve the output lists the status, each variable's
// value in declaration order, the objective value and the iteration
// count. Non-optimal statuses print the status and iteration count
// only.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/optline/linprog/logger"
	"github.com/optline/linprog/parser"
	"github.com/optline/linprog/simplex"
)

func main() {
	maxIter := flag.Int("max-iter", simplex.DefaultMaxIterations, "pivot iteration cap")
	verbose := flag.Bool("verbose", false, "log each pivot step")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-max-iter N] [-verbose] model-file\n", os.Args[0])
		os.Exit(2)
	}

	log := logger.Logger()

	m, err := parser.ParseFile(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		os.Exit(1)
	}

	opts := simplex.DefaultOptions()
	opts.MaxIterations = *maxIter
	opts.Verbose = *verbose

	sol, err := m.Solve(&opts)
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		os.Exit(1)
	}

	fmt.Printf("status: %s\n", sol.Status)
	if sol.Status == simplex.StatusOptimal {
		for _, v := range m.Variables() {
			fmt.Printf("%s = %g\n", v.Name(), sol.Value(v))
		}
		fmt.Printf("objective = %g\n", sol.Objective)
	}
	fmt.Printf("iterations = %d\n", sol.Iterations)
}
