// SPDX-License-Identifier: MIT

// Command pagerank solves one PageRank job and prints the rank vector.
//
// Usage:
//
//	pagerank -job graph.json [-env .env] [-damping 0.85] [-epsilon 1e-3]
//	         [-max-iter 1000] [-dangling uniform|propagate|reject] [-v]
//
// Parameters come from PAGERANK_* variables (process environment first, then
// the .env file) and are overridden by explicitly passed flags. Ranks go to
// stdout, one "index value" pair per line; logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/pagerank/internal/config"
	"github.com/katalvlaran/pagerank/internal/logger"
	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/pagerank"
)

// Exit codes.
const (
	exitOK    = 0
	exitSolve = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pagerank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		jobPath  = fs.String("job", "-", "job JSON file, - for stdin")
		envFile  = fs.String("env", config.DefaultEnvFile, "dotenv file with PAGERANK_* variables, empty to skip")
		damping  = fs.Float64("damping", pagerank.DefaultDamping, "damping factor q in [0,1]")
		epsilon  = fs.Float64("epsilon", pagerank.DefaultEpsilon, "L1 convergence threshold")
		maxIter  = fs.Int("max-iter", pagerank.DefaultMaxIterations, "maximum number of iterations")
		dangling = fs.String("dangling", pagerank.DanglingUniform.String(), "dangling node policy: uniform, propagate or reject")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := logger.New(stderr, false)
	cfg, err := config.Load(*envFile, os.LookupEnv)
	if err != nil {
		log.Error("config: %v", err)
		return exitUsage
	}

	// Explicit flags win over the environment.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "damping":
			cfg.Damping = *damping
		case "epsilon":
			cfg.Epsilon = *epsilon
		case "max-iter":
			cfg.MaxIterations = *maxIter
		case "dangling":
			cfg.Dangling, flagErr = pagerank.ParseDanglingPolicy(*dangling)
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if flagErr != nil {
		log.Error("flags: %v", flagErr)
		return exitUsage
	}
	if err = cfg.Validate(); err != nil {
		log.Error("flags: %v", err)
		return exitUsage
	}
	log = logger.New(stderr, cfg.Verbose)
	log.Debug("damping=%v epsilon=%v max-iter=%d dangling=%s", cfg.Damping, cfg.Epsilon, cfg.MaxIterations, cfg.Dangling)

	A, initial, err := readJobFile(*jobPath, stdin)
	if err != nil {
		log.Error("%v", err)
		return exitSolve
	}
	log.Debug("job: %d nodes", A.Rows())

	res, err := pagerank.PageRank(A, initial, cfg.MaxIterations, cfg.Damping, cfg.Epsilon, cfg.Options()...)
	if err != nil {
		log.Error("solve: %v", err)
		return exitSolve
	}
	if len(res.Dangling) > 0 {
		log.Warn("dangling nodes %v handled as %s", res.Dangling, cfg.Dangling)
	}
	if !res.Converged {
		log.Warn("no convergence after %d iterations (last delta %g)", res.Iterations, res.Delta)
	}

	for i, r := range res.Rank {
		if _, err = fmt.Fprintf(stdout, "%d %s\n", i, strconv.FormatFloat(r, 'g', -1, 64)); err != nil {
			log.Error("write: %v", err)
			return exitSolve
		}
	}
	log.Info("iterations=%d converged=%v delta=%g sum=%g", res.Iterations, res.Converged, res.Delta, matrix.VecSum(res.Rank))

	return exitOK
}
