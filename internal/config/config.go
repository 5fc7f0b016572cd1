// SPDX-License-Identifier: MIT

// Package config resolves the solver parameters of the command-line tools
// from the process environment and an optional .env file.
//
// Precedence, highest first: a non-empty process variable, a non-empty value
// in the .env file, the pagerank.Default* constants. The process environment
// is never modified.
package config

import (
	"errors"
	"io/fs"
	"math"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/pagerank/pagerank"
	"golang.org/x/xerrors"
)

// DefaultEnvFile is read when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

// Environment variable names.
const (
	EnvDamping       = "PAGERANK_DAMPING"
	EnvEpsilon       = "PAGERANK_EPSILON"
	EnvMaxIterations = "PAGERANK_MAX_ITERATIONS"
	EnvDangling      = "PAGERANK_DANGLING"
	EnvVerbose       = "PAGERANK_VERBOSE"
)

// ErrInvalidValue is matched by every parse or range error returned by Load
// and Parse.
var ErrInvalidValue = errors.New("config: invalid value")

// Config carries the solver parameters of one run.
type Config struct {
	// Damping is the probability of following a link. Range [0, 1].
	Damping float64

	// Epsilon is the L1 convergence threshold. Must be >= 0.
	Epsilon float64

	// MaxIterations caps the matrix-vector products. Must be >= 0.
	MaxIterations int

	// Dangling selects the treatment of nodes without outgoing links.
	Dangling pagerank.DanglingPolicy

	// Verbose turns on DEBUG logging.
	Verbose bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Damping:       pagerank.DefaultDamping,
		Epsilon:       pagerank.DefaultEpsilon,
		MaxIterations: pagerank.DefaultMaxIterations,
		Dangling:      pagerank.DanglingUniform,
	}
}

// Options returns the solver options implied by c.
func (c Config) Options() []pagerank.Option {
	return []pagerank.Option{pagerank.WithDanglingPolicy(c.Dangling)}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var err error
	if math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1 {
		err = multierror.Append(err, xerrors.Errorf("damping %v must be in the range [0, 1]: %w", c.Damping, ErrInvalidValue))
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon < 0 {
		err = multierror.Append(err, xerrors.Errorf("epsilon %v must be >= 0: %w", c.Epsilon, ErrInvalidValue))
	}
	if c.MaxIterations < 0 {
		err = multierror.Append(err, xerrors.Errorf("max iterations %d must be >= 0: %w", c.MaxIterations, ErrInvalidValue))
	}

	return err
}

// LookupFunc returns the raw value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Load reads envFile (skipped when empty) and resolves the configuration
// against the process environment.
func Load(envFile string, env LookupFunc) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = vars
		case errors.Is(err, fs.ErrNotExist) && envFile == DefaultEnvFile:
			// optional
		default:
			return Config{}, xerrors.Errorf("config: reading %s: %w", envFile, err)
		}
	}

	return Parse(layered(env, file))
}

// layered gives non-empty values from env priority over the file.
func layered(env LookupFunc, file map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if env != nil {
			if v, ok := env(key); ok && strings.TrimSpace(v) != "" {
				return v, true
			}
		}
		v, ok := file[key]
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}

		return v, true
	}
}

// Parse builds a Config from lookup, starting from Default. Every malformed or
// out-of-range variable is collected into one multierror.
func Parse(lookup LookupFunc) (Config, error) {
	cfg := Default()
	var err, errs error

	if v, ok := lookup(EnvDamping); ok {
		if cfg.Damping, err = parseFloat(EnvDamping, v); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if v, ok := lookup(EnvEpsilon); ok {
		if cfg.Epsilon, err = parseFloat(EnvEpsilon, v); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if v, ok := lookup(EnvMaxIterations); ok {
		n, convErr := strconv.Atoi(strings.TrimSpace(v))
		if convErr != nil {
			errs = multierror.Append(errs, xerrors.Errorf("%s=%q is not an integer: %w", EnvMaxIterations, v, ErrInvalidValue))
		}
		cfg.MaxIterations = n
	}
	if v, ok := lookup(EnvDangling); ok {
		p, pErr := pagerank.ParseDanglingPolicy(v)
		if pErr != nil {
			errs = multierror.Append(errs, xerrors.Errorf("%s=%q: %w", EnvDangling, v, ErrInvalidValue))
		}
		cfg.Dangling = p
	}
	if v, ok := lookup(EnvVerbose); ok {
		b, bErr := strconv.ParseBool(strings.TrimSpace(v))
		if bErr != nil {
			errs = multierror.Append(errs, xerrors.Errorf("%s=%q is not a boolean: %w", EnvVerbose, v, ErrInvalidValue))
		}
		cfg.Verbose = b
	}
	if errs != nil {
		return Config{}, errs
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseFloat(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, xerrors.Errorf("%s=%q is not a number: %w", key, v, ErrInvalidValue)
	}

	return f, nil
}
