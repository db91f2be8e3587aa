package solver

import (
	"io"
	"time"
)

// Defaults applied when an option is not given.
const (
	// DefaultGap is the relative optimality gap at which a backend may stop.
	DefaultGap = 1e-4
	// DefaultTimeLimit of zero means no limit beyond the context deadline.
	DefaultTimeLimit = time.Duration(0)
	// DefaultThreads of zero lets the backend choose its own parallelism.
	DefaultThreads = 0
)

// Config collects the solve parameters. Zero value + defaults is usable;
// Solve fills it from the options.
type Config struct {
	// Backend names the registered backend to use; empty picks the best
	// available one.
	Backend string
	// Gap is the relative optimality gap.
	Gap float64
	// TimeLimit caps the wall-clock solve time; zero means unlimited.
	TimeLimit time.Duration
	// Threads caps backend parallelism; zero lets the backend decide.
	Threads int
	// Presolve lets the backend simplify the program before solving.
	Presolve bool
	// FirstFeasible stops at the first feasible solution found.
	FirstFeasible bool
	// NumericFocus trades speed for numeric care in the backend.
	NumericFocus bool
	// Verbose receives progress lines; nil means silent.
	Verbose io.Writer
}

func defaultConfig() Config {
	return Config{
		Gap:       DefaultGap,
		TimeLimit: DefaultTimeLimit,
		Threads:   DefaultThreads,
		Presolve:  true,
	}
}

// Option configures a single Solve call.
type Option func(*Config) error

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(c *Config) error {
		c.Backend = name
		return nil
	}
}

// WithGap sets the relative optimality gap (≥ 0).
func WithGap(gap float64) Option {
	return func(c *Config) error {
		if gap < 0 {
			return ErrInvalidOption
		}
		c.Gap = gap
		return nil
	}
}

// WithTimeLimit caps the wall-clock solve time.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return ErrInvalidOption
		}
		c.TimeLimit = d
		return nil
	}
}

// WithThreads caps backend parallelism.
func WithThreads(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return ErrInvalidOption
		}
		c.Threads = n
		return nil
	}
}

// WithoutPresolve disables backend presolve, useful when diagnosing
// infeasibility against the raw formulation.
func WithoutPresolve() Option {
	return func(c *Config) error {
		c.Presolve = false
		return nil
	}
}

// WithFirstFeasible stops the backend at the first feasible solution; the
// result carries StatusSuboptimal.
func WithFirstFeasible() Option {
	return func(c *Config) error {
		c.FirstFeasible = true
		return nil
	}
}

// WithNumericFocus asks the backend to favour numeric stability over speed.
func WithNumericFocus() Option {
	return func(c *Config) error {
		c.NumericFocus = true
		return nil
	}
}

// WithVerbose streams backend progress to w.
func WithVerbose(w io.Writer) Option {
	return func(c *Config) error {
		c.Verbose = w
		return nil
	}
}
