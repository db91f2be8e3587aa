package solver

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/diogosbr/prioritizr/mip"
)

// Backend solves a compiled program. Implementations must honour the context
// deadline and the config's time limit, whichever is tighter.
type Backend interface {
	// Name identifies the backend in the registry.
	Name() string
	// Solve runs the backend. A nil error guarantees a feasible solution.
	Solve(ctx context.Context, prog *mip.Program, cfg Config) (*mip.Solution, error)
}

var (
	regMu    sync.RWMutex
	backends = make(map[string]Backend)

	// preference orders automatic backend selection: native solvers first,
	// exhaustive search as the always-available fallback.
	preference = []string{"highs", "enumeration"}
)

// Register makes a backend selectable by name, replacing any previous
// backend with the same name. Backends call it from init.
func Register(b Backend) {
	regMu.Lock()
	defer regMu.Unlock()
	backends[b.Name()] = b
}

// Lookup returns the named backend, or ErrUnavailable.
func Lookup(name string) (Backend, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if b, ok := backends[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnavailable, name)
}

// Available lists the registered backend names, sorted.
func Available() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pickBackend(cfg Config) (Backend, error) {
	if cfg.Backend != "" {
		return Lookup(cfg.Backend)
	}
	for _, name := range preference {
		if b, err := Lookup(name); err == nil {
			return b, nil
		}
	}
	return nil, ErrUnavailable
}

// Solve hands prog to a backend and returns its normalized solution.
//
// Time: backend-dependent, Memory: O(vars) beyond the backend's own state.
func Solve(ctx context.Context, prog *mip.Program, opts ...Option) (*mip.Solution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	b, err := pickBackend(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose != nil {
		fmt.Fprintf(cfg.Verbose, "solver: backend=%s vars=%d rows=%d\n",
			b.Name(), prog.NumVars(), prog.NumRows())
	}
	sol, err := b.Solve(ctx, prog, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose != nil {
		fmt.Fprintf(cfg.Verbose, "solver: status=%s objective=%g gap=%g runtime=%s\n",
			sol.Status, sol.Objective, sol.Gap, sol.Runtime)
	}
	return sol, nil
}
