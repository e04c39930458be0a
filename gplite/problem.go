package gplite

import "github.com/evoflow/gp-lite/gplite/rng"

// RNG is the contract the engine threads through every call into user
// code. It is re-exported from gplite/rng so Problem implementations need
// only import this package.
type RNG = rng.Source

// Problem bundles the four required genome operators. T is opaque to the
// engine; no structural assumptions are made about it anywhere in gplite.
type Problem[T any] interface {
	// CreateRandom produces a fresh random genome. Panics propagate and
	// abort the run — this is a programmer error, not a graceful stop.
	CreateRandom(r RNG) T
	// Fitness scores a genome, higher is better. A returned error is
	// absorbed by the engine and the genome is ranked -∞; this is the only
	// operator whose failures are caught.
	Fitness(g T) (float64, error)
	// Mutate returns a (possibly) mutated copy of g. Panics abort the run.
	Mutate(g T, r RNG) T
	// Crossover combines two parents into two children. Panics abort the
	// run.
	Crossover(a, b T, r RNG) (T, T)
}

// Validator is an optional capability: a Problem implementing it lets the
// engine reject structurally invalid genomes before scoring them.
type Validator[T any] interface {
	IsValid(g T) bool
}

// Repairer is an optional capability: a Problem implementing it lets the
// engine attempt to fix an invalid genome before giving up on it.
type Repairer[T any] interface {
	Repair(g T, r RNG) T
}

// DistanceFunc is an optional, reserved capability. It is not consumed by
// the core loop; it exists so custom selectors or future diversity metrics
// can use a problem-supplied distance without the engine imposing one.
type DistanceFunc[T any] interface {
	Distance(a, b T) float64
}

// validateProblem rejects a Problem missing a required operator. Because
// Problem[T] is a Go interface, the compiler already enforces the four
// required methods exist; the runtime check here rejects a nil Problem
// interface value handed to New. An interface holding a typed nil pointer
// is not nil and is not detected here.
func validateProblem[T any](p Problem[T]) error {
	if p == nil {
		return newError(KindProblem, "problem must not be nil")
	}

	return nil
}
