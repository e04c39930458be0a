// Package selector provides the pluggable parent-index chooser the engine
// consults during breeding. The default is k-tournament selection.
package selector

import "github.com/evoflow/gp-lite/gplite/rng"

// FitnessAt lets a Selector read a population's fitness values without the
// engine handing out its internal Individual representation. Index i must
// be in [0, Len()).
type FitnessAt interface {
	Len() int
	FitnessAt(i int) float64
}

// Selector chooses a single parent index from the population, given a
// source of randomness. Implementations must be pure with respect to r —
// no hidden entropy — so the engine's determinism guarantee holds for
// custom selectors too.
type Selector interface {
	Select(pop FitnessAt, r rng.Source) int
}

// Tournament samples K indices with replacement and returns the index with
// the highest fitness, ties broken by the earliest index encountered
// (strict '>' in the running comparison).
type Tournament struct {
	K int
}

// NewTournament constructs a Tournament selector of the given size. Sizes
// larger than the population are permitted — sampling is with replacement.
func NewTournament(k int) Tournament {
	return Tournament{K: k}
}

// Select implements Selector.
func (t Tournament) Select(pop FitnessAt, r rng.Source) int {
	n := pop.Len()
	best := r.Intn(n)
	bestFitness := pop.FitnessAt(best)

	for i := 1; i < t.K; i++ {
		idx := r.Intn(n)
		if f := pop.FitnessAt(idx); f > bestFitness {
			best = idx
			bestFitness = f
		}
	}

	return best
}
