package gplite

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/evoflow/gp-lite/gplite/selector"
)

// individual pairs a genome with its fitness. -∞ marks an invalid
// individual that operators alone never improve.
type individual[T any] struct {
	genome  T
	fitness float64
}

// population is an ordered slice of individuals. Its length is exactly
// Config.PopSize at every point observable between generations (invariant
// 1); interior to a generation the successor buffer grows monotonically
// from 0 to PopSize.
type population[T any] []individual[T]

func (p population[T]) Len() int                { return len(p) }
func (p population[T]) FitnessAt(i int) float64 { return p[i].fitness }

func (p population[T]) sortDescending() {
	sort.SliceStable(p, func(i, j int) bool { return p[i].fitness > p[j].fitness })
}

// Engine runs the evolutionary loop for a fixed Problem[T] and Config. It
// is constructed once via New and run once via Run.
type Engine[T any] struct {
	problem  Problem[T]
	config   Config
	eff      Effective
	selector selector.Selector
	hooks    Hooks[T]
}

// New validates problem and config and returns a ready-to-run Engine, or a
// ConfigError/ProblemError. No run starts on a construction error.
func New[T any](problem Problem[T], config Config, opts ...Option[T]) (*Engine[T], error) {
	if err := validateProblem(problem); err != nil {
		return nil, err
	}

	cfg := normalize(config)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	o := engineOptions[T]{selector: selector.NewTournament(cfg.Tournament)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[T]{problem: problem, config: cfg, eff: cfg.Effective(), selector: o.selector, hooks: o.hooks}, nil
}

// Run executes the evolutionary loop to completion (one of the five stop
// reasons) and returns the Result. Run is synchronous and blocking; it
// never spawns a goroutine and returns when the loop terminates. onGen may
// be nil.
func (e *Engine[T]) Run(ctx context.Context, onGen OnGenerationFunc) (Result[T], error) {
	start := time.Now()
	metrics := &Metrics{Config: e.config}
	eval := newSafeEvaluator[T](e.problem, metrics)
	r := e.config.RNG

	pop := make(population[T], e.config.PopSize)
	for i := range pop {
		g := e.problem.CreateRandom(r)
		g, f := eval.evaluate(g, r)
		pop[i] = individual[T]{genome: g, fitness: f}
	}

	if float64(metrics.Evaluations) >= e.eff.MaxEvaluations {
		pop.sortDescending()

		return Result[T]{
			Best:              pop[0].genome,
			BestFitness:       pop[0].fitness,
			Generations:       0,
			History:           []float64{pop[0].fitness},
			MeanHistory:       []float64{math.Inf(-1)},
			InvalidHistory:    []int{0},
			ValidShareHistory: []float64{1},
			ElapsedMs:         elapsedMs(start),
			StopReason:        StopEvaluations,
			Metrics:           *metrics,
			RunID:             uuid.NewString(),
		}, nil
	}

	var (
		history, meanHistory, validShareHistory []float64
		invalidHistory                           []int
		stopReason                               StopReason
		generationsExecuted                      int
	)

genLoop:
	for gen := 0; gen < e.eff.Generations; gen++ {
		elapsed := elapsedMs(start)

		e.hooks.fireStart(StartContext{Gen: gen, ElapsedMs: elapsed})

		pop.sortDescending()

		best, mean, invalidCount := generationStats(pop)
		history = append(history, best)
		meanHistory = append(meanHistory, mean)
		invalidHistory = append(invalidHistory, invalidCount)
		validShare := float64(len(pop)-invalidCount) / float64(len(pop))
		validShareHistory = append(validShareHistory, validShare)

		if onGen != nil {
			onGen(
				GenerationContext{Gen: gen, Best: best, Mean: mean},
				GenerationExtra{InvalidCount: invalidCount, ValidShare: validShare},
			)
		}

		e.hooks.fireEnd(EndContext[T]{
			Gen: gen, Best: best, Mean: mean, InvalidCount: invalidCount,
			BestGenome: pop[0].genome, ElapsedMs: elapsed,
		})

		switch {
		case best >= e.eff.TargetFitness:
			stopReason = StopTarget
			break genLoop
		case ctx.Err() != nil || elapsed > e.eff.MaxWallMs:
			stopReason = StopTime
			break genLoop
		case float64(metrics.Evaluations) >= e.eff.MaxEvaluations:
			stopReason = StopEvaluations
			break genLoop
		case e.eff.Stall > 0 && len(history) > e.eff.Stall &&
			history[len(history)-1] <= history[len(history)-1-e.eff.Stall]:
			stopReason = StopStall
			break genLoop
		}

		successor, truncated := e.breed(pop, r, eval)
		pop = successor
		generationsExecuted = gen + 1

		if truncated {
			stopReason = StopEvaluations
			break genLoop
		}
	}

	if stopReason == "" {
		stopReason = StopGenerations
	}

	pop.sortDescending()

	return Result[T]{
		Best:              pop[0].genome,
		BestFitness:       pop[0].fitness,
		Generations:       generationsExecuted,
		History:           history,
		MeanHistory:       meanHistory,
		InvalidHistory:    invalidHistory,
		ValidShareHistory: validShareHistory,
		ElapsedMs:         elapsedMs(start),
		StopReason:        stopReason,
		Metrics:           *metrics,
		RunID:             uuid.NewString(),
	}, nil
}

// breed builds the successor population: elite carry-forward, then
// breeding until popSize-immigrantsPerGen, then immigration up to
// popSize. Returns the successor (possibly short of popSize if the
// evaluation budget was hit mid-way) and whether it was truncated.
func (e *Engine[T]) breed(pop population[T], r RNG, eval *safeEvaluator[T]) (population[T], bool) {
	cfg := e.eff
	metrics := eval.metrics
	immigrantsPerGen := minInt(int(float64(cfg.PopSize)*cfg.Immigration), cfg.PopSize-cfg.Elite)

	successor := make(population[T], 0, cfg.PopSize)
	successor = append(successor, pop[:cfg.Elite]...)
	metrics.ElitesPerGen += cfg.Elite

	breedTarget := cfg.PopSize - immigrantsPerGen

	truncated := false

	for len(successor) < breedTarget && !truncated {
		p1 := e.selector.Select(pop, r)
		p2 := e.selector.Select(pop, r)
		metrics.Selections += 2

		var c1, c2 T
		if r.Next() < cfg.CxProb {
			c1, c2 = e.problem.Crossover(pop[p1].genome, pop[p2].genome, r)
			metrics.Crossovers++
		} else {
			c1, c2 = pop[p1].genome, pop[p2].genome
		}

		if r.Next() < cfg.MutProb {
			c1 = e.problem.Mutate(c1, r)
			metrics.Mutations++
		}

		if r.Next() < cfg.MutProb {
			c2 = e.problem.Mutate(c2, r)
			metrics.Mutations++
		}

		g1, f1 := eval.evaluate(c1, r)
		successor = append(successor, individual[T]{genome: g1, fitness: f1})

		if float64(metrics.Evaluations) >= cfg.MaxEvaluations {
			truncated = true
			break
		}

		if len(successor) < breedTarget {
			g2, f2 := eval.evaluate(c2, r)
			successor = append(successor, individual[T]{genome: g2, fitness: f2})

			if float64(metrics.Evaluations) >= cfg.MaxEvaluations {
				truncated = true
				break
			}
		}
	}

	for !truncated && len(successor) < cfg.PopSize {
		g := e.problem.CreateRandom(r)
		g, f := eval.evaluate(g, r)
		successor = append(successor, individual[T]{genome: g, fitness: f})
		metrics.Immigrants++

		if float64(metrics.Evaluations) >= cfg.MaxEvaluations {
			truncated = true
		}
	}

	return successor, truncated
}

// generationStats computes, in one pass, the current best fitness, the
// mean over finite-fitness individuals (-∞ if none), and the count of
// non-finite (invalid) individuals. pop must already be sorted descending,
// so pop[0].fitness is the best.
func generationStats[T any](pop population[T]) (best, mean float64, invalidCount int) {
	best = pop[0].fitness

	var finiteSum float64

	var finiteCount int

	for _, ind := range pop {
		if math.IsInf(ind.fitness, 0) || math.IsNaN(ind.fitness) {
			invalidCount++
		} else {
			finiteSum += ind.fitness
			finiteCount++
		}
	}

	if finiteCount == 0 {
		mean = math.Inf(-1)
	} else {
		mean = finiteSum / float64(finiteCount)
	}

	return best, mean, invalidCount
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
