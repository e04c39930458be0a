// Package estimate computes an analytical projection of a run's evaluation,
// time, and monetary cost directly from a Config, without ever constructing
// or running an Engine.
package estimate

import (
	"math"

	"github.com/evoflow/gp-lite/gplite"
)

// Units are the optional per-unit costs used to derive time and monetary
// projections. A zero Units produces evaluation/operation counts only.
type Units struct {
	PerEvaluationMs         float64
	PerGenerationOverheadMs float64
	PerRunOverheadMs        float64
	PerEvaluationCost       float64
}

// Evaluations breaks down the projected evaluation count.
type Evaluations struct {
	Init          int
	PerGen        int
	PlannedTotal  int
	ExpectedTotal int

	// Capped* reflect the same totals clamped to MaxEvaluations, when set
	// and finite.
	CappedByMaxEvaluations bool
	CappedTotal            int
}

// Operations breaks down the projected per-generation operator counts.
type Operations struct {
	ImmigrantsPerGen           int
	ChildrenFromBreedingPerGen int
	PairsPerGen                int
	SelectionsPerGen           int
	ExpectedCrossoversPerGen   float64
	ExpectedMutationsPerGen    float64
}

// RunEstimate is the Estimator's output: a pure, deterministic function of
// (Config, Units, expectedGenerations).
type RunEstimate struct {
	Evaluations Evaluations
	Operations  Operations

	// TimeMs and Monetary are only populated (non-nil) when the
	// corresponding unit costs are non-zero.
	TimeMs   *float64
	Monetary *float64

	// CappedByMaxWallMs reports whether MaxWallMs is finite and the
	// projected TimeMs (computed from the expected totals) exceeds it. It is
	// false whenever TimeMs is nil. It does not itself reduce Evaluations.
	CappedByMaxWallMs bool
}

// Estimate projects evaluation/time/monetary cost for cfg. expectedGenerations
// overrides cfg.Generations for the "expected" (as opposed to "planned")
// totals when > 0; pass 0 to use cfg.Generations for both.
func Estimate(cfg gplite.Config, units Units, expectedGenerations int) RunEstimate {
	eff := gplite.Normalize(cfg).Effective()

	init := eff.PopSize
	perGen := eff.PopSize - eff.Elite

	plannedTotal := init + eff.Generations*perGen

	expectedGens := expectedGenerations
	if expectedGens <= 0 {
		expectedGens = eff.Generations
	}

	expectedTotal := init + expectedGens*perGen

	immigrantsPerGen := int(float64(eff.PopSize) * eff.Immigration)
	childrenPerGen := maxInt(0, eff.PopSize-eff.Elite-immigrantsPerGen)
	pairsPerGen := ceilDiv(childrenPerGen, 2)
	selectionsPerGen := 2 * pairsPerGen

	evals := Evaluations{
		Init:          init,
		PerGen:        perGen,
		PlannedTotal:  plannedTotal,
		ExpectedTotal: expectedTotal,
	}

	if !math.IsInf(eff.MaxEvaluations, 1) {
		capped := int(math.Min(float64(plannedTotal), eff.MaxEvaluations))
		if capped < plannedTotal {
			evals.CappedByMaxEvaluations = true
		}

		evals.CappedTotal = capped
	} else {
		evals.CappedTotal = plannedTotal
	}

	ops := Operations{
		ImmigrantsPerGen:           immigrantsPerGen,
		ChildrenFromBreedingPerGen: childrenPerGen,
		PairsPerGen:                pairsPerGen,
		SelectionsPerGen:           selectionsPerGen,
		ExpectedCrossoversPerGen:   float64(pairsPerGen) * eff.CxProb,
		ExpectedMutationsPerGen:    float64(childrenPerGen) * eff.MutProb,
	}

	result := RunEstimate{Evaluations: evals, Operations: ops}

	if units.PerEvaluationMs != 0 || units.PerGenerationOverheadMs != 0 || units.PerRunOverheadMs != 0 {
		timeMs := units.PerRunOverheadMs +
			float64(expectedTotal)*units.PerEvaluationMs +
			float64(expectedGens)*units.PerGenerationOverheadMs
		result.TimeMs = &timeMs

		if !math.IsInf(eff.MaxWallMs, 1) && timeMs > eff.MaxWallMs {
			result.CappedByMaxWallMs = true
		}
	}

	if units.PerEvaluationCost != 0 {
		monetary := float64(expectedTotal) * units.PerEvaluationCost
		result.Monetary = &monetary
	}

	return result
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}

	return (a + b - 1) / b
}
