package estimate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evoflow/gp-lite/examples/onemax"
	"github.com/evoflow/gp-lite/gplite"
	"github.com/evoflow/gp-lite/gplite/estimate"
)

func TestEstimate_IsPureAndIdempotent(t *testing.T) {
	cfg := gplite.DefaultConfig()
	cfg.PopSize = 50
	cfg.Generations = 10

	a := estimate.Estimate(cfg, estimate.Units{}, 0)
	b := estimate.Estimate(cfg, estimate.Units{}, 0)
	require.Equal(t, a, b)
}

func TestEstimate_MatchesRealizedEvaluationsWhenUntruncated(t *testing.T) {
	cfg := gplite.Config{
		PopSize:     40,
		Generations: 30,
		Elite:       gplite.Int(2),
		CxProb:      gplite.Float64(0.8),
		MutProb:     gplite.Float64(0.1),
		Immigration: gplite.Float64(0.02),
		Tournament:  3,
		Seed:        7,
	}

	e, err := gplite.New[onemax.Genome](onemax.Problem{}, cfg)
	require.NoError(t, err)

	result, err := e.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, gplite.StopGenerations, result.StopReason)

	est := estimate.Estimate(cfg, estimate.Units{}, result.Generations)
	require.Equal(t, est.Evaluations.ExpectedTotal, result.Metrics.Evaluations)
}

func TestEstimate_PopulatesTimeAndMonetaryOnlyWhenUnitsGiven(t *testing.T) {
	cfg := gplite.DefaultConfig()

	bare := estimate.Estimate(cfg, estimate.Units{}, 0)
	require.Nil(t, bare.TimeMs)
	require.Nil(t, bare.Monetary)

	withUnits := estimate.Estimate(cfg, estimate.Units{PerEvaluationMs: 1.5, PerEvaluationCost: 0.001}, 0)
	require.NotNil(t, withUnits.TimeMs)
	require.NotNil(t, withUnits.Monetary)
}
