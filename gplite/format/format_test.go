package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evoflow/gp-lite/gplite"
	"github.com/evoflow/gp-lite/gplite/format"
)

func TestFitness_PreservesInfinities(t *testing.T) {
	require.Equal(t, "∞", format.Fitness(math.Inf(1)))
	require.Equal(t, "-∞", format.Fitness(math.Inf(-1)))
}

func TestFitness_IntegerVsFractional(t *testing.T) {
	require.Equal(t, "64", format.Fitness(64))
	require.Equal(t, "0.3333", format.Fitness(1.0/3.0))
}

func TestResult_IsPureFunctionOfItsArgument(t *testing.T) {
	r := gplite.Result[int]{
		Best:              7,
		BestFitness:       7,
		Generations:       3,
		History:           []float64{1, 4, 7},
		MeanHistory:       []float64{0.5, 2, 4},
		InvalidHistory:    []int{0, 0, 0},
		ValidShareHistory: []float64{1, 1, 1},
		ElapsedMs:         12.5,
		StopReason:        gplite.StopGenerations,
		Metrics:           gplite.Metrics{Config: gplite.Normalize(gplite.DefaultConfig())},
		RunID:             "ignored-by-formatter",
	}

	a := format.Result(r)
	b := format.Result(r)
	require.Equal(t, a, b)
	require.Contains(t, a, "best fitness:     7")
	require.Contains(t, a, string(gplite.StopGenerations))
}
