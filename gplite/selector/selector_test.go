package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evoflow/gp-lite/gplite/rng"
	"github.com/evoflow/gp-lite/gplite/selector"
)

type fitnessSlice []float64

func (f fitnessSlice) Len() int                { return len(f) }
func (f fitnessSlice) FitnessAt(i int) float64 { return f[i] }

func TestTournament_PicksHighestInSample(t *testing.T) {
	pop := fitnessSlice{1, 5, 3, 9, 2}
	tour := selector.NewTournament(len(pop)) // 5 draws with replacement; seed 1 draws indices 3,0,2,4,4

	r := rng.NewMulberry32(1)
	idx := tour.Select(pop, r)
	require.Equal(t, 3, idx) // fitness 9 is the max
}

func TestTournament_DeterministicForSameSeed(t *testing.T) {
	pop := fitnessSlice{1, 5, 3, 9, 2, 0, 7}
	tour := selector.NewTournament(2)

	a := tour.Select(pop, rng.NewMulberry32(99))
	b := tour.Select(pop, rng.NewMulberry32(99))
	require.Equal(t, a, b)
}

func TestTournament_LargerThanPopulationAllowed(t *testing.T) {
	pop := fitnessSlice{4, 2}
	tour := selector.NewTournament(50)

	r := rng.NewMulberry32(3)
	idx := tour.Select(pop, r)
	require.Contains(t, []int{0, 1}, idx)
}
