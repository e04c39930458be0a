// Package format renders a gplite.Result as a human-readable multi-line
// summary: best fitness, stop reason, elapsed time, config echo, and
// aggregate counters.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/evoflow/gp-lite/gplite"
)

// Fitness renders a fitness value per spec.md §4.8: "∞"/"-∞" preserved,
// integers without decimals, fractional values rounded to four decimals.
func Fitness(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

// Budget renders an optional numeric budget ("∞" when unbounded).
func Budget(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return humanize.CommafWithDigits(v, 0)
}

// Result renders a complete Result summary. It is a pure function of its
// argument — calling it twice on the same Result yields identical output.
func Result[T any](r gplite.Result[T]) string {
	var b strings.Builder

	m := r.Metrics
	cfg := m.Config.Effective()

	lastMean := math.Inf(-1)
	if n := len(r.MeanHistory); n > 0 {
		lastMean = r.MeanHistory[n-1]
	}

	lastInvalid := 0
	if n := len(r.InvalidHistory); n > 0 {
		lastInvalid = r.InvalidHistory[n-1]
	}

	lastValidShare := 1.0
	if n := len(r.ValidShareHistory); n > 0 {
		lastValidShare = r.ValidShareHistory[n-1]
	}

	fmt.Fprintf(&b, "gp-lite run summary\n")
	fmt.Fprintf(&b, "  best fitness:     %s\n", Fitness(r.BestFitness))
	fmt.Fprintf(&b, "  generations:      %s\n", humanize.Comma(int64(r.Generations)))
	fmt.Fprintf(&b, "  stop reason:      %s\n", r.StopReason)
	fmt.Fprintf(&b, "  elapsed:          %s\n", time.Duration(r.ElapsedMs*float64(time.Millisecond)).String())
	fmt.Fprintf(&b, "  last generation:  mean=%s invalid=%s validShare=%.4f\n",
		Fitness(lastMean), humanize.Comma(int64(lastInvalid)), lastValidShare)
	fmt.Fprintf(&b, "  evaluations:      %s (invalid=%s repaired=%s repairFailures=%s)\n",
		humanize.Comma(int64(m.Evaluations)), humanize.Comma(int64(m.InvalidEvaluations)),
		humanize.Comma(int64(m.Repaired)), humanize.Comma(int64(m.RepairFailures)))
	fmt.Fprintf(&b, "  fitness errors:   %s (non-finite=%s)\n",
		humanize.Comma(int64(m.FitnessErrors)), humanize.Comma(int64(m.NonFiniteFitness)))
	fmt.Fprintf(&b, "  operators:        mutations=%s crossovers=%s selections=%s immigrants=%s elitesPerGen=%s\n",
		humanize.Comma(int64(m.Mutations)), humanize.Comma(int64(m.Crossovers)),
		humanize.Comma(int64(m.Selections)), humanize.Comma(int64(m.Immigrants)),
		humanize.Comma(int64(m.ElitesPerGen)))
	fmt.Fprintf(&b, "  config:           popSize=%d generations=%d elite=%d cxProb=%.2f mutProb=%.2f immigration=%.2f tournament=%d stall=%d\n",
		cfg.PopSize, cfg.Generations, cfg.Elite, cfg.CxProb, cfg.MutProb, cfg.Immigration, cfg.Tournament, cfg.Stall)
	fmt.Fprintf(&b, "  budgets:          targetFitness=%s maxWallMs=%s maxEvaluations=%s\n",
		Fitness(cfg.TargetFitness), Budget(cfg.MaxWallMs), Budget(cfg.MaxEvaluations))

	return b.String()
}
