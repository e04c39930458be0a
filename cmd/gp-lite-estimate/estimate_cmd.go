package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/evoflow/gp-lite/gplite"
	"github.com/evoflow/gp-lite/gplite/estimate"
)

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "project evaluation/time/monetary cost for a config without running it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a JSON config (see SPEC_FULL.md §6)"},
			&cli.IntFlag{Name: "popSize"},
			&cli.IntFlag{Name: "generations"},
			&cli.IntFlag{Name: "elite"},
			&cli.Float64Flag{Name: "cxProb"},
			&cli.Float64Flag{Name: "mutProb"},
			&cli.Float64Flag{Name: "immigration"},
			&cli.IntFlag{Name: "tournament"},
			&cli.IntFlag{Name: "stall"},
			&cli.Float64Flag{Name: "targetFitness"},
			&cli.Float64Flag{Name: "maxWallMs"},
			&cli.Float64Flag{Name: "maxEvaluations"},
			&cli.IntFlag{Name: "expectedGenerations"},
			&cli.Float64Flag{Name: "perEvaluationMs"},
			&cli.Float64Flag{Name: "perGenerationOverheadMs"},
			&cli.Float64Flag{Name: "perRunOverheadMs"},
			&cli.Float64Flag{Name: "perEvaluationCost"},
			&cli.BoolFlag{Name: "json", Usage: "machine-readable output"},
		},
		Action: runEstimate,
	}
}

func runEstimate(ctx context.Context, cmd *cli.Command) error {
	in := estimateInput{Config: gplite.DefaultConfig()}

	if path := cmd.String("config"); path != "" {
		loaded, err := loadEstimateInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}

		in = loaded
	}

	warnLegacyTimeLimitCoexistence(in.Config)
	applyEstimateFlagOverrides(cmd, &in)

	est := estimate.Estimate(in.Config, in.Units, in.ExpectedGenerations)

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(est); err != nil {
			return fmt.Errorf("encoding estimate: %w", err)
		}

		return nil
	}

	printEstimateSummary(est)

	return nil
}

// applyEstimateFlagOverrides overlays any explicitly-set numeric flags onto
// in, per spec.md §6: "flag values override JSON".
func applyEstimateFlagOverrides(cmd *cli.Command, in *estimateInput) {
	intOverride := func(name string, dst *int) {
		if cmd.IsSet(name) {
			*dst = int(cmd.Int(name))
		}
	}

	floatOverride := func(name string, dst *float64) {
		if cmd.IsSet(name) {
			*dst = cmd.Float64(name)
		}
	}

	// intPtrOverride/floatPtrOverride target Config's optional pointer
	// fields: a flag explicitly set on the command line always produces a
	// fresh non-nil pointer, overriding whatever --config loaded (even nil).
	intPtrOverride := func(name string, dst **int) {
		if cmd.IsSet(name) {
			*dst = gplite.Int(int(cmd.Int(name)))
		}
	}

	floatPtrOverride := func(name string, dst **float64) {
		if cmd.IsSet(name) {
			*dst = gplite.Float64(cmd.Float64(name))
		}
	}

	intOverride("popSize", &in.Config.PopSize)
	intOverride("generations", &in.Config.Generations)
	intPtrOverride("elite", &in.Config.Elite)
	floatPtrOverride("cxProb", &in.Config.CxProb)
	floatPtrOverride("mutProb", &in.Config.MutProb)
	floatPtrOverride("immigration", &in.Config.Immigration)
	intOverride("tournament", &in.Config.Tournament)
	intPtrOverride("stall", &in.Config.Stall)
	floatPtrOverride("targetFitness", &in.Config.TargetFitness)
	floatPtrOverride("maxWallMs", &in.Config.MaxWallMs)
	floatPtrOverride("maxEvaluations", &in.Config.MaxEvaluations)
	intOverride("expectedGenerations", &in.ExpectedGenerations)
	floatOverride("perEvaluationMs", &in.Units.PerEvaluationMs)
	floatOverride("perGenerationOverheadMs", &in.Units.PerGenerationOverheadMs)
	floatOverride("perRunOverheadMs", &in.Units.PerRunOverheadMs)
	floatOverride("perEvaluationCost", &in.Units.PerEvaluationCost)
}

func printEstimateSummary(est estimate.RunEstimate) {
	fmt.Println("gp-lite estimate")
	fmt.Printf("  evaluations: init=%d perGen=%d plannedTotal=%d expectedTotal=%d\n",
		est.Evaluations.Init, est.Evaluations.PerGen, est.Evaluations.PlannedTotal, est.Evaluations.ExpectedTotal)

	if est.Evaluations.CappedByMaxEvaluations {
		fmt.Printf("    capped by maxEvaluations: %d\n", est.Evaluations.CappedTotal)
	}

	fmt.Printf("  operations:  immigrantsPerGen=%d childrenPerGen=%d pairsPerGen=%d selectionsPerGen=%d\n",
		est.Operations.ImmigrantsPerGen, est.Operations.ChildrenFromBreedingPerGen,
		est.Operations.PairsPerGen, est.Operations.SelectionsPerGen)
	fmt.Printf("    expected crossovers/gen=%.2f expected mutations/gen=%.2f\n",
		est.Operations.ExpectedCrossoversPerGen, est.Operations.ExpectedMutationsPerGen)

	if est.TimeMs != nil {
		fmt.Printf("  projected time: %.1fms", *est.TimeMs)

		if est.CappedByMaxWallMs {
			fmt.Printf(" (exceeds maxWallMs)")
		}

		fmt.Println()
	}

	if est.Monetary != nil {
		fmt.Printf("  projected cost: %.4f\n", *est.Monetary)
	}
}
