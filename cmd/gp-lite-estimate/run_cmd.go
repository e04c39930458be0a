package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/evoflow/gp-lite/examples/onemax"
	"github.com/evoflow/gp-lite/examples/shaped"
	"github.com/evoflow/gp-lite/gplite"
	"github.com/evoflow/gp-lite/gplite/format"
)

// runCommand is supplemental (SPEC_FULL.md §6.2): it exercises the engine
// end-to-end against a bundled reference Problem, the same role
// cmd/keyboardgen/main.go's runGA plays for the teacher's GA.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run a bundled reference problem to completion with a live progress bar",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "problem", Value: "onemax", Usage: "onemax | shaped"},
			&cli.StringFlag{Name: "config", Usage: "path to a JSON config"},
			&cli.UintFlag{Name: "seed"},
			&cli.BoolFlag{Name: "json"},
		},
		Action: runBundledProblem,
	}
}

func runBundledProblem(ctx context.Context, cmd *cli.Command) error {
	cfg := gplite.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		in, err := loadEstimateInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}

		cfg = in.Config
	}

	if cmd.IsSet("seed") {
		cfg.Seed = uint32(cmd.Uint("seed"))
	}

	bar := progressbar.Default(int64(cfg.Generations), "evolving")
	onGen := func(gctx gplite.GenerationContext, extra gplite.GenerationExtra) {
		_ = bar.Add(1)
	}

	var (
		summary string
		runErr  error
	)

	switch cmd.String("problem") {
	case "shaped":
		summary, runErr = runOne[shaped.Genome](ctx, shaped.Problem{}, cfg, onGen)
	default:
		summary, runErr = runOne[onemax.Genome](ctx, onemax.Problem{}, cfg, onGen)
	}

	_ = bar.Finish()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "run error: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(summary)

	return nil
}

func runOne[T any](ctx context.Context, problem gplite.Problem[T], cfg gplite.Config, onGen gplite.OnGenerationFunc) (string, error) {
	e, err := gplite.New[T](problem, cfg)
	if err != nil {
		return "", err
	}

	result, err := e.Run(ctx, onGen)
	if err != nil {
		return "", err
	}

	return format.Result(result), nil
}
