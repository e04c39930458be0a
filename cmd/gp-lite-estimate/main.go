// Command gp-lite-estimate is the CLI surface for the estimator and for
// exercising the engine against bundled reference problems.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "gp-lite-estimate",
		Usage: "project gp-lite run cost from a config, or run a bundled reference problem",
		Commands: []*cli.Command{
			estimateCommand(),
			runCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
