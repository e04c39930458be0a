package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evoflow/gp-lite/gplite"
	"github.com/evoflow/gp-lite/gplite/estimate"
)

// estimateInput mirrors the JSON shape spec.md §6 describes for --config:
// {config: {...}, units: {...}, expectedGenerations: N}.
type estimateInput struct {
	Config              gplite.Config  `json:"config"`
	Units               estimate.Units `json:"units"`
	ExpectedGenerations int            `json:"expectedGenerations"`
}

// loadEstimateInput reads and parses path, returning an unreadable-config
// error distinguishable by the caller (exit code 2).
func loadEstimateInput(path string) (estimateInput, error) {
	var in estimateInput

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return in, nil
}

// warnLegacyTimeLimitCoexistence prints a one-line notice when both
// maxWallMs and the legacy timeLimitMs alias are present in the input JSON
// (SPEC_FULL.md §12, decision 3 — no logging channel exists inside
// gplite.Normalize, so the CLI is the one place this can be surfaced).
func warnLegacyTimeLimitCoexistence(cfg gplite.Config) {
	if cfg.MaxWallMs != nil && cfg.TimeLimitMs != nil {
		fmt.Fprintf(os.Stderr, "warning: both maxWallMs and timeLimitMs set; maxWallMs wins\n")
	}
}
