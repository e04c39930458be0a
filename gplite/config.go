package gplite

import (
	"math"
	"time"

	"github.com/evoflow/gp-lite/gplite/rng"
)

// StopReason enumerates why a run terminated.
type StopReason string

const (
	StopTarget      StopReason = "target"
	StopStall       StopReason = "stall"
	StopTime        StopReason = "time"
	StopEvaluations StopReason = "evaluations"
	StopGenerations StopReason = "generations"
)

// Config holds all engine tuning parameters. PopSize, Generations, and
// Tournament have no valid zero value, so a plain 0 unambiguously means
// "not specified" for them and normalize fills in the documented default.
// Every other tunable (Elite, CxProb, MutProb, Immigration, Stall,
// TargetFitness, MaxWallMs, TimeLimitMs, MaxEvaluations) documents 0 as a
// legitimate explicit value (spec.md §3), so those fields are pointers: a
// nil pointer means "not specified, use the default", and a pointer to 0
// means exactly that. Use the Float64/Int helpers to build non-nil
// pointers from literals. normalize fills every nil field with its
// documented default before validateConfig runs, so callers may construct
// a Config with only the fields they care about set.
type Config struct {
	PopSize     int  `json:"popSize"`
	Generations int  `json:"generations"`
	Elite       *int `json:"elite,omitempty"`

	CxProb      *float64 `json:"cxProb,omitempty"`
	MutProb     *float64 `json:"mutProb,omitempty"`
	Immigration *float64 `json:"immigration,omitempty"`
	Tournament  int      `json:"tournament"`
	Stall       *int     `json:"stall,omitempty"`

	TargetFitness *float64 `json:"targetFitness,omitempty"`
	MaxWallMs     *float64 `json:"maxWallMs,omitempty"`
	// TimeLimitMs is a legacy alias for MaxWallMs. When both are set,
	// MaxWallMs wins; see SPEC_FULL.md §12 for the precedence decision.
	TimeLimitMs    *float64 `json:"timeLimitMs,omitempty"`
	MaxEvaluations *float64 `json:"maxEvaluations,omitempty"`

	// Seed feeds the default RNG when RNG is nil. Ignored if RNG is set.
	Seed uint32 `json:"seed"`

	// RNG is an optional injection; nil means "use the default Mulberry32
	// seeded from Seed". RNG is not generic over T, so it lives directly
	// on Config. The Selector and Hooks injections spec.md §3 also lists
	// here are generic over T (a Selector picks among Individual[T]s, a
	// hook receives the best genome of type T); Go cannot store a
	// type-parameterized field in this non-generic, JSON-serializable
	// Config, so they are supplied instead as functional Options to New
	// (see options.go) — the same information, split across the
	// JSON-safe/non-JSON-safe boundary Go's type system draws for us.
	RNG RNG `json:"-"`
}

// Float64 returns a pointer to v, for populating Config's optional
// float64 fields from a literal (e.g. cfg.MaxWallMs = gplite.Float64(0)).
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for populating Config's optional int fields
// from a literal (e.g. cfg.Elite = gplite.Int(0)).
func Int(v int) *int {
	return &v
}

// DefaultConfig returns a Config with every field set to the documented
// default (spec.md §3), except Elite, whose default depends on PopSize and
// is left nil for normalize to compute.
func DefaultConfig() Config {
	return Config{
		PopSize:        100,
		Generations:    1000,
		Elite:          nil, // normalize computes max(1, floor(0.02*popSize))
		CxProb:         Float64(0.8),
		MutProb:        Float64(0.1),
		Immigration:    Float64(0.02),
		Tournament:     3,
		Stall:          Int(50),
		TargetFitness:  Float64(math.Inf(1)),
		MaxWallMs:      Float64(math.Inf(1)),
		MaxEvaluations: Float64(math.Inf(1)),
	}
}

// Normalize fills unset fields with defaults and resolves the legacy
// timeLimitMs alias, returning a normalized copy. It is exported so the
// estimator (gplite/estimate) can share the exact same pass the engine
// runs at New, letting its projections mirror realized counters precisely
// when no early stop or budget clipping occurs (spec §4.7).
func Normalize(c Config) Config {
	return normalize(c)
}

func normalize(c Config) Config {
	d := DefaultConfig()

	if c.PopSize == 0 {
		c.PopSize = d.PopSize
	}

	if c.Generations == 0 {
		c.Generations = d.Generations
	}

	// Elite's documented default is max(1, floor(0.02*popSize)); nil means
	// "not specified". A caller-supplied 0 (no elitism) is left as-is.
	if c.Elite == nil {
		c.Elite = Int(maxInt(1, int(0.02*float64(c.PopSize))))
	}

	if c.CxProb == nil {
		c.CxProb = d.CxProb
	}

	if c.MutProb == nil {
		c.MutProb = d.MutProb
	}

	if c.Immigration == nil {
		c.Immigration = d.Immigration
	}

	if c.Tournament == 0 {
		c.Tournament = d.Tournament
	}

	// Stall's documented default is 50; nil means "not specified". A
	// caller-supplied 0 (disable the stall check) is left as-is — see the
	// e.eff.Stall > 0 guard on the stall check in engine.go.
	if c.Stall == nil {
		c.Stall = d.Stall
	}

	if c.TargetFitness == nil {
		c.TargetFitness = d.TargetFitness
	}

	// maxWallMs: legacy alias resolution. maxWallMs wins when both are
	// present (SPEC_FULL.md §12).
	if c.MaxWallMs == nil {
		if c.TimeLimitMs != nil {
			c.MaxWallMs = c.TimeLimitMs
		} else {
			c.MaxWallMs = d.MaxWallMs
		}
	}

	if c.MaxEvaluations == nil {
		c.MaxEvaluations = d.MaxEvaluations
	}

	if c.RNG == nil {
		seed := c.Seed
		if seed == 0 {
			seed = uint32(nowMillis())
		}

		c.RNG = rng.NewMulberry32(seed)
	}

	return c
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Effective collapses a normalized Config's pointer fields into plain
// values, for code (the engine's hot loop, the estimator, the formatter)
// that reads them repeatedly and has no use for the unset/zero
// distinction once normalize has already resolved it. Calling Effective
// on a Config that has not been through Normalize panics on the first nil
// pointer it finds; New and Normalize always produce a fully-populated
// Config, so this is never a concern downstream of them.
type Effective struct {
	PopSize, Generations, Elite, Tournament, Stall int
	CxProb, MutProb, Immigration                   float64
	TargetFitness, MaxWallMs, MaxEvaluations       float64
}

// Effective returns c's plain-value view. See the Effective type doc.
func (c Config) Effective() Effective {
	return Effective{
		PopSize:        c.PopSize,
		Generations:    c.Generations,
		Elite:          *c.Elite,
		Tournament:     c.Tournament,
		Stall:          *c.Stall,
		CxProb:         *c.CxProb,
		MutProb:        *c.MutProb,
		Immigration:    *c.Immigration,
		TargetFitness:  *c.TargetFitness,
		MaxWallMs:      *c.MaxWallMs,
		MaxEvaluations: *c.MaxEvaluations,
	}
}

// validateConfig rejects out-of-range numerics. Run once, at New, after
// normalize; every pointer field is therefore guaranteed non-nil here.
func validateConfig(c Config) error {
	if c.PopSize < 2 {
		return newErrorf(KindConfig, "popSize must be >= 2, got %d", c.PopSize)
	}

	if c.Generations < 1 {
		return newErrorf(KindConfig, "generations must be >= 1, got %d", c.Generations)
	}

	if *c.Elite < 0 || *c.Elite > c.PopSize {
		return newErrorf(KindConfig, "elite must be in [0, popSize], got %d (popSize=%d)", *c.Elite, c.PopSize)
	}

	if err := validateProbability(*c.CxProb, "cxProb"); err != nil {
		return err
	}

	if err := validateProbability(*c.MutProb, "mutProb"); err != nil {
		return err
	}

	if err := validateProbability(*c.Immigration, "immigration"); err != nil {
		return err
	}

	if c.Tournament < 1 {
		return newErrorf(KindConfig, "tournament must be >= 1, got %d", c.Tournament)
	}

	if *c.Stall < 0 {
		return newErrorf(KindConfig, "stall must be >= 0, got %d", *c.Stall)
	}

	if math.IsNaN(*c.TargetFitness) {
		return newError(KindConfig, "targetFitness must not be NaN")
	}

	if math.IsNaN(*c.MaxWallMs) || *c.MaxWallMs < 0 {
		return newErrorf(KindConfig, "maxWallMs must be a non-negative, non-NaN value, got %v", *c.MaxWallMs)
	}

	if math.IsNaN(*c.MaxEvaluations) || *c.MaxEvaluations < 0 {
		return newErrorf(KindConfig, "maxEvaluations must be a non-negative, non-NaN value, got %v", *c.MaxEvaluations)
	}

	return nil
}

func validateProbability(p float64, name string) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return newErrorf(KindConfig, "%s must be in [0,1], got %v", name, p)
	}

	return nil
}
