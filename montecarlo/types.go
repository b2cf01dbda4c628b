// Package montecarlo type definitions: distribution specs, sampling options,
// immutable sample sets and moment summaries.
package montecarlo

import (
	"math"

	"golang.org/x/exp/rand"
)

// DefaultSeed is the fixed seed used when Options.Seed == 0 and no explicit
// source is supplied. The value is arbitrary but stable so that default runs
// are reproducible across platforms.
const DefaultSeed uint64 = 1

// Dist names a supported parametric distribution family.
type Dist int

const (
	// Normal is the normal distribution with mean Mu and standard deviation Sigma.
	Normal Dist = iota
	// LogNormal is the log-normal distribution; Mu and Sigma parameterize the
	// underlying normal in log space (mean_log, std_log).
	LogNormal
	// Uniform is the continuous uniform distribution on [Min, Max).
	Uniform
)

// String returns the family name for diagnostics.
func (d Dist) String() string {
	switch d {
	case Normal:
		return "Normal"
	case LogNormal:
		return "LogNormal"
	case Uniform:
		return "Uniform"
	default:
		return "Unknown"
	}
}

// Spec fully describes a sampling distribution: the family plus its
// parameters. Mu/Sigma apply to Normal and LogNormal (log-space for the
// latter); Min/Max apply to Uniform only. Build specs with NormalSpec,
// LogNormalSpec or UniformSpec rather than struct literals so the unused
// fields stay zeroed.
type Spec struct {
	Dist     Dist
	Mu       float64
	Sigma    float64
	Min, Max float64
}

// NormalSpec returns a Spec for Normal(mu, sigma).
func NormalSpec(mu, sigma float64) Spec {
	return Spec{Dist: Normal, Mu: mu, Sigma: sigma}
}

// LogNormalSpec returns a Spec for LogNormal(muLog, sigmaLog), parameterized
// in log space: log X ~ Normal(muLog, sigmaLog).
func LogNormalSpec(muLog, sigmaLog float64) Spec {
	return Spec{Dist: LogNormal, Mu: muLog, Sigma: sigmaLog}
}

// UniformSpec returns a Spec for Uniform(min, max).
func UniformSpec(min, max float64) Spec {
	return Spec{Dist: Uniform, Min: min, Max: max}
}

// Validate reports ErrInvalidParameter (wrapped with detail) if the spec is
// malformed; a nil return means Sample will accept the spec.
func (s Spec) Validate() error { return s.validate() }

// validate reports ErrInvalidParameter (wrapped with detail) for malformed
// parameters: non-finite values, Sigma ≤ 0, or Min ≥ Max.
func (s Spec) validate() error {
	switch s.Dist {
	case Normal, LogNormal:
		if !isFinite(s.Mu) || !isFinite(s.Sigma) {
			return wrapInvalid("%s parameters must be finite: mu=%g sigma=%g", s.Dist, s.Mu, s.Sigma)
		}
		if s.Sigma <= 0 {
			return wrapInvalid("%s sigma must be > 0, got %g", s.Dist, s.Sigma)
		}
	case Uniform:
		if !isFinite(s.Min) || !isFinite(s.Max) {
			return wrapInvalid("Uniform bounds must be finite: min=%g max=%g", s.Min, s.Max)
		}
		if s.Min >= s.Max {
			return wrapInvalid("Uniform requires min < max, got [%g, %g)", s.Min, s.Max)
		}
	default:
		return wrapInvalid("unknown distribution family %d", int(s.Dist))
	}
	return nil
}

// Options configures sampling.
//
//   - Seed — seed for the internal random source. Seed 0 selects DefaultSeed,
//     so the zero value of Options is deterministic, not time-based.
//   - Src  — explicit random source; when non-nil it overrides Seed. Supply
//     one per goroutine when sampling in parallel (sources are not safe for
//     concurrent use).
type Options struct {
	Seed uint64
	Src  rand.Source
}

// DefaultOptions returns the canonical defaults: fixed default seed, no
// explicit source.
func DefaultOptions() Options { return Options{} }

// source resolves the random source to draw from, honoring the seed-0 policy.
func (o *Options) source() rand.Source {
	if o != nil && o.Src != nil {
		return o.Src
	}
	seed := DefaultSeed
	if o != nil && o.Seed != 0 {
		seed = o.Seed
	}
	return rand.NewSource(seed)
}

// SampleSet is an immutable ordered collection of scalar draws. The backing
// slice is never exposed: accessors copy on the way out and Apply returns a
// fresh set, so a SampleSet can be shared freely once created.
type SampleSet struct {
	values []float64
}

// Len returns the number of samples in the set.
func (s SampleSet) Len() int { return len(s.values) }

// At returns the i-th sample, in draw order. Panics if i is out of range,
// matching slice indexing semantics.
func (s SampleSet) At(i int) float64 { return s.values[i] }

// Values returns a copy of the samples in draw order.
func (s SampleSet) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Min returns the smallest sample. Returns +Inf for an empty set.
func (s SampleSet) Min() float64 {
	m := math.Inf(1)
	for _, v := range s.values {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample. Returns -Inf for an empty set.
func (s SampleSet) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s.values {
		if v > m {
			m = v
		}
	}
	return m
}

// Summary holds the four moment-based descriptive statistics of a sample set.
// ExcessKurtosis is kurtosis minus 3, so the normal baseline is 0. For
// degenerate sets (fewer than three samples, or zero variance) the
// higher-moment fields are NaN, matching the underlying estimators.
type Summary struct {
	Mean           float64
	StdDev         float64
	Skewness       float64
	ExcessKurtosis float64
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
