package montecarlo

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample — i.i.d. draws from a parametric distribution.
//
// Description:
//
//	Sample draws n independent values from the family described by spec and
//	returns them as an immutable SampleSet. The draw order is the stream
//	order of the underlying random source, so a fixed seed reproduces the
//	exact same set on every run and platform.
//
// Determinism:
//   - opts == nil or the zero Options ⇒ DefaultSeed (reproducible defaults).
//   - opts.Seed != 0 ⇒ that seed.
//   - opts.Src != nil ⇒ the supplied source verbatim (overrides Seed).
//
// Errors:
//   - ErrInvalidParameter — malformed spec (σ ≤ 0, min ≥ max, non-finite
//     parameters, unknown family) or n < 1.
//
// Complexity: O(n) time, O(n) space.
func Sample(spec Spec, n int, opts *Options) (SampleSet, error) {
	if err := spec.validate(); err != nil {
		return SampleSet{}, err
	}
	if n < 1 {
		return SampleSet{}, wrapInvalid("sample count must be >= 1, got %d", n)
	}

	rander := spec.rander(opts.source())
	values := make([]float64, n)
	for i := range values {
		values[i] = rander.Rand()
	}
	return SampleSet{values: values}, nil
}

// FromValues builds a SampleSet from externally produced values, e.g. a
// cross-trajectory slice of an ensemble. The input is copied, so later
// mutation of vs does not leak into the set.
//
// Errors:
//   - ErrEmptySample — vs is empty.
func FromValues(vs []float64) (SampleSet, error) {
	if len(vs) == 0 {
		return SampleSet{}, ErrEmptySample
	}
	values := make([]float64, len(vs))
	copy(values, vs)
	return SampleSet{values: values}, nil
}

// rander binds a validated spec to a random source. distuv treats a Rand()
// call as one draw from the stream, which keeps a whole ensemble on a single
// continuous stream when one source is shared sequentially.
func (s Spec) rander(src rand.Source) distuv.Rander {
	switch s.Dist {
	case Normal:
		return distuv.Normal{Mu: s.Mu, Sigma: s.Sigma, Src: src}
	case LogNormal:
		return distuv.LogNormal{Mu: s.Mu, Sigma: s.Sigma, Src: src}
	default: // Uniform; validate() rejects anything else
		return distuv.Uniform{Min: s.Min, Max: s.Max, Src: src}
	}
}
