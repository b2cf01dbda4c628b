package montecarlo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Describe computes the four standard moment statistics of a sample set:
// mean, sample standard deviation (n−1 denominator), skewness and excess
// kurtosis (kurtosis − 3, so a normal sample scores near 0).
//
// Describe is a pure function over an immutable set: calling it twice on the
// same SampleSet yields identical results. Degenerate sets (fewer than three
// samples, or zero variance) produce NaN in the higher-moment fields.
//
// Errors:
//   - ErrEmptySample — the set has no values.
//
// Complexity: O(n) time, O(1) extra space.
func Describe(s SampleSet) (Summary, error) {
	if s.Len() == 0 {
		return Summary{}, ErrEmptySample
	}
	return Summary{
		Mean:           stat.Mean(s.values, nil),
		StdDev:         stat.StdDev(s.values, nil),
		Skewness:       stat.Skew(s.values, nil),
		ExcessKurtosis: stat.ExKurtosis(s.values, nil),
	}, nil
}

// Quantile returns the empirical q-quantile of the set, 0 ≤ q ≤ 1, using
// linear interpolation between order statistics: the rank is h = q·(n−1) and
// the result interpolates between the ⌊h⌋-th and ⌈h⌉-th sorted values (the
// convention of numpy's default quantile). Quantile(s, 0) is the minimum and
// Quantile(s, 1) the maximum.
//
// The set is not mutated: sorting happens on a private copy.
//
// Errors:
//   - ErrEmptySample — the set has no values.
//   - ErrInvalidParameter — q outside [0, 1] or NaN.
//
// Complexity: O(n log n) time, O(n) space.
func Quantile(s SampleSet, q float64) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	if !(q >= 0 && q <= 1) { // also rejects NaN
		return 0, wrapInvalid("quantile probability must be in [0,1], got %g", q)
	}

	sorted := s.Values()
	sort.Float64s(sorted)

	h := q * float64(len(sorted)-1)
	lower := int(math.Floor(h))
	upper := int(math.Ceil(h))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower], nil
	}
	frac := h - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// ExceedanceProbability returns the fraction of samples strictly greater
// than threshold, an estimate of P(X > threshold) in [0, 1].
//
// Errors:
//   - ErrEmptySample — the set has no values.
//
// Complexity: O(n) time, O(1) space.
func ExceedanceProbability(s SampleSet, threshold float64) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	exceed := 0
	for _, v := range s.values {
		if v > threshold {
			exceed++
		}
	}
	return float64(exceed) / float64(s.Len()), nil
}

// Apply maps f elementwise over the set and returns a new SampleSet; the
// input set is never mutated. f must be defined over the full sampled range:
// if a finite input maps to NaN or ±Inf the whole call fails eagerly with
// ErrDomain (no partial result), naming the first offending element.
//
// Errors:
//   - ErrEmptySample — the set has no values.
//   - ErrNilTransfer — f is nil.
//   - ErrDomain — f evaluated outside its valid domain.
//
// Complexity: O(n) time, O(n) space.
func Apply(s SampleSet, f func(float64) float64) (SampleSet, error) {
	if s.Len() == 0 {
		return SampleSet{}, ErrEmptySample
	}
	if f == nil {
		return SampleSet{}, ErrNilTransfer
	}

	out := make([]float64, s.Len())
	for i, v := range s.values {
		w := f(v)
		if isFinite(v) && !isFinite(w) {
			return SampleSet{}, fmt.Errorf("%w: f(%g) = %g at index %d", ErrDomain, v, w, i)
		}
		out[i] = w
	}
	return SampleSet{values: out}, nil
}
