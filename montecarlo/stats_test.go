package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrostats/aquasim/montecarlo"
)

// TestDescribe_KnownValues checks the moment statistics of {1,2,3,4,5}
// against hand-computed references (sample std with n-1 denominator,
// bias-corrected excess kurtosis).
func TestDescribe_KnownValues(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	sum, err := montecarlo.Describe(set)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, sum.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), sum.StdDev, 1e-12)
	assert.InDelta(t, 0.0, sum.Skewness, 1e-12, "symmetric data has zero skewness")
	assert.InDelta(t, -1.2, sum.ExcessKurtosis, 1e-12, "flat symmetric data is platykurtic")
}

// TestDescribe_Empty verifies the empty-set error.
func TestDescribe_Empty(t *testing.T) {
	_, err := montecarlo.Describe(montecarlo.SampleSet{})
	assert.ErrorIs(t, err, montecarlo.ErrEmptySample)
}

// TestDescribe_Idempotent verifies Describe is a pure function: two calls on
// the same immutable set yield identical summaries.
func TestDescribe_Idempotent(t *testing.T) {
	opts := montecarlo.Options{Seed: 11}
	set, err := montecarlo.Sample(montecarlo.NormalSpec(1, 1), 5_000, &opts)
	require.NoError(t, err)

	first, err := montecarlo.Describe(set)
	require.NoError(t, err)
	second, err := montecarlo.Describe(set)
	require.NoError(t, err)

	assert.Equal(t, first, second, "Describe must not mutate hidden state")
}

// TestQuantile_KnownValues checks endpoints and interior quantiles of
// {1,2,3,4,5} under the q*(n-1) linear-interpolation convention.
func TestQuantile_KnownValues(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{5, 3, 1, 4, 2}) // unsorted on purpose
	require.NoError(t, err)

	for _, tc := range []struct {
		q    float64
		want float64
	}{
		{0, 1},      // minimum
		{1, 5},      // maximum
		{0.5, 3},    // median
		{0.25, 2},   // h = 1.0, exact order statistic
		{0.625, 3.5}, // h = 2.5, halfway between 3 and 4
	} {
		got, err := montecarlo.Quantile(set, tc.q)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9, "q=%g", tc.q)
	}

	// The set itself must stay in draw order after the internal sort.
	assert.Equal(t, []float64{5, 3, 1, 4, 2}, set.Values(), "Quantile must not reorder the set")
}

// TestQuantile_OutOfRange verifies q outside [0,1] (and NaN) is rejected.
func TestQuantile_OutOfRange(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{1, 2, 3})
	require.NoError(t, err)

	for _, q := range []float64{-0.1, 1.1, math.NaN()} {
		_, qErr := montecarlo.Quantile(set, q)
		assert.ErrorIs(t, qErr, montecarlo.ErrInvalidParameter, "q=%g must error", q)
	}
}

// TestQuantile_MedianMatchesMean verifies the empirical median of a large
// symmetric sample agrees with its mean within Monte Carlo tolerance.
func TestQuantile_MedianMatchesMean(t *testing.T) {
	opts := montecarlo.Options{Seed: 77}
	set, err := montecarlo.Sample(montecarlo.NormalSpec(10, 3), 100_000, &opts)
	require.NoError(t, err)

	median, err := montecarlo.Quantile(set, 0.5)
	require.NoError(t, err)
	sum, err := montecarlo.Describe(set)
	require.NoError(t, err)

	assert.InDelta(t, sum.Mean, median, 0.1, "median ≈ mean for a symmetric sample")
}

// TestExceedanceProbability checks the strictly-greater-than convention on a
// known set: ties with the threshold do not count.
func TestExceedanceProbability(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	p, err := montecarlo.ExceedanceProbability(set, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, p, 1e-12, "exactly {4,5} exceed 3")

	p, err = montecarlo.ExceedanceProbability(set, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "all samples exceed 0")

	p, err = montecarlo.ExceedanceProbability(set, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p, "no sample strictly exceeds the maximum")
}

// TestApply_Elementwise verifies the transfer is applied to every element in
// order and the input set is untouched.
func TestApply_Elementwise(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{1, 2, 3})
	require.NoError(t, err)

	out, err := montecarlo.Apply(set, func(v float64) float64 { return v * v })
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4, 9}, out.Values())
	assert.Equal(t, []float64{1, 2, 3}, set.Values(), "input set must stay unchanged")
}

// TestApply_DomainError verifies a transfer leaving its valid domain fails
// eagerly with ErrDomain and returns no partial result.
func TestApply_DomainError(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{4, -1, 9})
	require.NoError(t, err)

	out, applyErr := montecarlo.Apply(set, math.Log) // log(-1) = NaN
	assert.ErrorIs(t, applyErr, montecarlo.ErrDomain)
	assert.Equal(t, 0, out.Len(), "no partial sample set on domain error")
}

// TestApply_NilTransfer verifies a nil transfer function is rejected.
func TestApply_NilTransfer(t *testing.T) {
	set, err := montecarlo.FromValues([]float64{1})
	require.NoError(t, err)

	_, applyErr := montecarlo.Apply(set, nil)
	assert.ErrorIs(t, applyErr, montecarlo.ErrNilTransfer)
}

// TestApply_HealthImpactPipeline runs the full sampler → transfer → describe
// pipeline: log-normal concentrations through a nonlinear dose-response.
func TestApply_HealthImpactPipeline(t *testing.T) {
	opts := montecarlo.Options{Seed: 2021}
	conc, err := montecarlo.Sample(montecarlo.LogNormalSpec(3.0, 0.4), 50_000, &opts)
	require.NoError(t, err)

	outcome, err := montecarlo.Apply(conc, func(c float64) float64 {
		return 1e-4 * math.Pow(c, 1.5) // convex dose-response
	})
	require.NoError(t, err)
	require.Equal(t, conc.Len(), outcome.Len())

	sum, err := montecarlo.Describe(outcome)
	require.NoError(t, err)
	assert.Greater(t, sum.Mean, 0.0)
	assert.Greater(t, sum.Skewness, 0.0, "convex transfer of a right-skewed input stays right-skewed")

	p95, err := montecarlo.Quantile(outcome, 0.95)
	require.NoError(t, err)
	exceed, err := montecarlo.ExceedanceProbability(outcome, p95)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, exceed, 0.01, "P(X > q95) ≈ 5%")
}
