package reservoir

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/hydrostats/aquasim/montecarlo"
)

// SimulateEnsemble — Monte Carlo replication of Simulate.
//
// Description:
//
//	SimulateEnsemble runs n independent trials. Trial k draws a fresh
//	length-T inflow series from the inflow distribution (T = len(demand)),
//	i.i.d. across steps and across trials, then simulates one trajectory
//	from the shared initial storage, demand schedule and capacity.
//
// Determinism & concurrency:
//   - Trajectory k always samples from a source seeded by
//     deriveSeed(baseSeed, k), so the ensemble is identical whatever the
//     worker count and can be reproduced from opts.Seed alone.
//   - opts.Workers ≤ 1 runs sequentially; larger values spread trajectories
//     over a bounded worker pool. No locks are needed: every worker owns its
//     derived source and writes only its own trajectory slot.
//
// Derived distributions (terminal storage, deficit fractions) are obtained
// by slicing the returned Ensemble and feeding the slices to
// montecarlo.FromValues + Describe/Quantile; no statistics live here.
//
// Errors:
//   - ErrInvalidParameter — invalid inflow spec, n < 1, empty horizon,
//     invalid initial state or capacity, or negative demand (all checked
//     before any trial runs). A step-level failure inside a trial — e.g. a
//     Normal inflow spec producing a negative draw — is wrapped with its
//     trajectory index.
//
// Complexity: O(n·T) time, O(n·T) space.
func SimulateEnsemble(storage0 float64, inflow montecarlo.Spec, demand []float64,
	storageMax float64, n int, opts *EnsembleOptions) (Ensemble, error) {
	if err := inflow.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, wrapInvalid("trajectory count must be >= 1, got %d", n)
	}
	if len(demand) == 0 {
		return nil, wrapInvalid("horizon must contain at least one step")
	}
	for t, d := range demand {
		if !isFinite(d) || d < 0 {
			return nil, wrapInvalid("demand must be finite and >= 0, got %g at step %d", d, t)
		}
	}
	// Reject a bad initial state before spending time on trials. A zero
	// inflow probe exercises exactly the storage/capacity checks.
	if _, _, err := Step(storage0, 0, 0, storageMax); err != nil {
		return nil, err
	}

	seed := defaultEnsembleSeed
	workers := 1
	if opts != nil {
		if opts.Seed != 0 {
			seed = opts.Seed
		}
		if opts.Workers > 1 {
			workers = opts.Workers
		}
	}
	if workers > n {
		workers = n
	}

	ens := make(Ensemble, n)
	errs := make([]error, n)
	run := func(k int) {
		src := rand.NewSource(deriveSeed(seed, uint64(k)))
		sampleOpts := montecarlo.Options{Src: src}
		inflows, err := montecarlo.Sample(inflow, len(demand), &sampleOpts)
		if err != nil {
			errs[k] = fmt.Errorf("trajectory %d: %w", k, err)
			return
		}
		traj, err := Simulate(storage0, inflows.Values(), demand, storageMax)
		if err != nil {
			errs[k] = fmt.Errorf("trajectory %d: %w", k, err)
			return
		}
		ens[k] = traj
	}

	if workers == 1 {
		for k := 0; k < n; k++ {
			run(k)
			if errs[k] != nil {
				return nil, errs[k]
			}
		}
		return ens, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				run(k)
			}
		}()
	}
	for k := 0; k < n; k++ {
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ens, nil
}
