// Package reservoir simulates a single bounded reservoir under a water
// balance with shortage and spill clamps, from one step up to Monte Carlo
// ensembles of stochastic inflow trajectories.
//
// 🚀 What is reservoir?
//
//	The simulation half of aquasim, built from three layers:
//	  • Step      — one mass-balance update: release demand, clamp storage
//	    into [0, storageMax], adjusting the release by exactly the shortfall
//	    or the spilled excess
//	  • Simulate  — thread Step over an inflow/demand horizon into a
//	    Trajectory of {inflow, demand, release, storage} records
//	  • SimulateEnsemble — replicate Simulate across independent stochastic
//	    inflow series drawn via montecarlo, one derived seed per trajectory
//
// ✨ Key features:
//   - Pure step function: no reservoir object, no hidden state, every step
//     is a function of its four inputs
//   - Hard physical invariant: 0 ≤ storage ≤ storageMax after every update
//   - Reproducible ensembles: SplitMix64-derived per-trajectory seeds give
//     identical results sequential or parallel
//   - Thin statistics bridge: ensembles slice into plain []float64 ready for
//     montecarlo.FromValues and Describe/Quantile
//
// ⚙️ Usage:
//
//	import "github.com/hydrostats/aquasim/reservoir"
//
//	// deterministic horizon
//	traj, err := reservoir.Simulate(1.0, inflows, demands, 2.0)
//
//	// stochastic ensemble: 1000 trajectories of log-normal inflows
//	opts := reservoir.DefaultEnsembleOptions()
//	opts.Seed = 7
//	ens, err := reservoir.SimulateEnsemble(
//	  1.0, montecarlo.LogNormalSpec(-1.8, 0.6), demands, 2.0, 1000, &opts)
//
//	terminal, _ := montecarlo.FromValues(ens.TerminalStorages())
//	sum, _ := montecarlo.Describe(terminal)
//
// Units are whatever the caller supplies (the examples use MAF, million
// acre-feet); the balance is unit-agnostic as long as all volumes agree.
//
// Performance:
//
//   - Step: O(1)
//   - Simulate: O(T) time and space for a horizon of T steps
//   - SimulateEnsemble: O(M·T), optionally spread over a bounded worker pool
//
// See example_test.go for worked examples.
package reservoir
