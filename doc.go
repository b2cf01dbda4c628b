// Package aquasim is a small toolkit for Monte Carlo uncertainty analysis
// and single-reservoir water-balance simulation.
//
// 🚀 What is aquasim?
//
//	A compact, deterministic-by-default library that brings together:
//		• Parametric sampling: normal, log-normal and uniform draws (gonum/distuv)
//		• Transfer functions: elementwise mapping of sampled quantities
//		• Descriptive statistics: mean, std, skewness, excess kurtosis,
//		  empirical quantiles, exceedance probabilities
//		• Reservoir balance: a bounded mass-balance step with shortage and
//		  spill clamps, composed into trajectories
//		• Ensembles: independent stochastic inflow trajectories with derived
//		  per-trajectory seeds, safe to run in parallel
//
// ✨ Why choose aquasim?
//
//   - Reproducible – explicit seeds everywhere, no hidden entropy
//   - Pure functions – every step is a function of its inputs, trivially testable
//   - Fail-fast – eager validation with sentinel errors, no partial results
//   - Pure Go – no cgo
//
// Everything is organized under two subpackages:
//
//	montecarlo/ — sampling, transfer application & summary statistics
//	reservoir/  — balance step, trajectory simulation & ensemble driver
//
// Data flows in one direction:
//
//	Spec ──sample──▶ SampleSet ──apply──▶ SampleSet ──describe──▶ Summary
//	storage₀ ──step──▶ Trajectory ──replicate──▶ Ensemble ──slice──▶ SampleSet
//
// Reporting and plotting are deliberately out of scope: the library hands
// finished sample sets, trajectories and ensembles to whatever display layer
// the caller prefers.
//
//	go get github.com/hydrostats/aquasim
package aquasim
