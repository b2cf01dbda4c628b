// Package reservoir type definitions: step records, trajectories, ensembles
// and their derived performance metrics.
package reservoir

import "math"

// StepRecord is one row of a trajectory: the exogenous inputs of the step
// and the resulting release and post-step storage.
type StepRecord struct {
	Inflow  float64
	Demand  float64
	Release float64
	Storage float64
}

// DeficitFraction returns (demand − release) / demand for this step, the
// fraction of demand left unmet. A zero-demand step has no demand to miss,
// so its deficit fraction is 0. Spill steps (release > demand) also report 0
// rather than a negative deficit.
func (r StepRecord) DeficitFraction() float64 {
	if r.Demand <= 0 {
		return 0
	}
	d := (r.Demand - r.Release) / r.Demand
	if d < 0 {
		return 0
	}
	return d
}

// Trajectory is an ordered sequence of step records over a fixed horizon,
// append-only during simulation and treated as immutable afterwards.
type Trajectory []StepRecord

// Inflows returns the per-step inflows in horizon order.
func (t Trajectory) Inflows() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Inflow
	}
	return out
}

// Demands returns the per-step demands in horizon order.
func (t Trajectory) Demands() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Demand
	}
	return out
}

// Releases returns the per-step releases in horizon order.
func (t Trajectory) Releases() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Release
	}
	return out
}

// Storages returns the post-step storages in horizon order.
func (t Trajectory) Storages() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Storage
	}
	return out
}

// TerminalStorage returns the storage after the final step. Returns NaN for
// an empty trajectory (Simulate never produces one).
func (t Trajectory) TerminalStorage() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	return t[len(t)-1].Storage
}

// DeficitFractions returns the per-step deficit fractions in horizon order.
func (t Trajectory) DeficitFractions() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.DeficitFraction()
	}
	return out
}

// MeanDeficitFraction returns the deficit fraction averaged over the
// horizon. Returns NaN for an empty trajectory.
func (t Trajectory) MeanDeficitFraction() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, r := range t {
		sum += r.DeficitFraction()
	}
	return sum / float64(len(t))
}

// Reliability returns the fraction of steps that met demand in full (zero
// deficit), a standard reservoir performance metric. Returns NaN for an
// empty trajectory.
func (t Trajectory) Reliability() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	met := 0
	for _, r := range t {
		if r.DeficitFraction() == 0 {
			met++
		}
	}
	return float64(met) / float64(len(t))
}

// Ensemble is a set of independent trajectories sharing initial storage,
// demand schedule and horizon, each driven by its own inflow stream.
type Ensemble []Trajectory

// TerminalStorages returns one terminal storage per trajectory, in
// trajectory order — the cross-trajectory slice for terminal-state
// statistics.
func (e Ensemble) TerminalStorages() []float64 {
	out := make([]float64, len(e))
	for i, t := range e {
		out[i] = t.TerminalStorage()
	}
	return out
}

// MeanDeficitFractions returns one horizon-averaged deficit fraction per
// trajectory, in trajectory order.
func (e Ensemble) MeanDeficitFractions() []float64 {
	out := make([]float64, len(e))
	for i, t := range e {
		out[i] = t.MeanDeficitFraction()
	}
	return out
}

// TerminalDeficitFractions returns the final-step deficit fraction per
// trajectory, in trajectory order.
func (e Ensemble) TerminalDeficitFractions() []float64 {
	out := make([]float64, len(e))
	for i, t := range e {
		if len(t) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = t[len(t)-1].DeficitFraction()
	}
	return out
}

// EnsembleOptions configures SimulateEnsemble.
//
//   - Seed    — base seed for the ensemble. Seed 0 selects the fixed default
//     seed; every trajectory derives its own independent stream from the base
//     seed and its index, so results do not depend on scheduling.
//   - Workers — number of trajectories simulated concurrently. Values ≤ 1
//     mean sequential execution. Parallel runs are race-free: each worker owns
//     its derived source and writes only its own trajectory slot.
type EnsembleOptions struct {
	Seed    uint64
	Workers int
}

// DefaultEnsembleOptions returns the canonical defaults: fixed default seed,
// sequential execution.
func DefaultEnsembleOptions() EnsembleOptions { return EnsembleOptions{} }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
