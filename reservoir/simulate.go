package reservoir

import "fmt"

// Simulate — deterministic trajectory over a fixed horizon.
//
// Description:
//
//	Simulate applies Step sequentially over T = len(inflow) periods,
//	threading each step's next storage into the following step and
//	accumulating {inflow, demand, release, storage} records. Given
//	deterministic series the result is fully deterministic; feeding it an
//	inflow series drawn via montecarlo.Sample turns it into a stochastic
//	trajectory generator.
//
// Validation is fail-fast: series lengths, the horizon, the initial state
// and every step's inputs are checked before or at the point of use, and no
// partial trajectory is ever returned.
//
// Errors:
//   - ErrLengthMismatch — len(inflow) != len(demand).
//   - ErrInvalidParameter — empty horizon, invalid initial state or
//     capacity, or an invalid step input (wrapped with the step index).
//
// Complexity: O(T) time, O(T) space.
func Simulate(storage0 float64, inflow, demand []float64, storageMax float64) (Trajectory, error) {
	if len(inflow) != len(demand) {
		return nil, fmt.Errorf("%w: len(inflow)=%d len(demand)=%d",
			ErrLengthMismatch, len(inflow), len(demand))
	}
	if len(inflow) == 0 {
		return nil, wrapInvalid("horizon must contain at least one step")
	}

	traj := make(Trajectory, 0, len(inflow))
	storage := storage0
	for t := range inflow {
		release, next, err := Step(storage, inflow[t], demand[t], storageMax)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}
		traj = append(traj, StepRecord{
			Inflow:  inflow[t],
			Demand:  demand[t],
			Release: release,
			Storage: next,
		})
		storage = next
	}
	return traj, nil
}
