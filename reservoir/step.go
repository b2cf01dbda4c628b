package reservoir

// Step — one bounded water-balance update.
//
// Description:
//
//	Step advances a reservoir holding `storage` through one time period with
//	exogenous `inflow` and `demand`, under the hard physical constraint
//	0 ≤ storage ≤ storageMax. The release tracks demand exactly unless a
//	clamp fires, in which case the release absorbs exactly the clamped
//	volume.
//
// Algorithm outline (the clamp order is the policy and must not change):
//  1. release ← demand.
//  2. next ← storage + inflow − release.
//  3. Shortage clamp: if next < 0, the reservoir cannot cover the full
//     demand; reduce the release by exactly the shortfall
//     (release ← demand + next, next is negative) and set next ← 0.
//  4. Spill clamp: else if next > storageMax, the surplus cannot be stored;
//     increase the release by exactly the excess
//     (release ← demand + (next − storageMax)) and set next ← storageMax.
//  5. Otherwise both constraints hold already; release = demand.
//
// A provisional storage landing exactly on 0 or on storageMax triggers no
// clamp. The two clamps are mutually exclusive in a single step: with
// storageMax > 0 and valid inputs, one update cannot underflow and overflow
// at once.
//
// Invariants on return: 0 ≤ next ≤ storageMax, and release ≥ 0 (guaranteed
// because negative inflow is rejected as invalid input).
//
// Errors:
//   - ErrInvalidParameter — storageMax ≤ 0, storage outside [0, storageMax],
//     demand < 0, inflow < 0, or any non-finite input.
//
// Complexity: O(1).
func Step(storage, inflow, demand, storageMax float64) (release, next float64, err error) {
	if err = validateStep(storage, inflow, demand, storageMax); err != nil {
		return 0, 0, err
	}

	release = demand
	next = storage + inflow - release
	if next < 0 {
		// Water-short: release only what the balance allows.
		release = demand + next
		next = 0
	} else if next > storageMax {
		// Capacity-bound: force the excess out as spill.
		release = demand + (next - storageMax)
		next = storageMax
	}
	return release, next, nil
}

// validateStep enforces the step preconditions eagerly, before any
// arithmetic. Negative inflow and negative demand are invalid inputs rather
// than physical scenarios.
func validateStep(storage, inflow, demand, storageMax float64) error {
	for _, v := range [...]float64{storage, inflow, demand, storageMax} {
		if !isFinite(v) {
			return wrapInvalid("step inputs must be finite: storage=%g inflow=%g demand=%g storageMax=%g",
				storage, inflow, demand, storageMax)
		}
	}
	if storageMax <= 0 {
		return wrapInvalid("storageMax must be > 0, got %g", storageMax)
	}
	if storage < 0 || storage > storageMax {
		return wrapInvalid("storage must be in [0, %g], got %g", storageMax, storage)
	}
	if demand < 0 {
		return wrapInvalid("demand must be >= 0, got %g", demand)
	}
	if inflow < 0 {
		return wrapInvalid("inflow must be >= 0, got %g", inflow)
	}
	return nil
}
