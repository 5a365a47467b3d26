package labtimetable

import "math/rand"

// weightedChoice draws one index in [0, len(weights)) with probability
// proportional to weights[i]. It is the single primitive shared by the
// generator's and mutation operator's usage-weighted time-slot choice.
// All weights must be non-negative; a weights slice that sums to zero
// falls back to a uniform draw rather than panicking.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// usageWeightedSlot picks a slot from grid.Slots with weight
// 1/(usage[slot]+1), the inverse-usage weighting both the generator
// and mutation operator rely on.
func usageWeightedSlot(rng *rand.Rand, slots []string, usage map[string]int) string {
	weights := make([]float64, len(slots))
	for i, s := range slots {
		weights[i] = 1.0 / float64(usage[s]+1)
	}
	return slots[weightedChoice(rng, weights)]
}

// pickRoom picks a room: with probability roomOwnershipBias pick
// uniformly among the owned rooms, else the rental room.
func pickRoom(rng *rand.Rand, grid Grid) Room {
	if rng.Float64() < roomOwnershipBias {
		return grid.OwnedRooms[rng.Intn(len(grid.OwnedRooms))]
	}
	return grid.RentalRoom
}

// pickDay picks a day uniformly at random.
func pickDay(rng *rand.Rand, grid Grid) Day {
	return grid.Days[rng.Intn(len(grid.Days))]
}
