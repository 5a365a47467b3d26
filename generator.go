package labtimetable

import "math/rand"

// newRandomCandidateFactory returns the eaopt genome factory: for each
// course (in input order) pick a start time weighted by inverse usage,
// a day uniformly, and a room biased toward the owned rooms.
func newRandomCandidateFactory(p *problem) func(rng *rand.Rand) *candidate {
	return func(rng *rand.Rand) *candidate {
		c := newCandidate(p)
		usage := make(map[string]int, len(p.grid.Slots))
		for _, s := range p.grid.Slots {
			usage[s] = 0
		}

		for _, course := range p.courses {
			start := usageWeightedSlot(rng, p.grid.Slots, usage)
			day := pickDay(rng, p.grid)
			room := pickRoom(rng, p.grid)

			c.assignments[course.ID] = slot{Day: day, Start: start, Room: room}
			usage[start]++
		}
		return c
	}
}
