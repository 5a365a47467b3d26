package labtimetable

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// tournamentSelect implements tournament selection: draw
// tournamentSize individuals without replacement (or with replacement
// if the population is smaller), return the fittest. Ties are broken
// by iteration order over the drawn indices, which is deterministic
// for a given rng stream (DESIGN.md Open Question #2).
//
// indis is in eaopt's minimize-convention: lower Fitness is better,
// since candidate.Evaluate returns -spec-fitness.
func tournamentSelect(indis eaopt.Individuals, rng *rand.Rand, tournamentSize int) eaopt.Individual {
	n := len(indis)

	var contestants []int
	if tournamentSize > n {
		contestants = make([]int, tournamentSize)
		for i := range contestants {
			contestants[i] = rng.Intn(n)
		}
	} else if tournamentSize == n {
		contestants = rng.Perm(n)
	} else {
		contestants = sampleWithoutReplacement(rng, n, tournamentSize)
	}

	best := indis[contestants[0]]
	for _, idx := range contestants[1:] {
		if indis[idx].Fitness < best.Fitness {
			best = indis[idx]
		}
	}
	return best
}

// sampleWithoutReplacement draws k distinct indices from [0, n).
func sampleWithoutReplacement(rng *rand.Rand, n, k int) []int {
	perm := rng.Perm(n)
	return perm[:k]
}

// crossoverVacancyBiased mutates a (already a clone of parent A) in
// place to become the child: count vacancies in each parent, bias the
// per-course coin flip toward whichever parent has strictly fewer,
// falling back to the other parent (then leaving the course
// unassigned) when the preferred parent has no assignment for it.
func crossoverVacancyBiased(a, b *candidate, rng *rand.Rand) {
	aVacancies := countVacancies(a.problem, a.assignments)
	bVacancies := countVacancies(b.problem, b.assignments)

	var pPreferA float64
	switch {
	case aVacancies < bVacancies:
		pPreferA = 0.7
	case bVacancies < aVacancies:
		pPreferA = 0.3
	default:
		pPreferA = 0.5
	}

	child := make(map[int]slot, len(a.problem.courses))
	for _, course := range a.problem.courses {
		var primary, fallback map[int]slot
		if rng.Float64() < pPreferA {
			primary, fallback = a.assignments, b.assignments
		} else {
			primary, fallback = b.assignments, a.assignments
		}

		if s, ok := primary[course.ID]; ok {
			child[course.ID] = s
		} else if s, ok := fallback[course.ID]; ok {
			child[course.ID] = s
		}
	}
	a.assignments = child
}

// countVacancies is the vacancy count used purely to compare two
// parents during crossover.
func countVacancies(p *problem, assignments map[int]slot) int {
	count, _, _ := vacancyInfo(p, assignments)
	return count
}

// mutateCandidate mutates a candidate in place: for each course
// independently with probability 0.1, resample its (start, day, room)
// using the same usage-weighted/room-biased sampling the generator
// uses, against the candidate's own current start-time histogram.
func mutateCandidate(c *candidate, rng *rand.Rand) {
	const mutationRate = 0.1

	usage := make(map[string]int, len(c.problem.grid.Slots))
	for _, s := range c.problem.grid.Slots {
		usage[s] = 0
	}
	for _, s := range c.assignments {
		usage[s.Start]++
	}

	for _, course := range c.problem.courses {
		if rng.Float64() >= mutationRate {
			continue
		}
		start := usageWeightedSlot(rng, c.problem.grid.Slots, usage)
		day := pickDay(rng, c.problem.grid)
		room := pickRoom(rng, c.problem.grid)

		usage[start]++
		c.assignments[course.ID] = slot{Day: day, Start: start, Room: room}
	}
}
