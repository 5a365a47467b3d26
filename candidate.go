package labtimetable

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// candidate is the chromosome eaopt evolves: a partial mapping from
// course id to (day, start, room) plus a cached fitness. It implements
// eaopt.Genome (Clone/Crossover/Mutate/Evaluate), but the bodies encode
// this domain's bespoke vacancy-biased crossover and usage-weighted
// mutation rather than calling eaopt's integer-permutation helpers —
// this chromosome is a course-to-assignment map, not a permutation.
type candidate struct {
	problem *problem

	assignments map[int]slot
	fitness     float64
}

// problem bundles the read-only inputs every candidate in a run
// shares: the course list, the grid and the fitness weights. Candidates
// never copy it; only the mutable assignments map is ever duplicated,
// so a parent is never mutated by the crossover that produces a child.
type problem struct {
	courses []Course
	grid    Grid
	weights FitnessWeights
}

func newCandidate(p *problem) *candidate {
	return &candidate{
		problem:     p,
		assignments: make(map[int]slot, len(p.courses)),
	}
}

// Clone makes an independent copy of a candidate: a fresh assignments
// map, same shared problem pointer. Used for elitism and best-so-far
// tracking, both of which need an independent deep copy.
func (c *candidate) Clone() eaopt.Genome {
	clone := &candidate{
		problem:     c.problem,
		assignments: make(map[int]slot, len(c.assignments)),
		fitness:     c.fitness,
	}
	for id, s := range c.assignments {
		clone.assignments[id] = s
	}
	return clone
}

// Evaluate computes -fitness, since eaopt.GA always minimizes while
// the underlying objective is defined to be maximized.
func (c *candidate) Evaluate() (float64, error) {
	c.fitness = evaluateFitness(c.problem, c.assignments)
	return -c.fitness, nil
}

// Crossover implements vacancy-biased uniform crossover. c represents
// parent A going into this call; other is parent B. c is mutated in
// place to become the child, replacing one parent's genome with its
// own offspring.
func (c *candidate) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o, ok := other.(*candidate)
	if !ok {
		return
	}
	crossoverVacancyBiased(c, o, rng)
}

// Mutate re-randomizes each course's assignment independently at a
// fixed per-course rate.
func (c *candidate) Mutate(rng *rand.Rand) {
	mutateCandidate(c, rng)
}
