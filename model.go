package labtimetable

import (
	"context"
	"math/rand"
	"sort"

	"github.com/MaxHalford/eaopt"
	"golang.org/x/sync/errgroup"
)

// evolutionParams collects the population-level knobs (population 50,
// generations 100, elite 5, crossover rate 0.8, tournament size 3) as a
// configuration record rather than scattered constants, the same
// treatment FitnessWeights gets.
type evolutionParams struct {
	PopulationSize int
	Generations    uint
	EliteSize      int
	CrossoverRate  float64
	TournamentSize int
	Parallel       bool
}

var defaultEvolutionParams = evolutionParams{
	PopulationSize: 50,
	Generations:    100,
	EliteSize:      5,
	CrossoverRate:  0.8,
	TournamentSize: 3,
	Parallel:       true,
}

// roomAllocationModel is a custom eaopt.Model implementing the
// generational loop this domain needs: elitism carries the top
// EliteSize individuals unchanged into the next generation; the
// remainder are bred via crossover+mutation (probability
// CrossoverRate) or clone+mutation, each repaired and (re-)evaluated.
// It is driven by a genuine eaopt.GA (see scheduler.go) via
// ga.Minimize, but overrides the generation mechanics entirely because
// this elitism/crossover-bias/repair combination has no equivalent in
// eaopt's bundled ModGenerational.
//
// Evaluation of the freshly-bred individuals runs concurrently via
// errgroup, since fitness evaluation of a generation's new members is
// embarrassingly parallel. Every stochastic decision — parent
// selection, the crossover mask, mutation — happens sequentially
// against pop.RNG before the fan-out, and Evaluate itself draws no
// randomness, so parallelizing it cannot perturb the sequence of
// decisions a given seed produces.
type roomAllocationModel struct {
	params evolutionParams
}

func (m roomAllocationModel) Validate() error {
	return nil
}

func (m roomAllocationModel) Apply(pop *eaopt.Population) error {
	indis := pop.Individuals
	sort.SliceStable(indis, func(i, j int) bool {
		return indis[i].Fitness < indis[j].Fitness // eaopt minimizes; lower is better
	})

	eliteSize := m.params.EliteSize
	if eliteSize > len(indis) {
		eliteSize = len(indis)
	}

	next := make(eaopt.Individuals, 0, len(indis))
	for i := 0; i < eliteSize; i++ {
		next = append(next, indis[i].Clone())
	}

	bred := make([]*candidate, 0, len(indis)-eliteSize)
	for len(next)+len(bred) < len(indis) {
		bred = append(bred, m.breedOne(indis, pop.RNG))
	}

	if m.params.Parallel {
		if err := evaluateConcurrently(bred); err != nil {
			return err
		}
	} else {
		for _, c := range bred {
			if _, err := c.Evaluate(); err != nil {
				return err
			}
		}
	}

	for _, c := range bred {
		next = append(next, eaopt.Individual{Genome: c, Fitness: -c.fitness, Evaluated: true})
	}

	pop.Individuals = next
	return nil
}

// breedOne produces one unevaluated child: with probability
// CrossoverRate, select two parents, crossover and mutate; otherwise
// select one parent, clone and mutate. Either way the child is
// repaired before being returned.
func (m roomAllocationModel) breedOne(indis eaopt.Individuals, rng *rand.Rand) *candidate {
	var child *candidate
	if rng.Float64() < m.params.CrossoverRate {
		parent1 := tournamentSelect(indis, rng, m.params.TournamentSize)
		parent2 := tournamentSelect(indis, rng, m.params.TournamentSize)
		child = parent1.Genome.Clone().(*candidate)
		child.Crossover(parent2.Genome, rng)
	} else {
		parent := tournamentSelect(indis, rng, m.params.TournamentSize)
		child = parent.Genome.Clone().(*candidate)
	}
	child.Mutate(rng)
	repair(child)
	return child
}

func evaluateConcurrently(candidates []*candidate) error {
	g, _ := errgroup.WithContext(context.Background())
	for _, c := range candidates {
		c := c
		g.Go(func() error {
			_, err := c.Evaluate()
			return err
		})
	}
	return g.Wait()
}
