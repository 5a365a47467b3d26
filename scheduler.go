// Package labtimetable implements a laboratory-room timetable
// allocator: a population-based metaheuristic search that places
// university courses onto a fixed grid of (day, start-hour, room)
// triples under hard conflict constraints, trading off rental-room
// usage, slot fragmentation, room-usage balance and time-slot
// diversity. It also derives, from a finalized placement, a vacancy
// report of free slots and per-room utilization.
//
// The package has exactly two entry points, Schedule and Analyze. It
// never touches HTTP, CSV, a database or a UI — those are the calling
// service's concern.
package labtimetable

import (
	"log/slog"
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// Scheduler holds the configuration a Schedule run uses: the fixed
// grid, the fitness weights, and the evolutionary-loop parameters.
// Functional options over a struct with sane defaults.
type Scheduler struct {
	grid    Grid
	weights FitnessWeights
	evo     evolutionParams
	logger  *slog.Logger
}

// Option configures a Scheduler via the functional-option pattern.
type Option func(*Scheduler)

// WithGrid overrides the default five-room/five-day/seven-slot grid.
// Not exercised by the external HTTP service, which fixes the
// vocabulary, but useful for isolating tests to a smaller grid.
func WithGrid(g Grid) Option {
	return func(s *Scheduler) { s.grid = g }
}

// WithFitnessWeights overrides the default fitness coefficients. The
// weights are production-hardcoded constants that define the
// objective; this escape hatch exists only so the objective's
// monotonic reactions can be tested in isolation, not as a production
// knob.
func WithFitnessWeights(w FitnessWeights) Option {
	return func(s *Scheduler) { s.weights = w }
}

// WithPopulationSize overrides the default population of 50.
func WithPopulationSize(n int) Option {
	return func(s *Scheduler) { s.evo.PopulationSize = n }
}

// WithGenerations overrides the default generation count of 100.
func WithGenerations(n uint) Option {
	return func(s *Scheduler) { s.evo.Generations = n }
}

// WithEliteSize overrides the default elite size of 5.
func WithEliteSize(n int) Option {
	return func(s *Scheduler) { s.evo.EliteSize = n }
}

// WithParallelEvaluation toggles the errgroup-based concurrent fitness
// evaluation of a generation's bred individuals. Enabled by default.
func WithParallelEvaluation(parallel bool) Option {
	return func(s *Scheduler) { s.evo.Parallel = parallel }
}

// WithProgressLogger installs a logger that receives one message every
// 10th generation reporting the best fitness seen so far. The core
// stays silent by default.
func WithProgressLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// NewScheduler builds a Scheduler with the default grid, weights and
// evolutionary parameters, applying any overrides.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		grid:    DefaultGrid,
		weights: DefaultFitnessWeights,
		evo:     defaultEvolutionParams,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Schedule is the package-level convenience entry point: build a
// Scheduler with default configuration and run it. Equivalent to
// NewScheduler(opts...).Schedule(courses, seed).
func Schedule(courses []Course, seed int64, opts ...Option) ([]Assignment, error) {
	return NewScheduler(opts...).Schedule(courses, seed)
}

// Schedule runs the evolutionary search and returns the best
// candidate's assignments, in input course order, omitting any course
// the search could not place. It accepts a seed so that two calls with
// equal (courses, seed) are byte-identical.
//
// An empty course list returns (nil, nil) immediately. A course set
// with a duplicate id fails the whole call with an *InvalidInputError
// before any search begins.
func (s *Scheduler) Schedule(courses []Course, seed int64) ([]Assignment, error) {
	if len(courses) == 0 {
		return nil, nil
	}
	if err := validateCourses(courses); err != nil {
		return nil, err
	}

	p := &problem{courses: courses, grid: s.grid, weights: s.weights}

	ga, err := s.newGA(seed)
	if err != nil {
		return nil, err
	}

	factory := newRandomCandidateFactory(p)
	if err := ga.Minimize(func(rng *rand.Rand) eaopt.Genome { return factory(rng) }); err != nil {
		return nil, err
	}

	best := ga.HallOfFame[0].Genome.(*candidate)
	return best.toAssignments(), nil
}

// newGA wires a real eaopt.GA (eaopt.NewDefaultGAConfig().NewGA()),
// overriding the generation mechanics with roomAllocationModel and
// seeding the RNG explicitly so the whole run is reproducible from
// the caller's seed.
func (s *Scheduler) newGA(seed int64) (*eaopt.GA, error) {
	cfg := eaopt.NewDefaultGAConfig()
	cfg.NPops = 1
	cfg.NIndividuals = uint(s.evo.PopulationSize)
	cfg.NGenerations = s.evo.Generations
	cfg.HofSize = 1
	cfg.ParallelEval = false // roomAllocationModel parallelizes evaluation itself
	cfg.Model = roomAllocationModel{params: s.evo}
	cfg.RNG = rand.New(rand.NewSource(seed))

	ga, err := cfg.NewGA()
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		ga.Callback = func(ga *eaopt.GA) {
			if (ga.Generations+1)%10 == 0 {
				s.logger.Info("generation complete",
					slog.Uint64("generation", uint64(ga.Generations+1)),
					slog.Float64("bestFitness", -ga.HallOfFame[0].Fitness),
				)
			}
		}
	}

	return ga, nil
}

// toAssignments converts a finalized candidate into the ordered
// Assignment slice: one entry per course that has an assignment, in
// input order, with administrative fields carried through and endTime
// derived from startTime.
func (c *candidate) toAssignments() []Assignment {
	out := make([]Assignment, 0, len(c.assignments))
	for _, course := range c.problem.courses {
		s, ok := c.assignments[course.ID]
		if !ok {
			continue
		}
		out = append(out, Assignment{
			CourseCode: course.CourseCode,
			CourseName: course.CourseName,
			Instructor: course.Instructor,
			Department: course.Department,
			IsLab:      course.IsLab,
			Enrollment: course.Enrollment,
			Weeks:      course.Weeks,
			Credits:    course.Credits,
			Day:        s.Day,
			StartTime:  s.Start,
			EndTime:    blockEnd(s.Start),
			Room:       s.Room,
		})
	}
	return out
}
