// Package evolution evolves a population of runners towards the goal of a
// carved maze with a truncation-selection genetic algorithm.
//
// One generation:
//
//  1. walk every runner against the current grid and score it (Fitness);
//  2. union the visited cells into the explored set;
//  3. stable-sort ascending (lower fitness is better) and record statistics;
//  4. optionally seal explored dead ends (ApplyPheromones);
//  5. keep the elite (Selection) and breed back to full size (Reproduction).
//
// Sealing is a one-way ratchet on the grid itself: dead ends discovered by
// the population become impassable for every later generation.
package evolution

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sourcegraph/conc/pool"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/distance"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
	"github.com/katalvlaran/mazerunner/runner"
)

// solvedEps absorbs float rounding when comparing with MinimumFitness.
const solvedEps = 1e-9

// New builds an engine with a random founder population.
// Returns ErrNilGrid, ErrNilField, ErrGoalUnset, ErrFieldMismatch or a
// wrapped ErrInvalidConfig.
func New(g *grid.Grid, field *distance.Field, cfg Config, opts ...Option) (*Engine, error) {
	switch {
	case g == nil:
		return nil, ErrNilGrid
	case field == nil:
		return nil, ErrNilField
	case !g.HasGoal():
		return nil, ErrGoalUnset
	case field.Grid() != g:
		return nil, ErrFieldMismatch
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:          cfg,
		g:            g,
		field:        field,
		onGeneration: func(GenerationStats) error { return nil },
		explored:     mapset.New[grid.Cell](),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rnd = rng.OrDefault(e.rnd)
	if e.log == nil {
		e.log = discardLogger()
	}
	e.log = e.log.With(slog.String("component", "evolution"))

	e.genomeLength = cfg.GenomeLength
	if e.genomeLength == 0 {
		e.genomeLength = g.Size() * g.Size()
	}
	e.startDist = field.Distance(g.Start())

	e.population = make([]*runner.Runner, 0, cfg.PopulationSize)
	for i := 0; i < cfg.PopulationSize; i++ {
		e.population = append(e.population, runner.New(g.Start(), e.genomeLength, e.rnd))
	}
	return e, nil
}

// SeedPopulation replaces the first len(rs) runners with copies of rs, for
// example to resume from a saved elite or to plant a known route. Each copy
// is moved to the grid start. Returns ErrGenomeMismatch on a wrong genome
// length; too many runners is an ErrInvalidConfig.
func (e *Engine) SeedPopulation(rs ...*runner.Runner) error {
	if len(rs) > len(e.population) {
		return fmt.Errorf("%w: %d seeds for population %d", ErrInvalidConfig, len(rs), len(e.population))
	}
	for i, r := range rs {
		if len(r.Genome) != e.genomeLength {
			return fmt.Errorf("%w: seed %d has %d genes, want %d", ErrGenomeMismatch, i, len(r.Genome), e.genomeLength)
		}
	}
	for i, r := range rs {
		c := r.Clone()
		c.Start = e.g.Start()
		e.population[i] = c
	}
	return nil
}

// RunGeneration walks and scores every runner, updates the explored set,
// sorts the population best-first and records statistics. It returns a copy
// of the best runner. The context is checked once, before evaluation.
func (e *Engine) RunGeneration(ctx context.Context) (*runner.Runner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.evaluate()

	for _, r := range e.population {
		e.explored.Put(r.Start)
		for _, c := range r.Trail {
			e.explored.Put(c)
		}
	}

	slices.SortStableFunc(e.population, func(a, b *runner.Runner) int {
		return cmp.Compare(a.Fitness, b.Fitness)
	})

	best := e.population[0]
	stats := GenerationStats{
		Generation:  e.generation,
		BestFitness: best.Fitness,
	}
	var sumFit, sumLen float64
	for _, r := range e.population {
		sumFit += r.Fitness
		sumLen += float64(r.Len())
		if r.GoalReached {
			stats.GoalReached++
		}
	}
	n := float64(len(e.population))
	stats.AverageFitness = sumFit / n
	stats.AverageLength = sumLen / n
	if best.GoalReached && best.Fitness <= e.MinimumFitness()+solvedEps {
		stats.Solved = true
		e.solved = true
	}

	e.best = best.Clone()
	e.history = append(e.history, stats)
	e.generation++

	e.log.Debug("generation evaluated",
		slog.Int("generation", stats.Generation),
		slog.Float64("best_fitness", stats.BestFitness),
		slog.Float64("avg_fitness", stats.AverageFitness),
		slog.Float64("avg_length", stats.AverageLength),
		slog.Int("goal_reached", stats.GoalReached),
		slog.Bool("solved", stats.Solved),
	)
	return e.best.Clone(), nil
}

// evaluate walks and scores the population. With Workers > 1 runners are
// processed concurrently; the grid and field are only read until Wait returns.
func (e *Engine) evaluate() {
	if e.cfg.Workers <= 1 {
		for _, r := range e.population {
			r.Journey(e.g)
			r.Fitness = e.Fitness(r)
		}
		return
	}

	p := pool.New().WithMaxGoroutines(e.cfg.Workers)
	for _, r := range e.population {
		r := r // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		p.Go(func() {
			r.Journey(e.g)
			r.Fitness = e.Fitness(r)
		})
	}
	p.Wait()
}

// Evolution repeats RunGeneration → ApplyPheromones → hook → Selection →
// Reproduction for at most `generations` generations and returns the best
// runner seen in the last evaluated generation.
//
// It stops early when ctx is done (returning ctx.Err()), when the generation
// hook fails, or, with StopOnGoal, once the best runner reaches the goal.
// The last generation is not bred, so Population() stays fully evaluated.
func (e *Engine) Evolution(ctx context.Context, generations int) (*runner.Runner, error) {
	e.log.Info("evolution started",
		slog.Int("generations", generations),
		slog.Int("population", e.cfg.PopulationSize),
		slog.Int("genome_length", e.genomeLength),
		slog.Int("start_distance", e.startDist),
	)

	for i := 0; i < generations; i++ {
		best, err := e.RunGeneration(ctx)
		if err != nil {
			return e.Best(), err
		}
		stats := &e.history[len(e.history)-1]

		if e.cfg.Pheromones && (stats.Generation+1)%e.cfg.PheromoneInterval == 0 {
			sealed, err := e.ApplyPheromones()
			stats.Sealed = sealed
			if err != nil {
				return e.Best(), err
			}
		}

		if e.cfg.ReportInterval == 0 || (stats.Generation+1)%e.cfg.ReportInterval == 0 {
			if e.cfg.ReportInterval > 0 {
				e.log.Info("generation report",
					slog.Int("generation", stats.Generation+1),
					slog.Float64("best_fitness", stats.BestFitness),
					slog.Float64("avg_fitness", stats.AverageFitness),
					slog.Int("sealed_total", e.g.SealedCount()),
				)
			}
			if err := e.onGeneration(*stats); err != nil {
				return e.Best(), fmt.Errorf("evolution: OnGeneration error at generation %d: %w", stats.Generation, err)
			}
		}

		if e.cfg.StopOnGoal && best.GoalReached {
			e.log.Info("goal reached, stopping",
				slog.Int("generation", stats.Generation),
				slog.Float64("fitness", best.Fitness),
				slog.Bool("solved", stats.Solved),
			)
			return best, nil
		}
		if i == generations-1 {
			break
		}
		e.Selection()
		e.Reproduction()
	}

	best := e.Best()
	if best != nil {
		e.log.Info("evolution finished",
			slog.Int("generations", e.generation),
			slog.Float64("best_fitness", best.Fitness),
			slog.Bool("goal_reached", best.GoalReached),
			slog.Bool("solved", e.solved),
		)
	}
	return best, nil
}

// Best returns a copy of the best runner of the last evaluated generation,
// or nil before the first generation.
func (e *Engine) Best() *runner.Runner {
	if e.best == nil {
		return nil
	}
	return e.best.Clone()
}

// Population returns the current population, best first after evaluation.
// The slice is a copy; the runners are shared.
func (e *Engine) Population() []*runner.Runner {
	return slices.Clone(e.population)
}

// Generation returns the number of evaluated generations.
func (e *Engine) Generation() int { return e.generation }

// Solved reports whether any generation produced an optimal goal-reaching runner.
func (e *Engine) Solved() bool { return e.solved }

// GenomeLength returns the effective genome length.
func (e *Engine) GenomeLength() int { return e.genomeLength }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// History returns per-generation statistics indexed by generation number.
func (e *Engine) History() []GenerationStats {
	return slices.Clone(e.history)
}

// FitnessHistory returns the best and average fitness per generation.
func (e *Engine) FitnessHistory() (best, avg []float64) {
	best = make([]float64, len(e.history))
	avg = make([]float64, len(e.history))
	for i, s := range e.history {
		best[i] = s.BestFitness
		avg[i] = s.AverageFitness
	}
	return best, avg
}

// LengthHistory returns the average realized path length per generation.
func (e *Engine) LengthHistory() []float64 {
	out := make([]float64, len(e.history))
	for i, s := range e.history {
		out[i] = s.AverageLength
	}
	return out
}

// Explored returns the cells visited by any runner so far, row-major.
func (e *Engine) Explored() []grid.Cell {
	cells := make([]grid.Cell, 0, e.explored.Size())
	e.explored.Each(func(c grid.Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b grid.Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
