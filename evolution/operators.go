package evolution

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/runner"
)

// EliteSize returns how many runners Selection keeps:
// max(1, round(PopulationSize × SelectionRate)), rounding half away from zero.
func (e *Engine) EliteSize() int {
	k := int(math.Round(float64(e.cfg.PopulationSize) * e.cfg.SelectionRate))
	if k < 1 {
		k = 1
	}
	return k
}

// Selection truncates the population to its EliteSize best runners. The
// population must already be sorted by RunGeneration; no randomness is used.
func (e *Engine) Selection() {
	k := e.EliteSize()
	if k >= len(e.population) {
		return
	}
	clear(e.population[k:])
	e.population = e.population[:k]
}

// Reproduction refills the population to PopulationSize. Parents are drawn
// uniformly with replacement from the current (elite) population; each child
// is a crossover followed by mutation and has not walked yet.
func (e *Engine) Reproduction() {
	elite := slices.Clone(e.population)
	if len(elite) == 0 {
		return
	}
	for len(e.population) < e.cfg.PopulationSize {
		p1 := elite[e.rnd.Intn(len(elite))]
		p2 := elite[e.rnd.Intn(len(elite))]
		child := e.Crossover(p1, p2)
		e.Mutation(child)
		e.population = append(e.population, child)
	}
}

// Crossover performs single-point crossover with a cut drawn uniformly from
// [1, L−1]. Genomes shorter than 2 are copied from p1.
func (e *Engine) Crossover(p1, p2 *runner.Runner) *runner.Runner {
	l := len(p1.Genome)
	cut := l
	if l >= 2 {
		cut = 1 + e.rnd.Intn(l-1)
	}
	child, err := e.CrossoverAt(p1, p2, cut)
	if err != nil {
		// parents of unequal length: fall back to a copy of p1
		child, _ = e.CrossoverAt(p1, p1, cut)
	}
	return child
}

// CrossoverAt builds the child p1.Genome[:cut] ++ p2.Genome[cut:], starting
// at the grid start with undetermined fitness.
// Returns ErrGenomeMismatch or ErrInvalidCut for cut outside [0, L].
func (e *Engine) CrossoverAt(p1, p2 *runner.Runner, cut int) (*runner.Runner, error) {
	l := len(p1.Genome)
	if len(p2.Genome) != l {
		return nil, fmt.Errorf("%w: %d vs %d", ErrGenomeMismatch, l, len(p2.Genome))
	}
	if cut < 0 || cut > l {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidCut, cut, l)
	}
	genome := make([]grid.Direction, 0, l)
	genome = append(genome, p1.Genome[:cut]...)
	genome = append(genome, p2.Genome[cut:]...)

	child := runner.FromGenome(e.g.Start(), genome)
	child.Parents = [2]uuid.UUID{p1.ID, p2.ID}
	return child, nil
}

// Mutation replaces each gene with probability MutationRate by a uniformly
// random direction (which may equal the old one). It does not re-walk.
func (e *Engine) Mutation(r *runner.Runner) {
	for i := range r.Genome {
		if e.rnd.Float64() < e.cfg.MutationRate {
			_ = r.Mutate(i, grid.RandomDirection(e.rnd))
		}
	}
}

// ApplyPheromones seals every explored cell that is currently a dead end,
// in row-major order, then recomputes the distance field if anything was
// sealed. A cell sealed here can expose its neighbor as a new dead end; cells
// later in the order are sealed in the same pass, earlier ones on the next.
// Returns the number of cells sealed.
func (e *Engine) ApplyPheromones() (int, error) {
	sealed := 0
	for _, c := range e.Explored() {
		if e.g.IsDeadEnd(c) && e.g.Seal(c) {
			sealed++
		}
	}
	if sealed == 0 {
		return 0, nil
	}
	if err := e.field.Recompute(); err != nil {
		return sealed, fmt.Errorf("evolution: recompute after sealing: %w", err)
	}
	e.log.Debug("dead ends sealed",
		slog.Int("generation", e.generation-1),
		slog.Int("sealed", sealed),
		slog.Int("sealed_total", e.g.SealedCount()),
	)
	return sealed, nil
}
