// Package runner implements the candidate solution of the evolutionary search:
// a fixed-length genome of compass moves walked against the current maze.
//
// A walk is a small state machine. Every gene consumes exactly one step:
// either ADVANCE (the move is valid; the runner moves) or BLOCKED (the move
// leaves the grid or hits a wall/sealed cell; the runner stays). The walk ends
// early in GOAL_REACHED; genes past that point are kept for breeding.
package runner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

var (
	// ErrIndexOutOfRange is returned by Mutate for an index outside the genome.
	ErrIndexOutOfRange = errors.New("runner: gene index out of range")

	// ErrInvalidDirection is returned by Mutate for a direction outside the compass.
	ErrInvalidDirection = errors.New("runner: invalid direction")
)

// Step is one entry of a realized path: a compass direction, or Blocked.
type Step int8

// Blocked marks a gene whose move was rejected by the grid.
const Blocked Step = -1

// Direction returns the direction of an advancing step; ok is false for Blocked.
func (s Step) Direction() (grid.Direction, bool) {
	if s == Blocked {
		return 0, false
	}
	return grid.Direction(s), true
}

// String returns the compass abbreviation, or "-" for Blocked.
func (s Step) String() string {
	if d, ok := s.Direction(); ok {
		return d.String()
	}
	return "-"
}

// Runner is one individual of the population.
type Runner struct {
	// ID identifies the runner; Parents holds the IDs of the two parents for
	// bred runners and uuid.Nil for founders.
	ID      uuid.UUID
	Parents [2]uuid.UUID

	Start  grid.Cell
	Genome []grid.Direction

	// Path is the realized walk, len(Path) ≤ len(Genome).
	Path []Step
	// Trail holds the runner's cell after each step, aligned with Path.
	Trail []grid.Cell

	Terminal    grid.Cell
	Fitness     float64
	GoalReached bool
}

// New creates a founder with a uniformly random genome of the given length.
func New(start grid.Cell, length int, r *rand.Rand) *Runner {
	r = rng.OrDefault(r)
	genome := make([]grid.Direction, length)
	for i := range genome {
		genome[i] = grid.RandomDirection(r)
	}
	return FromGenome(start, genome)
}

// FromGenome creates a runner that owns genome. It has not walked yet.
func FromGenome(start grid.Cell, genome []grid.Direction) *Runner {
	return &Runner{
		ID:       uuid.New(),
		Start:    start,
		Genome:   genome,
		Terminal: start,
		Fitness:  math.Inf(1),
	}
}

// Journey walks the genome against the current state of g, replacing Path,
// Trail, Terminal and GoalReached, and resetting Fitness to +Inf.
// The walk is deterministic for a fixed grid state and genome.
// Complexity: O(len(Genome)).
func (r *Runner) Journey(g *grid.Grid) {
	goal, hasGoal := g.Goal()
	r.Path = r.Path[:0]
	r.Trail = r.Trail[:0]
	r.Terminal = r.Start
	r.GoalReached = hasGoal && r.Start == goal
	r.Fitness = math.Inf(1)
	if r.GoalReached {
		return
	}

	cur := r.Start
	for _, d := range r.Genome {
		if g.IsMoveValid(cur, d) {
			cur = cur.Step(d)
			r.Path = append(r.Path, Step(d))
		} else {
			r.Path = append(r.Path, Blocked)
		}
		r.Trail = append(r.Trail, cur)
		if hasGoal && cur == goal {
			r.GoalReached = true
			break
		}
	}
	r.Terminal = cur
}

// Mutate replaces gene i with d. It does not re-walk.
func (r *Runner) Mutate(i int, d grid.Direction) error {
	if i < 0 || i >= len(r.Genome) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(r.Genome))
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	r.Genome[i] = d
	return nil
}

// Len returns the length of the realized path.
func (r *Runner) Len() int { return len(r.Path) }

// Blocked counts blocked steps of the last walk.
func (r *Runner) Blocked() int {
	n := 0
	for _, s := range r.Path {
		if s == Blocked {
			n++
		}
	}
	return n
}

// Advances counts advancing steps of the last walk.
func (r *Runner) Advances() int {
	return len(r.Path) - r.Blocked()
}

// Clone returns a deep copy carrying the same ID.
func (r *Runner) Clone() *Runner {
	c := *r
	c.Genome = append([]grid.Direction(nil), r.Genome...)
	c.Path = append([]Step(nil), r.Path...)
	c.Trail = append([]grid.Cell(nil), r.Trail...)
	return &c
}
