package grid

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazerunner/rng"
)

// DefaultGoalPolicy returns the policy used when callers do not care:
// the goal must be at least size·2/3 hops away from start.
func DefaultGoalPolicy(size int) GoalPolicy {
	return GoalPolicy{MinHops: size * 2 / 3}
}

// GoalCandidates lists, in row-major order, every open cell other than start
// whose hop distance from start is at least policy.MinHops.
func (g *Grid) GoalCandidates(policy GoalPolicy) []Cell {
	hops := g.HopsFrom(g.start)
	out := make([]Cell, 0)
	for i, h := range hops {
		if h == Unreached || h == 0 || h < policy.MinHops {
			continue
		}
		out = append(out, g.Coordinate(i))
	}
	return out
}

// AssignGoal samples the goal uniformly from GoalCandidates(policy).
// The candidate set is computed once, so no retry loop is involved.
// Returns ErrGoalAlreadySet on a second call and ErrUnreachableGoal when the
// candidate set is empty.
// Complexity: O(size²).
func (g *Grid) AssignGoal(policy GoalPolicy, r *rand.Rand) (Cell, error) {
	if g.hasGoal {
		return g.goal, ErrGoalAlreadySet
	}
	cands := g.GoalCandidates(policy)
	if len(cands) == 0 {
		return Cell{}, fmt.Errorf("%w: min hops %d", ErrUnreachableGoal, policy.MinHops)
	}
	r = rng.OrDefault(r)
	c := cands[r.Intn(len(cands))]
	g.goal = c
	g.hasGoal = true
	return c, nil
}

// SetGoal assigns an explicit goal. It must be in bounds, open, and differ
// from start; a goal can only be set once.
func (g *Grid) SetGoal(c Cell) error {
	switch {
	case g.hasGoal:
		return ErrGoalAlreadySet
	case !g.InBounds(c):
		return fmt.Errorf("%w: goal %v", ErrCellOutOfBounds, c)
	case c == g.start:
		return ErrGoalIsStart
	case g.State(c) != Open:
		return fmt.Errorf("%w: %v is %s", ErrGoalNotOpen, c, g.State(c))
	}
	g.goal = c
	g.hasGoal = true
	return nil
}
