package distance

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// Solve reconstructs a route from `from` to the goal by greedy descent: at
// each cell it moves to the not-yet-visited neighbor with the strictly
// smallest label below the current one, ties broken by direction order.
//
// Returns ErrUnreachableCell if `from` has no label, or ErrStuckPath if no
// improving neighbor exists before the goal is reached.
// Complexity: O(d·8) where d = Distance(from).
func (f *Field) Solve(from grid.Cell) ([]grid.Direction, error) {
	cur := f.Distance(from)
	if cur == Unreachable {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableCell, from)
	}

	path := make([]grid.Direction, 0, cur)
	visited := mapset.New[grid.Cell]()
	visited.Put(from)
	c := from
	for c != f.goal {
		best, bestDist, found := grid.Direction(0), cur, false
		for _, d := range grid.Directions() {
			n := c.Step(d)
			if visited.Has(n) {
				continue
			}
			dn := f.Distance(n)
			if dn == Unreachable || dn >= bestDist {
				continue
			}
			best, bestDist, found = d, dn, true
		}
		if !found {
			return path, fmt.Errorf("%w: at %v (distance %d)", ErrStuckPath, c, cur)
		}
		c = c.Step(best)
		cur = bestDist
		visited.Put(c)
		path = append(path, best)
	}
	return path, nil
}

// Trace replays directions from `from` and returns the visited cells,
// `from` included. It does not check validity.
func Trace(from grid.Cell, dirs []grid.Direction) []grid.Cell {
	out := make([]grid.Cell, 0, len(dirs)+1)
	out = append(out, from)
	c := from
	for _, d := range dirs {
		c = c.Step(d)
		out = append(out, c)
	}
	return out
}
