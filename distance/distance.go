// Package distance labels every cell of a grid.Grid with its hop distance to
// the goal, using iterative relaxation from the goal outwards with an explicit
// FIFO work list (no recursion, so large grids are safe).
//
// Each of the 8 directions counts as one hop. A neighbor is relaxed when its
// tentative label exceeds current+1; with a FIFO work list every cell settles
// the first time it is labelled, which gives exact hop counts on any unit
// graph and in particular on carved tree mazes.
package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazerunner/grid"
)

// relaxer encapsulates mutable labelling state.
type relaxer struct {
	f     *Field
	queue []int
}

// Compute labels g towards its goal.
// Returns ErrGridNil, ErrGoalUnset, or the context error on cancellation.
// Complexity: O(size²·8) time, O(size²) memory.
func Compute(g *grid.Grid, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	goal, ok := g.Goal()
	if !ok {
		return nil, ErrGoalUnset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Field{
		g:    g,
		goal: goal,
		dist: make([]int, g.Size()*g.Size()),
		opts: o,
	}
	return f, f.compute()
}

// Recompute relabels the field against the current grid state.
// Call it after sealing to drop stale labels of cells cut off from the goal.
func (f *Field) Recompute() error {
	return f.compute()
}

func (f *Field) compute() error {
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	f.Relaxations = 0

	r := &relaxer{f: f, queue: make([]int, 0, len(f.dist))}
	gi := f.g.Index(f.goal)
	f.dist[gi] = 0
	r.queue = append(r.queue, gi)

	return r.loop()
}

// loop pops cells in FIFO order and relaxes their neighbors.
func (r *relaxer) loop() error {
	f := r.f
	dirs := grid.Directions()
	for qi := 0; qi < len(r.queue); qi++ {
		select {
		case <-f.opts.Ctx.Done():
			return f.opts.Ctx.Err()
		default:
		}

		u := r.queue[qi]
		uc := f.g.Coordinate(u)
		next := f.dist[u] + 1
		for _, d := range dirs {
			vc := uc.Step(d)
			if !f.g.IsPassable(vc) {
				continue
			}
			vi := f.g.Index(vc)
			if f.dist[vi] == Unreachable || f.dist[vi] > next {
				f.dist[vi] = next
				f.Relaxations++
				f.opts.OnRelax(vc, next)
				r.queue = append(r.queue, vi)
			}
		}
	}
	return nil
}

// Grid returns the grid the field labels.
func (f *Field) Grid() *grid.Grid { return f.g }

// Goal returns the cell the field points towards.
func (f *Field) Goal() grid.Cell { return f.goal }

// Distance returns the hop distance from c to the goal, or Unreachable.
// Complexity: O(1).
func (f *Field) Distance(c grid.Cell) int {
	if !f.g.IsPassable(c) {
		return Unreachable
	}
	return f.dist[f.g.Index(c)]
}

// Reachable reports whether c has a route to the goal.
func (f *Field) Reachable(c grid.Cell) bool {
	return f.Distance(c) != Unreachable
}

// Max returns the largest finite label, i.e. the eccentricity of the goal.
func (f *Field) Max() int {
	m := 0
	for i, d := range f.dist {
		if d > m && f.g.IsPassable(f.g.Coordinate(i)) {
			m = d
		}
	}
	return m
}

// Snapshot returns the labels as a [row][col] matrix for rendering.
func (f *Field) Snapshot() [][]int {
	n := f.g.Size()
	out := make([][]int, n)
	for r := 0; r < n; r++ {
		out[r] = make([]int, n)
		for c := 0; c < n; c++ {
			out[r][c] = f.Distance(grid.Cell{Row: r, Col: c})
		}
	}
	return out
}

// String renders the labels in a compact table, '#' for Unreachable.
func (f *Field) String() string {
	var b strings.Builder
	for _, row := range f.Snapshot() {
		for c, d := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if d == Unreachable {
				fmt.Fprintf(&b, "%3s", "#")
			} else {
				fmt.Fprintf(&b, "%3d", d)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
