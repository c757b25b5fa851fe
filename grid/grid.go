// Package grid treats a square matrix of wall/open cells as an 8-connected
// maze. It owns the start and goal cells, the direction table shared by the
// rest of the module, and the sealing of dead ends.
package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazerunner/rng"
)

// New allocates an all-WALL grid of the given side length and opens the start
// cell. The start is drawn uniformly unless WithStart is supplied.
// Returns ErrInvalidSize if size < MinSize, ErrCellOutOfBounds for a bad WithStart.
// Complexity: O(size²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		size:  size,
		cells: make([]State, size*size), // zero value is Wall
	}
	if o.start != nil {
		if !g.InBounds(*o.start) {
			return nil, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, *o.start)
		}
		g.start = *o.start
	} else {
		// Nothing is blocked yet, so one draw is always valid.
		r := rng.OrDefault(o.rnd)
		g.start = Cell{Row: r.Intn(size), Col: r.Intn(size)}
	}
	g.cells[g.index(g.start)] = Open

	return g, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell and whether one has been assigned.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// HasGoal reports whether a goal has been assigned.
func (g *Grid) HasGoal() bool { return g.hasGoal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// index maps c to a row-major index: Row*size + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.size + c.Col
}

// Index exposes the row-major index of c. The caller must check bounds.
func (g *Grid) Index(c Cell) int {
	return g.index(c)
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}

// State returns the state of c; out-of-bounds cells read as Wall.
func (g *Grid) State(c Cell) State {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// IsPassable reports whether c is in bounds and Open.
func (g *Grid) IsPassable(c Cell) bool {
	return g.State(c) == Open
}

// IsMoveValid reports whether stepping from pos by d stays in bounds and lands
// on an open, non-sealed cell.
// Complexity: O(1).
func (g *Grid) IsMoveValid(pos Cell, d Direction) bool {
	if !d.Valid() {
		return false
	}
	return g.IsPassable(pos.Step(d))
}

// PassableNeighbors counts the passable cells among the 8 neighbors of c.
func (g *Grid) PassableNeighbors(c Cell) int {
	n := 0
	for _, d := range Directions() {
		if g.IsPassable(c.Step(d)) {
			n++
		}
	}
	return n
}

// Carve turns a wall into an open cell. Carving an open or sealed cell is a no-op.
func (g *Grid) Carve(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: carve %v", ErrCellOutOfBounds, c)
	}
	i := g.index(c)
	if g.cells[i] == Wall {
		g.cells[i] = Open
	}
	return nil
}

// Seal blocks an open cell. Start, goal, walls and already sealed cells are
// left untouched. Sealing is one-way. Reports whether c changed.
func (g *Grid) Seal(c Cell) bool {
	if !g.InBounds(c) || c == g.start || (g.hasGoal && c == g.goal) {
		return false
	}
	i := g.index(c)
	if g.cells[i] != Open {
		return false
	}
	g.cells[i] = Sealed
	g.sealed++
	return true
}

// IsDeadEnd reports whether c is a passable cell, other than start or goal,
// with at most one passable neighbor. Start and goal are never dead ends.
func (g *Grid) IsDeadEnd(c Cell) bool {
	if c == g.start || (g.hasGoal && c == g.goal) {
		return false
	}
	if !g.IsPassable(c) {
		return false
	}
	return g.PassableNeighbors(c) <= 1
}

// OpenCount returns the number of passable cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Open {
			n++
		}
	}
	return n
}

// SealedCount returns the number of sealed cells.
func (g *Grid) SealedCount() int { return g.sealed }

// Snapshot returns a deep copy of the cell matrix, indexed [row][col].
func (g *Grid) Snapshot() [][]State {
	out := make([][]State, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]State, g.size)
		copy(out[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]State, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Layout runes understood by Parse and produced by String.
const (
	runeWall   = '#'
	runeOpen   = '.'
	runeSealed = 'x'
	runeStart  = 'S'
	runeGoal   = 'G'
)

// Parse builds a grid from an ASCII layout: '#' wall, '.' open, 'x' sealed,
// 'S' start (exactly one), 'G' goal (at most one). Rows must form a square.
func Parse(rows []string) (*Grid, error) {
	n := len(rows)
	if n < MinSize {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidSize, n)
	}
	g := &Grid{size: n, cells: make([]State, n*n)}
	starts, goals := 0, 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, len(runes), n)
		}
		for c, ch := range runes {
			cell := Cell{Row: r, Col: c}
			i := g.index(cell)
			switch ch {
			case runeWall:
				g.cells[i] = Wall
			case runeOpen:
				g.cells[i] = Open
			case runeSealed:
				g.cells[i] = Sealed
				g.sealed++
			case runeStart:
				g.cells[i] = Open
				g.start = cell
				starts++
			case runeGoal:
				g.cells[i] = Open
				g.goal = cell
				g.hasGoal = true
				goals++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrBadLayout, ch, cell)
			}
		}
	}
	if starts != 1 || goals > 1 {
		return nil, fmt.Errorf("%w: need one start and at most one goal, got %d and %d", ErrBadLayout, starts, goals)
	}
	return g, nil
}

// String renders the grid with the Parse alphabet.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cell := Cell{Row: r, Col: c}
			switch {
			case cell == g.start:
				b.WriteRune(runeStart)
			case g.hasGoal && cell == g.goal:
				b.WriteRune(runeGoal)
			default:
				switch g.cells[g.index(cell)] {
				case Open:
					b.WriteRune(runeOpen)
				case Sealed:
					b.WriteRune(runeSealed)
				default:
					b.WriteRune(runeWall)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
