// Package grid defines core types, the direction table, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazerunner.
package grid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a requested side length below MinSize.
	ErrInvalidSize = errors.New("grid: size must be at least 2")
	// ErrCellOutOfBounds indicates a coordinate outside [0, size).
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrGoalNotOpen indicates a goal candidate that is not an OPEN cell.
	ErrGoalNotOpen = errors.New("grid: goal must be an open cell")
	// ErrGoalIsStart indicates a goal candidate equal to the start cell.
	ErrGoalIsStart = errors.New("grid: goal must differ from start")
	// ErrGoalAlreadySet indicates a second goal assignment.
	ErrGoalAlreadySet = errors.New("grid: goal already assigned")
	// ErrUnreachableGoal indicates that no cell satisfies the goal policy.
	ErrUnreachableGoal = errors.New("grid: no goal candidate satisfies the policy")
	// ErrBadLayout indicates a malformed ASCII layout passed to Parse.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// MinSize is the smallest accepted side length.
const MinSize = 2

// State is the content of a single cell.
type State uint8

const (
	// Wall cells are never passable.
	Wall State = iota
	// Open cells were carved by the generator and are passable.
	Open
	// Sealed cells were open once and have been blocked as dead ends.
	Sealed
)

// String returns a short human-readable name.
func (s State) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Sealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// Step returns the cell reached from c by one move in direction d.
// It does not check bounds.
func (c Cell) Step(d Direction) Cell {
	delta := table[d]
	return Cell{Row: c.Row + delta.DRow, Col: c.Col + delta.DCol}
}

// Delta is a unit move expressed as (Δrow, Δcol).
type Delta struct {
	DRow, DCol int
}

// Direction indexes the compass table. The enumeration order is stable and
// is also the tie-break order used by distance.Field.Solve.
type Direction uint8

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast

	// NumDirections is the size of the compass.
	NumDirections = 8
)

// table is the single direction table of the module. Rows grow southwards.
var table = [NumDirections]Delta{
	East:      {0, 1},
	NorthEast: {-1, 1},
	North:     {-1, 0},
	NorthWest: {-1, -1},
	West:      {0, -1},
	SouthWest: {1, -1},
	South:     {1, 0},
	SouthEast: {1, 1},
}

var directionNames = [NumDirections]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

// Directions returns all directions in enumeration order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast}
}

// Table returns a copy of the direction table.
func Table() [NumDirections]Delta {
	return table
}

// Delta returns the unit move of d.
func (d Direction) Delta() Delta {
	return table[d]
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// String returns the compass abbreviation ("E", "NE", ...).
func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return directionNames[d]
}

// RandomDirection draws a direction uniformly from the compass.
func RandomDirection(r *rand.Rand) Direction {
	return Direction(r.Intn(NumDirections))
}

// GoalPolicy constrains random goal assignment.
type GoalPolicy struct {
	// MinHops is the minimum hop distance from start, measured through
	// passable cells with 8-connectivity. Zero accepts any open cell ≠ start.
	MinHops int
}

// Option configures grid construction.
type Option func(*options)

type options struct {
	rnd   *rand.Rand
	start *Cell
}

// WithRand sets the random source used to place the start cell.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rnd = r
		}
	}
}

// WithStart fixes the start cell instead of drawing it.
func WithStart(c Cell) Option {
	return func(o *options) {
		cc := c
		o.start = &cc
	}
}

// Grid is a square maze. The zero value is not usable; build one with New or Parse.
// Grid is not safe for concurrent mutation; concurrent readers are fine while
// nothing carves or seals.
type Grid struct {
	size    int
	cells   []State // row-major
	start   Cell
	goal    Cell
	hasGoal bool
	sealed  int
}
