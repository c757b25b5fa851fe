// Package evolution defines options, statistics and sentinel errors for the
// genetic search over runners.
package evolution

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/distance"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/runner"
)

// Sentinel errors for engine construction and configuration.
var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("evolution: invalid config")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("evolution: grid is nil")

	// ErrNilField is returned if a nil distance field is passed.
	ErrNilField = errors.New("evolution: distance field is nil")

	// ErrGoalUnset is returned when the grid has no goal.
	ErrGoalUnset = errors.New("evolution: grid has no goal")

	// ErrFieldMismatch is returned when the field was computed for another grid.
	ErrFieldMismatch = errors.New("evolution: distance field belongs to another grid")

	// ErrInvalidCut is returned by CrossoverAt for a cut outside [0, len].
	ErrInvalidCut = errors.New("evolution: crossover cut out of range")

	// ErrGenomeMismatch is returned by CrossoverAt for parents of different lengths.
	ErrGenomeMismatch = errors.New("evolution: parent genomes differ in length")
)

// GenerationStats summarizes one evaluated generation.
type GenerationStats struct {
	Generation     int
	BestFitness    float64
	AverageFitness float64
	AverageLength  float64
	GoalReached    int  // runners that reached the goal
	Sealed         int  // cells sealed after this generation
	Solved         bool // best runner reached the goal at the theoretical minimum
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source of the genetic operators.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rnd = r
		}
	}
}

// WithLogger sets the structured logger. The engine scopes it with a
// component attribute.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithOnGeneration registers a hook fired after each evaluated generation
// (or every ReportInterval generations). Returning an error stops Evolution.
func WithOnGeneration(fn func(GenerationStats) error) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onGeneration = fn
		}
	}
}

// Engine owns a population of runners and evolves it against a grid and its
// distance field. The grid and field are read-only while runners are
// evaluated; sealing happens between generations. Engine methods are not
// safe for concurrent use.
type Engine struct {
	cfg   Config
	g     *grid.Grid
	field *distance.Field
	rnd   *rand.Rand
	log   *slog.Logger

	onGeneration func(GenerationStats) error

	population   []*runner.Runner
	best         *runner.Runner
	generation   int
	explored     mapset.Set[grid.Cell]
	history      []GenerationStats
	solved       bool
	startDist    int
	genomeLength int
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
